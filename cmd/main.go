// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"code.gitea.io/duotone/modules/setting"

	"github.com/urfave/cli/v2"
)

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		// make the builtin flags at the top
		cli.HelpFlag,

		// shared configuration flags, they are for global and for each sub-command at the same time
		// eg: such command is valid: "./duotone --config /tmp/app.ini render --config /tmp/app.ini", while it's discouraged indeed
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   setting.CustomConf,
			Usage:   "Set custom config file (defaults to 'custom/conf/app.ini')",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output readable multi-line markup, overrides SCRIPT_DEBUG",
		},
	}
}

func prepareSubcommandWithConfig(command *cli.Command, globalFlags []cli.Flag) {
	if command.Before != nil {
		return // already prepared by another app
	}
	command.Flags = append(append([]cli.Flag{}, globalFlags...), command.Flags...)
	command.Before = prepareSettings
}

// prepareSettings loads the config file and applies the global flags, the flag of the nearest command wins
func prepareSettings(ctx *cli.Context) error {
	configFile, debugSet, debug := setting.CustomConf, false, false
	configSet := false
	for _, curCtx := range ctx.Lineage() {
		if curCtx.IsSet("config") && !configSet {
			configFile, configSet = curCtx.String("config"), true
		}
		if curCtx.IsSet("debug") && !debugSet {
			debug, debugSet = curCtx.Bool("debug"), true
		}
	}

	setting.CustomConf = configFile
	if err := setting.LoadSettings(configFile); err != nil {
		return fmt.Errorf("unable to load config file %q: %w", configFile, err)
	}
	if debugSet {
		setting.Duotone.ScriptDebug = debug
	}
	setting.InitLogger()
	return nil
}

type AppVersion struct {
	Version string
	Extra   string
}

func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "duotone" // must be lower-cased because it appears in the "USAGE" section
	app.Usage = "Duotone SVG filters for rendered blocks"
	app.Description = `The duotone program resolves CSS colors and renders duotone SVG filters with their scoped styles. Use the "web" subcommand to serve them over HTTP.`
	app.Version = appVer.Version + appVer.Extra
	app.EnableBashCompletion = true

	// these sub-commands need to use config file
	subCmdWithConfig := []*cli.Command{
		CmdRender,
		CmdBlock,
		CmdPresets,
		CmdWeb,
	}

	// these sub-commands do not need the config file
	subCmdStandalone := []*cli.Command{
		CmdResolve,
		CmdDocs,
	}

	app.Flags = append(app.Flags, appGlobalFlags()...)
	for i := range subCmdWithConfig {
		prepareSubcommandWithConfig(subCmdWithConfig[i], appGlobalFlags())
	}
	app.Commands = append(app.Commands, subCmdWithConfig...)
	app.Commands = append(app.Commands, subCmdStandalone...)
	return app
}

func RunMainApp(app *cli.App, args ...string) error {
	ctx, cancel := installSignals()
	defer cancel()
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}

func installSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
