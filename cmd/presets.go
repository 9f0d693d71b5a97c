// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"code.gitea.io/duotone/modules/setting"
	"code.gitea.io/duotone/modules/theme"

	"github.com/urfave/cli/v2"
)

// CmdPresets represents the available presets sub-command.
var CmdPresets = &cli.Command{
	Name:        "presets",
	Usage:       "Render the global filters of the theme presets",
	Description: "Render one SVG filter per duotone preset of a theme.json (or YAML) file, with the id 'wp-duotone-<slug>'.",
	Action:      runPresets,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "theme",
			Usage: "Path of the theme file, defaults to [duotone] THEME_FILE",
		},
		&cli.BoolFlag{
			Name:  "list",
			Usage: "Only list the preset slugs and names",
		},
	},
}

func runPresets(ctx *cli.Context) error {
	themeFile := ctx.String("theme")
	if themeFile == "" {
		themeFile = setting.Duotone.ThemeFile
	}
	if themeFile == "" {
		return cli.Exit("no theme file given, use --theme or set [duotone] THEME_FILE", 1)
	}

	presets, err := theme.LoadPresets(themeFile)
	if err != nil {
		return fmt.Errorf("unable to load presets from %q: %w", themeFile, err)
	}

	if ctx.Bool("list") {
		for _, p := range presets {
			if _, err = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", p.Slug, p.Name); err != nil {
				return err
			}
		}
		return nil
	}
	_, err = fmt.Fprintln(ctx.App.Writer, theme.RenderPresets(presets, setting.Duotone.ScriptDebug))
	return err
}
