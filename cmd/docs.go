// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// CmdDocs represents the available docs sub-command.
var CmdDocs = &cli.Command{
	Name:        "docs",
	Usage:       "Output CLI and configuration documentation",
	Description: "Output the documentation of the duotone commands followed by the app.ini keys they read, optionally to a file.",
	Action:      runDocs,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "man",
			Usage: "Output man pages instead, without the configuration keys",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Path to output to instead of stdout (will overwrite if exists)",
		},
	},
}

type configKey struct {
	name, def, usage string
}

type configSection struct {
	name string
	keys []configKey
}

var configSections = []configSection{
	{"duotone", []configKey{
		{"SCRIPT_DEBUG", "false", "Pretty-print the filters and styles, overridden by the SCRIPT_DEBUG environment variable and --debug"},
		{"FILTER_ID_PREFIX", "wp-duotone-", "Prefix of generated filter ids"},
		{"THEME_FILE", "", "JSON or YAML theme file holding the duotone presets"},
	}},
	{"block_supports.<block name>", []configKey{
		{"DUOTONE", "", "Comma-separated selectors filtered for the block type, a glob like core/* is allowed in the section name"},
	}},
	{"server", []configKey{
		{"HTTP_ADDR", "127.0.0.1", "Listen address of the web command"},
		{"HTTP_PORT", "3000", "Listen port of the web command"},
		{"PRESET_CACHE_SIZE", "128", "Number of rendered preset filters kept in memory"},
	}},
	{"cors", []configKey{
		{"ENABLED", "false", "Send CORS headers on the API"},
		{"ALLOW_DOMAIN", "*", "Comma-separated allowed origins"},
		{"METHODS", "GET,HEAD,POST,OPTIONS", "Comma-separated allowed methods"},
		{"MAX_AGE", "10m", "Preflight cache duration"},
	}},
	{"log", []configKey{
		{"LEVEL", "Info", "Lowest level written, one of trace, debug, info, warn, error, fatal or none"},
		{"FLAGS", "stdflags", "Comma-separated prefix flags of each log line"},
	}},
}

func writeConfigDocs(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("# CONFIGURATION\n\n")
	sb.WriteString("Read from the file given by `--config`, every key is optional.\n")
	for _, sec := range configSections {
		fmt.Fprintf(&sb, "\n## [%s]\n\n", sec.name)
		sb.WriteString("| Key | Default | Description |\n|---|---|---|\n")
		for _, k := range sec.keys {
			fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", k.name, k.def, k.usage)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func runDocs(ctx *cli.Context) error {
	man := ctx.Bool("man")
	docs, err := ctx.App.ToMarkdown()
	if man {
		docs, err = ctx.App.ToMan()
	}
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	if ctx.String("output") != "" {
		fi, err := os.Create(ctx.String("output"))
		if err != nil {
			return err
		}
		defer fi.Close()
		out = fi
	}

	if _, err = fmt.Fprintln(out, docs); err != nil {
		return err
	}
	if man {
		return nil
	}
	return writeConfigDocs(out)
}
