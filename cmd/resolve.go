// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"code.gitea.io/duotone/modules/color"

	"github.com/urfave/cli/v2"
)

// CmdResolve represents the available resolve sub-command.
var CmdResolve = &cli.Command{
	Name:        "resolve",
	Usage:       "Resolve CSS colors to RGB",
	Description: "Print the detected format, the hex value and the 0-255 channels of each color. Colors which can't be resolved make the command fail.",
	ArgsUsage:   "<color>...",
	Action:      runResolve,
}

func runResolve(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("no color given", 1)
	}

	failed := 0
	for _, raw := range ctx.Args().Slice() {
		c, ok := color.Resolve(raw).Get()
		if !ok {
			failed++
			_, _ = fmt.Fprintf(ctx.App.ErrWriter, "%q: not a color\n", raw)
			continue
		}
		format, _ := color.Detect(raw)
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\t%s %s %s\n", raw, format, c.Hex(),
			formatChannel(c.R), formatChannel(c.G), formatChannel(c.B))
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d color(s) could not be resolved", failed), 1)
	}
	return nil
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
