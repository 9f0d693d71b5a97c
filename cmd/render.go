// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/htmlutil"
	"code.gitea.io/duotone/modules/log"
	"code.gitea.io/duotone/modules/setting"

	"github.com/urfave/cli/v2"
)

// CmdRender represents the available render sub-command.
var CmdRender = &cli.Command{
	Name:        "render",
	Usage:       "Render a duotone filter and its style",
	Description: "Render the SVG filter of the given colors, followed by the <style> rule applying it to the selector.",
	ArgsUsage:   "<color>...",
	Action:      runRender,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "id",
			Usage: "Filter id, a random one with the configured prefix is used when empty",
		},
		&cli.StringFlag{
			Name:     "selector",
			Aliases:  []string{"s"},
			Usage:    "Comma-separated selectors of the filtered elements",
			Required: true,
		},
	},
}

func runRender(ctx *cli.Context) error {
	id := ctx.String("id")
	if id == "" {
		id = duotone.UUIDGenerator{Prefix: setting.Duotone.FilterIDPrefix}.NewID()
	} else if !duotone.IsValidID(id) {
		return fmt.Errorf("invalid filter id %q", id)
	}
	selector := ctx.String("selector")
	if !duotone.IsValidSelector(selector) {
		return fmt.Errorf("invalid selector %q", selector)
	}

	tables, skipped := duotone.BuildTables(ctx.Args().Slice())
	for _, s := range skipped {
		log.Warn("Duotone filter %s: %q can't be resolved, skipped", id, s)
	}

	debug := setting.Duotone.ScriptDebug
	out := duotone.RenderTables(id, tables, debug) + htmlutil.StyleTag(duotone.FilterStyle(id, selector, debug))
	_, err := fmt.Fprintln(ctx.App.Writer, out)
	return err
}
