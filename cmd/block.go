// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"code.gitea.io/duotone/modules/setting"
	"code.gitea.io/duotone/services/blocksupport"

	"github.com/urfave/cli/v2"
)

// CmdBlock represents the available block sub-command.
var CmdBlock = &cli.Command{
	Name:  "block",
	Usage: "Apply the duotone block support to a rendered block",
	Description: `Read a parsed block ({"blockName": ..., "attrs": ...}) and its rendered content, print the collected styles followed by the content.
The block type must have duotone support in the [block_supports.*] config sections.`,
	Action: runBlock,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "block",
			Aliases:  []string{"b"},
			Usage:    "Path of the parsed block JSON, '-' for stdin",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "content",
			Usage: "Path of the rendered block content, '-' for stdin",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Block type, overrides the blockName of the block file",
		},
	},
}

func readInput(ctx *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(ctx.App.Reader)
	}
	return os.ReadFile(path)
}

func runBlock(ctx *cli.Context) error {
	if ctx.String("block") == "-" && ctx.String("content") == "-" {
		return cli.Exit("only one of --block and --content can be read from stdin", 1)
	}

	data, err := readInput(ctx, ctx.String("block"))
	if err != nil {
		return err
	}
	block, err := blocksupport.ParseBlock(data)
	if err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	if ctx.IsSet("name") {
		block.Name = ctx.String("name")
	}

	var content []byte
	if ctx.String("content") != "" {
		if content, err = readInput(ctx, ctx.String("content")); err != nil {
			return err
		}
	}

	registry, err := blocksupport.NewRegistryFromSettings(setting.BlockSupports)
	if err != nil {
		return err
	}
	renderer := blocksupport.NewRenderer(registry, setting.Duotone.FilterIDPrefix, setting.Duotone.ScriptDebug)
	styles := blocksupport.NewStyleCollector()
	out := renderer.Render(block, string(content), styles)

	if styles.Len() > 0 {
		if _, err = fmt.Fprintln(ctx.App.Writer, styles.HTML()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}
