// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package blocksupport connects the duotone filter generator to rendered blocks:
// it decides whether a block gets a filter, renders it into the document styles
// and tags the block's wrapper element with the filter class.
package blocksupport

import (
	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/htmlutil"
	"code.gitea.io/duotone/modules/log"
)

// Renderer applies the duotone block support
type Renderer struct {
	Registry *Registry
	IDs      duotone.IDGenerator
	Debug    bool
}

// NewRenderer creates a renderer, ids are random with the given prefix
func NewRenderer(registry *Registry, idPrefix string, debug bool) *Renderer {
	return &Renderer{Registry: registry, IDs: duotone.UUIDGenerator{Prefix: idPrefix}, Debug: debug}
}

// Render returns the block content with the filter class added to its wrapper element,
// the filter SVG and its <style> are added to styles.
// Blocks without duotone support or without a duotone attribute are returned unchanged.
func (r *Renderer) Render(block Block, content string, styles *StyleCollector) string {
	selectors := r.Registry.DuotoneSelectors(block.Name)
	if selectors == "" {
		return content
	}
	colors, ok := DuotoneColors(block.Attrs)
	if !ok {
		return content
	}

	id := r.IDs.NewID()
	tables, skipped := duotone.BuildTables(colors)
	for _, s := range skipped {
		log.Warn("Block %s: duotone color %q can't be resolved, skipped", block.Name, s)
	}
	if tables.Len() == 0 {
		log.Debug("Block %s: duotone filter %s has no stops", block.Name, id)
	}

	svg := duotone.RenderTables(id, tables, r.Debug)
	styles.Add(svg + htmlutil.StyleTag(duotone.FilterStyle(id, selectors, r.Debug)))

	return AddClassToFirst(content, id)
}
