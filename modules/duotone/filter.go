// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package duotone

import (
	"html/template"

	"code.gitea.io/duotone/modules/htmlutil"
)

// the grayscale matrix uses the Rec. 601 luma weights for every output channel and keeps alpha
const filterSVG template.HTML = `<svg
	xmlns="http://www.w3.org/2000/svg"
	viewBox="0 0 0 0"
	width="0"
	height="0"
	focusable="false"
	role="none"
	style="visibility: hidden; position: absolute; left: -9999px; overflow: hidden;"
>
	<defs>
		<filter id="%s">
			<feColorMatrix
				type="matrix"
				values="
					.299 .587 .114 0 0
					.299 .587 .114 0 0
					.299 .587 .114 0 0
					0 0 0 1 0
				"
			/>
			<feComponentTransfer color-interpolation-filters="sRGB" >
				<feFuncR type="table" tableValues="%s" />
				<feFuncG type="table" tableValues="%s" />
				<feFuncB type="table" tableValues="%s" />
			</feComponentTransfer>
		</filter>
	</defs>
</svg>
`

// RenderTables renders the hidden SVG holding a filter with the given id and tables.
// In debug mode the markup keeps its indentation, otherwise it is compacted to one line.
func RenderTables(id string, tables Tables, debug bool) template.HTML {
	r, g, b := tables.TableValues()
	svg := htmlutil.HTMLFormat(filterSVG, id, r, g, b)
	if !debug {
		svg = htmlutil.CompactMarkup(svg)
	}
	return svg
}

// RenderFilter renders the SVG filter of the preset, the filter id is the preset slug.
// Colors which can't be resolved are left out of the tables.
func RenderFilter(preset Preset, debug bool) template.HTML {
	tables, _ := BuildTables(preset.Colors)
	return RenderTables(preset.Slug, tables, debug)
}

// Generate renders the SVG filter followed by a <style> applying it to the
// selectors of selectorTemplate, scoped by the class named after the preset slug.
func Generate(preset Preset, selectorTemplate string, debug bool) template.HTML {
	return RenderFilter(preset, debug) + htmlutil.StyleTag(FilterStyle(preset.Slug, selectorTemplate, debug))
}
