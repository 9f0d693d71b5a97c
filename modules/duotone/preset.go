// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package duotone generates the SVG filter and CSS rule of a duotone preset.
//
// A duotone filter first turns the image into grayscale and then maps the
// luminance through one lookup table per channel, so black becomes the first
// color of the preset and white becomes the last one.
package duotone

import (
	"strconv"
	"strings"

	"code.gitea.io/duotone/modules/color"
)

// Preset is an ordered list of colors, the order is the stop order of the filter
type Preset struct {
	Slug   string   `json:"slug" yaml:"slug"`
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Colors []string `json:"colors" yaml:"colors"`
}

// Tables holds the component-transfer lookup tables, all three always have the same length
type Tables struct {
	R, G, B []float64
}

// Len returns the number of stops
func (t Tables) Len() int {
	return len(t.R)
}

func formatTable(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

// TableValues returns the space-joined values of the three tables
func (t Tables) TableValues() (r, g, b string) {
	return formatTable(t.R), formatTable(t.G), formatTable(t.B)
}

// BuildTables resolves the colors in order and appends their unit values to the tables.
// Strings which are not colors are skipped and returned, they don't take a slot in any table.
func BuildTables(colors []string) (tables Tables, skipped []string) {
	tables = Tables{
		R: make([]float64, 0, len(colors)),
		G: make([]float64, 0, len(colors)),
		B: make([]float64, 0, len(colors)),
	}
	for _, s := range colors {
		c, ok := color.Resolve(s).Get()
		if !ok {
			skipped = append(skipped, s)
			continue
		}
		r, g, b := c.Unit()
		tables.R = append(tables.R, r)
		tables.G = append(tables.G, g)
		tables.B = append(tables.B, b)
	}
	return tables, skipped
}
