// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color resolves CSS color strings into RGB values.
//
// The normalization follows tinycolor v1.4.2 exactly (including its quirks),
// so values computed here match the ones computed by the editor in the browser.
package color

import (
	"fmt"
	"math"
)

// RGB is a color in 8-bit space, each channel in [0,255].
// Channels may be fractional, nothing here rounds them.
type RGB struct {
	R, G, B float64
}

// Unit returns the channels scaled into [0,1]
func (c RGB) Unit() (r, g, b float64) {
	return c.R / 255, c.G / 255, c.B / 255
}

// Hex returns the "#rrggbb" form with each channel rounded to the nearest integer
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", roundChannel(c.R), roundChannel(c.G), roundChannel(c.B))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// Luminance returns the relative luminance in [0,1]
func (c RGB) Luminance() float64 {
	// Reference from: https://www.w3.org/WAI/GL/wiki/Relative_luminance
	return (0.2126*c.R + 0.7152*c.G + 0.0722*c.B) / 255
}

// IsDark reports whether light text would be more readable on this color
func (c RGB) IsDark() bool {
	return c.Luminance() < 0.453
}

func roundChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
