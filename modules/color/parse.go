// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"regexp"
	"strconv"
	"strings"

	"code.gitea.io/duotone/modules/optional"
)

// Format is the grammar a color string was written in
type Format string

const (
	FormatRGB  Format = "rgb"
	FormatRGBA Format = "rgba"
	FormatHSL  Format = "hsl"
	FormatHSLA Format = "hsla"
	FormatHex8 Format = "hex8"
	FormatHex6 Format = "hex6"
	FormatHex4 Format = "hex4"
	FormatHex3 Format = "hex3"
)

const (
	cssInteger = `[-\+]?\d+%?`
	cssNumber  = `[-\+]?\d*\.\d+%?`
	cssUnit    = `(?:` + cssNumber + `)|(?:` + cssInteger + `)`

	permissiveMatch3 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`
	permissiveMatch4 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`
)

type grammar struct {
	format Format
	re     *regexp.Regexp
	toRGB  func(m []string) RGB
}

func fromRGBTokens(m []string) RGB {
	return RGBToRGB(m[1], m[2], m[3])
}

func fromHSLTokens(m []string) RGB {
	return HSLToRGB(m[1], convertToPercentage(m[2]), convertToPercentage(m[3]))
}

func fromHexPairs(m []string) RGB {
	return RGBToRGB(hexToDecimal(m[1]), hexToDecimal(m[2]), hexToDecimal(m[3]))
}

func fromHexNibbles(m []string) RGB {
	return RGBToRGB(hexToDecimal(m[1]+m[1]), hexToDecimal(m[2]+m[2]), hexToDecimal(m[3]+m[3]))
}

func hexToDecimal(s string) string {
	v, _ := strconv.ParseUint(s, 16, 8)
	return strconv.FormatUint(v, 10)
}

// grammars are tried in this order, the first match wins
var grammars = []grammar{
	{FormatRGB, regexp.MustCompile(`^rgb` + permissiveMatch3 + `$`), fromRGBTokens},
	{FormatRGBA, regexp.MustCompile(`^rgba` + permissiveMatch4 + `$`), fromRGBTokens},
	{FormatHSL, regexp.MustCompile(`^hsl` + permissiveMatch3 + `$`), fromHSLTokens},
	{FormatHSLA, regexp.MustCompile(`^hsla` + permissiveMatch4 + `$`), fromHSLTokens},
	{FormatHex8, regexp.MustCompile(`^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`), fromHexPairs},
	{FormatHex6, regexp.MustCompile(`^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`), fromHexPairs},
	{FormatHex4, regexp.MustCompile(`^#?([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])$`), fromHexNibbles},
	{FormatHex3, regexp.MustCompile(`^#?([0-9a-f])([0-9a-f])([0-9a-f])$`), fromHexNibbles},
}

func match(raw string) (*grammar, []string) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for i := range grammars {
		if m := grammars[i].re.FindStringSubmatch(s); m != nil {
			return &grammars[i], m
		}
	}
	return nil, nil
}

// Resolve parses a CSS color string, the result is None when no grammar matches
func Resolve(raw string) optional.Option[RGB] {
	g, m := match(raw)
	if g == nil {
		return optional.None[RGB]()
	}
	return optional.Some(g.toRGB(m))
}

// MustResolve is like Resolve but panics if the string is not a color
func MustResolve(raw string) RGB {
	c, ok := Resolve(raw).Get()
	if !ok {
		panic("color: unable to resolve " + strconv.Quote(raw))
	}
	return c
}

// Detect returns the grammar which Resolve would use for the string
func Detect(raw string) (Format, bool) {
	g, _ := match(raw)
	if g == nil {
		return "", false
	}
	return g.format, true
}
