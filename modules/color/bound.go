// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber reads the numeric part of a channel token, "50%" is 50
func parseNumber(n string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

func isPercentage(n string) bool {
	return strings.Contains(n, "%")
}

// Bound01 takes a channel token and its range limit, and returns the value in [0,1].
//
// The steps are exactly those of tinycolor's bound01:
//   - "1.0" (a 1 written with a decimal point) means "100%", a bare "1" does not
//   - the number is clamped into [0,limit]
//   - a percentage is then scaled by limit/100 and truncated to an integer
//   - anything within 1e-6 of limit is exactly 1
//   - otherwise the value wraps modulo limit
func Bound01(n string, limit float64) float64 {
	if strings.Contains(n, ".") && parseNumber(n) == 1 {
		n = "100%"
	}

	v := math.Min(limit, math.Max(0, parseNumber(n)))

	if isPercentage(n) {
		v = math.Floor(v * limit / 100)
	}

	if math.Abs(v-limit) < 0.000001 {
		return 1
	}

	return math.Mod(v, limit) / limit
}

// convertToPercentage turns a fraction like "0.5" into "50%", tokens already in percent are kept
func convertToPercentage(n string) string {
	if isPercentage(n) {
		return n
	}
	v := parseNumber(n)
	if v <= 1 {
		return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
	}
	return n
}
