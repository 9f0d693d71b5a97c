// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package duotone

import (
	"html/template"
	"regexp"
	"strings"
)

var validIDPattern = regexp.MustCompile(`^[A-Za-z_][\w-]*$`)

// IsValidID reports whether id can be used as both a class name and a fragment reference
func IsValidID(id string) bool {
	return validIDPattern.MatchString(id)
}

// IsValidSelector reports whether the selector template stays inside a single CSS rule
// of a <style> element.
func IsValidSelector(selectorTemplate string) bool {
	return strings.TrimSpace(selectorTemplate) != "" && !strings.ContainsAny(selectorTemplate, "<{};")
}

// ScopeSelector prefixes every comma-separated selector of the template with the scope selector
func ScopeSelector(scope, selectorTemplate string) string {
	selectors := strings.Split(selectorTemplate, ",")
	scoped := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		scoped = append(scoped, scope+" "+strings.TrimSpace(sel))
	}
	return strings.Join(scoped, ", ")
}

// FilterProperty is the value of the CSS filter property referencing the SVG filter
func FilterProperty(id string) string {
	return "url('#" + id + "')"
}

// FilterStyle returns the rule applying the filter with the id to the selectors scoped by ".id".
// The declaration is marked !important to override the filters of the global styles.
func FilterStyle(id, selectorTemplate string, debug bool) template.CSS {
	selector := ScopeSelector("."+id, selectorTemplate)
	if debug {
		return template.CSS(selector + " {\n\tfilter: " + FilterProperty(id) + " !important;\n}\n")
	}
	return template.CSS(selector + "{filter:" + FilterProperty(id) + " !important;}")
}
