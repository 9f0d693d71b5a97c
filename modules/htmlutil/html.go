// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package htmlutil

import (
	"fmt"
	"html/template"
	"io"
	"regexp"
	"slices"
	"strings"
)

func htmlFormatArgs(s template.HTML, rawArgs []any) []any {
	if !strings.Contains(string(s), "%") || len(rawArgs) == 0 {
		panic("HTMLFormat requires one or more arguments")
	}
	args := slices.Clone(rawArgs)
	for i, v := range args {
		switch v := v.(type) {
		case nil, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, template.HTML:
			// for most basic types (including template.HTML which is safe), just do nothing and use it
		case string:
			args[i] = template.HTMLEscapeString(v)
		case template.CSS:
			args[i] = template.HTMLEscapeString(string(v))
		case fmt.Stringer:
			args[i] = template.HTMLEscapeString(v.String())
		default:
			args[i] = template.HTMLEscapeString(fmt.Sprint(v))
		}
	}
	return args
}

// HTMLFormat is like fmt.Sprintf but escapes the string arguments, the format itself is trusted
func HTMLFormat(s template.HTML, rawArgs ...any) template.HTML {
	return template.HTML(fmt.Sprintf(string(s), htmlFormatArgs(s, rawArgs)...))
}

func HTMLPrintf(w io.Writer, s template.HTML, rawArgs ...any) (int, error) {
	return fmt.Fprintf(w, string(s), htmlFormatArgs(s, rawArgs)...)
}

func HTMLPrint(w io.Writer, s template.HTML) (int, error) {
	return io.WriteString(w, string(s))
}

// StyleTag wraps generated CSS in a <style> element. The CSS must not come from user input.
func StyleTag(css template.CSS) template.HTML {
	return template.HTML("<style>" + string(css) + "</style>")
}

var (
	whitespaceRunRegexp = regexp.MustCompile(`[\r\n\t ]+`)
	tagGapRegexp        = regexp.MustCompile(`> <`)
)

// CompactMarkup collapses whitespace runs into one space and removes the space between adjacent tags
func CompactMarkup(s template.HTML) template.HTML {
	out := whitespaceRunRegexp.ReplaceAllString(string(s), " ")
	out = tagGapRegexp.ReplaceAllString(out, "><")
	return template.HTML(strings.TrimSpace(out))
}
