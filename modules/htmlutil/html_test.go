// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package htmlutil

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStringer struct{}

func (t testStringer) String() string {
	return "&StringMethod"
}

func TestHTMLFormat(t *testing.T) {
	assert.Equal(t, template.HTML("<a>&lt; < 1</a>"), HTMLFormat("<a>%s %s %d</a>", "<", template.HTML("<"), 1))
	assert.Equal(t, template.HTML("%!s(<nil>)"), HTMLFormat("%s", nil))
	assert.Equal(t, template.HTML(`<filter id="a&#34;b">`), HTMLFormat(`<filter id="%s">`, `a"b`))
	assert.Equal(t, template.HTML("&amp;StringMethod &amp;StringMethod"), HTMLFormat("%s %s", testStringer{}, &testStringer{}))
	assert.Panics(t, func() { HTMLFormat("no verbs") })
}

func TestHTMLPrintf(t *testing.T) {
	var sb strings.Builder
	_, err := HTMLPrintf(&sb, `<feFuncR tableValues="%s" />`, "0 1")
	assert.NoError(t, err)
	_, err = HTMLPrint(&sb, "<br>")
	assert.NoError(t, err)
	assert.Equal(t, `<feFuncR tableValues="0 1" /><br>`, sb.String())
}

func TestStyleTag(t *testing.T) {
	assert.Equal(t, template.HTML(`<style>.a img{filter:url('#a') !important;}</style>`), StyleTag(`.a img{filter:url('#a') !important;}`))
}

func TestCompactMarkup(t *testing.T) {
	in := template.HTML("\n\t<svg\n\t\twidth=\"0\"\n\t>\n\t\t<defs>\r\n\t\t</defs>\n\t</svg>\n")
	assert.Equal(t, template.HTML(`<svg width="0" ><defs></defs></svg>`), CompactMarkup(in))
	assert.Equal(t, template.HTML("a b"), CompactMarkup("  a   b  "))
}
