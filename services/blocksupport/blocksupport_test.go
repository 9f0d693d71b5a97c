// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package blocksupport

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
	"testing"

	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/setting"
	"code.gitea.io/duotone/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r, err := NewRegistryFromSettings([]setting.BlockSupport{
		{Pattern: "core/image", Duotone: "img"},
		{Pattern: "acme/*", Duotone: ".acme-media"},
		{Pattern: "acme/gallery", Duotone: ".acme-gallery img"},
	})
	require.NoError(t, err)

	assert.Equal(t, "img", r.DuotoneSelectors("core/image"))
	assert.Equal(t, ".acme-media", r.DuotoneSelectors("acme/video"))
	assert.Equal(t, ".acme-gallery img", r.DuotoneSelectors("acme/gallery"))
	assert.Equal(t, "", r.DuotoneSelectors("acme/nested/block"))
	assert.Equal(t, "", r.DuotoneSelectors("core/paragraph"))

	_, ok := r.Lookup("core/paragraph")
	assert.False(t, ok)

	assert.ErrorIs(t, r.Register("acme/[", Capability{Duotone: "img"}), util.ErrInvalidArgument)
}

func TestDuotoneColors(t *testing.T) {
	colors, ok := DuotoneColors(map[string]any{
		"style": map[string]any{"color": map[string]any{"duotone": []any{"#000", "#fff", 12.0}}},
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"#000", "#fff", "12"}, colors)

	colors, ok = DuotoneColors(map[string]any{
		"style": map[string]any{"color": map[string]any{"duotone": []string{"#000"}}},
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"#000"}, colors)

	for _, attrs := range []map[string]any{
		nil,
		{"style": "color"},
		{"style": map[string]any{"color": map[string]any{"text": "#000"}}},
		{"style": map[string]any{"color": map[string]any{"duotone": "var:preset|duotone|x"}}},
		{"style": map[string]any{"color": map[string]any{"duotone": nil}}},
	} {
		_, ok := DuotoneColors(attrs)
		assert.False(t, ok, "%v", attrs)
	}
}

func TestParseBlock(t *testing.T) {
	b, err := ParseBlock([]byte(`{"blockName":"core/image","attrs":{"style":{"color":{"duotone":["#000","#fff"]}}}}`))
	require.NoError(t, err)
	assert.Equal(t, "core/image", b.Name)
	colors, ok := DuotoneColors(b.Attrs)
	assert.True(t, ok)
	assert.Equal(t, []string{"#000", "#fff"}, colors)

	_, err = ParseBlock([]byte(`[`))
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestAddClassToFirst(t *testing.T) {
	cases := []struct {
		content  string
		expected string
	}{
		{
			`<figure class="wp-block-image"><img class="x" src="a.jpg"/></figure>`,
			`<figure class="f1 wp-block-image"><img class="x" src="a.jpg"/></figure>`,
		},
		{
			`<div><p>class="not an attribute"</p><figure class="a"><img src="a.jpg"></figure></div>`,
			`<div><p>class="not an attribute"</p><figure class="f1 a"><img src="a.jpg"></figure></div>`,
		},
		{
			`<img class="" src="a.jpg" />`,
			`<img class="f1" src="a.jpg"/>`,
		},
		{
			"<!-- wp:image -->\n<figure class='a'>\n<img src=\"a.jpg\">\n</figure>\n<!-- /wp:image -->",
			"<!-- wp:image -->\n<figure class=\"f1 a\">\n<img src=\"a.jpg\">\n</figure>\n<!-- /wp:image -->",
		},
		{
			`<figure><img src="a.jpg"></figure>`,
			`<figure><img src="a.jpg"></figure>`,
		},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, AddClassToFirst(c.content, "f1"), c.content)
	}
}

func TestStyleCollector(t *testing.T) {
	c := NewStyleCollector()
	assert.True(t, c.Add("<style>a</style>"))
	assert.True(t, c.Add("<style>b</style>"))
	assert.False(t, c.Add("<style>a</style>"))
	assert.Equal(t, 2, c.Len())
	assert.EqualValues(t, "<style>a</style><style>b</style>", c.HTML())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add(template.HTML(fmt.Sprintf("<style>.n%d{}</style>", i)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 12, c.Len())
}

func newTestRenderer(t *testing.T) *Renderer {
	registry := NewRegistry()
	require.NoError(t, registry.Register("core/image", Capability{Duotone: "img"}))
	require.NoError(t, registry.Register("core/cover", Capability{Duotone: ".wp-block-cover__image-background, .wp-block-cover__video-background"}))
	return &Renderer{Registry: registry, IDs: &duotone.CounterGenerator{Prefix: duotone.DefaultIDPrefix}}
}

func imageBlock(colors ...any) Block {
	return Block{
		Name:  "core/image",
		Attrs: map[string]any{"style": map[string]any{"color": map[string]any{"duotone": colors}}},
	}
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t)
	styles := NewStyleCollector()
	content := `<figure class="wp-block-image"><img src="a.jpg"/></figure>`

	out := r.Render(imageBlock("#000000", "#ffffff"), content, styles)
	assert.Equal(t, `<figure class="wp-duotone-1 wp-block-image"><img src="a.jpg"/></figure>`, out)
	assert.Equal(t, 1, styles.Len())
	styleHTML := string(styles.HTML())
	assert.Contains(t, styleHTML, `<filter id="wp-duotone-1">`)
	assert.Contains(t, styleHTML, `<feFuncG type="table" tableValues="0 1" />`)
	assert.True(t, strings.HasSuffix(styleHTML, "<style>.wp-duotone-1 img{filter:url('#wp-duotone-1') !important;}</style>"))

	out = r.Render(Block{Name: "core/cover", Attrs: imageBlock("#f00", "bogus", "#00f").Attrs}, `<div class="wp-block-cover"></div>`, styles)
	assert.Equal(t, `<div class="wp-duotone-2 wp-block-cover"></div>`, out)
	styleHTML = string(styles.HTML())
	assert.Contains(t, styleHTML, `<feFuncR type="table" tableValues="1 0" />`)
	assert.Contains(t, styleHTML, "<style>.wp-duotone-2 .wp-block-cover__image-background, .wp-duotone-2 .wp-block-cover__video-background{filter:url('#wp-duotone-2') !important;}</style>")
}

func TestRenderPassThrough(t *testing.T) {
	r := newTestRenderer(t)
	styles := NewStyleCollector()
	content := `<p class="x">text</p>`

	assert.Equal(t, content, r.Render(Block{Name: "core/paragraph", Attrs: imageBlock("#000").Attrs}, content, styles))
	assert.Equal(t, content, r.Render(Block{Name: "core/image"}, content, styles))
	assert.Equal(t, 0, styles.Len())
}

func TestRenderDebug(t *testing.T) {
	r := newTestRenderer(t)
	r.Debug = true
	styles := NewStyleCollector()
	r.Render(imageBlock("#000", "#fff"), `<figure class="a"></figure>`, styles)
	styleHTML := string(styles.HTML())
	assert.Contains(t, styleHTML, "\n\t\t<filter id=\"wp-duotone-1\">\n")
	assert.True(t, strings.HasSuffix(styleHTML, "<style>.wp-duotone-1 img {\n\tfilter: url('#wp-duotone-1') !important;\n}\n</style>"))
}
