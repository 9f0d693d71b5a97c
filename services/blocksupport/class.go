// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package blocksupport

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// AddClassToFirst adds a class to the first element (in document order) which has a class attribute.
// Only that start tag is re-serialized, every other byte of the content is kept as is.
// Text which merely looks like `class="` is never touched.
// The content is returned unchanged when no element has a class attribute.
func AddClassToFirst(content, class string) string {
	z := html.NewTokenizer(strings.NewReader(content))
	var sb strings.Builder
	sb.Grow(len(content) + len(class) + 1)
	added := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if !errors.Is(z.Err(), io.EOF) {
				return content
			}
			break
		}
		if added || (tt != html.StartTagToken && tt != html.SelfClosingTagToken) {
			sb.Write(z.Raw())
			continue
		}

		raw := string(z.Raw())
		token := z.Token()
		idx := -1
		for i, attr := range token.Attr {
			if attr.Namespace == "" && attr.Key == "class" {
				idx = i
				break
			}
		}
		if idx == -1 {
			sb.WriteString(raw)
			continue
		}
		if token.Attr[idx].Val == "" {
			token.Attr[idx].Val = class
		} else {
			token.Attr[idx].Val = class + " " + token.Attr[idx].Val
		}
		sb.WriteString(token.String())
		added = true
	}
	if !added {
		return content
	}
	return sb.String()
}
