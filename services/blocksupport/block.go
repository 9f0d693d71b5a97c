// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package blocksupport

import (
	"fmt"

	"code.gitea.io/duotone/modules/json"
	"code.gitea.io/duotone/modules/util"
)

// Block is a parsed block: its type name and its attributes
type Block struct {
	Name  string         `json:"blockName"`
	Attrs map[string]any `json:"attrs"`
}

// ParseBlock decodes a block from its JSON form: {"blockName": "...", "attrs": {...}}
func ParseBlock(data []byte) (Block, error) {
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return b, util.NewInvalidArgumentErrorf("unable to parse block: %v", err)
	}
	return b, nil
}

func lookupPath(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// DuotoneColors returns the style.color.duotone attribute.
// Entries which are not strings are kept in their printed form, so they are reported as unresolvable later.
func DuotoneColors(attrs map[string]any) ([]string, bool) {
	v, ok := lookupPath(attrs, "style", "color", "duotone")
	if !ok || v == nil {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		colors := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				colors = append(colors, s)
			} else {
				colors = append(colors, fmt.Sprint(item))
			}
		}
		return colors, true
	}
	return nil, false
}
