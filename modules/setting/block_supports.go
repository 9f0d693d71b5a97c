// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	"code.gitea.io/duotone/modules/log"
)

// BlockSupport is the duotone capability of a block type (or a glob of block types)
type BlockSupport struct {
	Pattern string
	// Duotone is the comma-separated selector template of the filtered elements
	Duotone string
}

var defaultBlockSupports = []BlockSupport{
	{Pattern: "core/image", Duotone: "img"},
	{Pattern: "core/cover", Duotone: ".wp-block-cover__image-background, .wp-block-cover__video-background"},
}

// BlockSupports lists the configured block supports in config order
var BlockSupports = append([]BlockSupport(nil), defaultBlockSupports...)

func loadBlockSupportsFrom(rootCfg ConfigProvider) {
	children := rootCfg.Section("block_supports").ChildSections()
	if len(children) == 0 {
		BlockSupports = append([]BlockSupport(nil), defaultBlockSupports...)
		return
	}

	BlockSupports = make([]BlockSupport, 0, len(children))
	for _, sec := range children {
		pattern := strings.TrimPrefix(sec.Name(), "block_supports.")
		if pattern == "" {
			log.Warn("name is empty, block support " + sec.Name() + " ignored")
			continue
		}
		selectors := strings.TrimSpace(sec.Key("DUOTONE").MustString(""))
		if selectors == "" {
			log.Warn("[%s] has no DUOTONE selectors, ignored", sec.Name())
			continue
		}
		BlockSupports = append(BlockSupports, BlockSupport{Pattern: pattern, Duotone: selectors})
	}
}
