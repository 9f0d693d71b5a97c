// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/duotone/modules/log"
)

// Duotone settings
var Duotone = struct {
	// ScriptDebug selects the readable multi-line output instead of the compacted one
	ScriptDebug    bool
	FilterIDPrefix string
	ThemeFile      string
}{
	FilterIDPrefix: "wp-duotone-",
}

func loadDuotoneFrom(rootCfg ConfigProvider, getenv GetEnvFunc) {
	sec := rootCfg.Section("duotone")
	Duotone.ScriptDebug = sec.Key("SCRIPT_DEBUG").MustBool(false)
	Duotone.FilterIDPrefix = sec.Key("FILTER_ID_PREFIX").MustString("wp-duotone-")
	Duotone.ThemeFile = sec.Key("THEME_FILE").MustString("")

	if getenv != nil {
		if raw := getenv("SCRIPT_DEBUG"); raw != "" {
			if v, ok := parseEnvBool(raw); ok {
				Duotone.ScriptDebug = v
			} else {
				log.Warn("Ignoring invalid SCRIPT_DEBUG environment value %q", raw)
			}
		}
	}
}
