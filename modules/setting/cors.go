// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"time"

	"code.gitea.io/duotone/modules/log"
)

// CORSConfig defines CORS settings of the web API
var CORSConfig = struct {
	Enabled     bool
	AllowDomain []string
	Methods     []string
	MaxAge      time.Duration
}{
	AllowDomain: []string{"*"},
	Methods:     []string{"GET", "HEAD", "POST", "OPTIONS"},
	MaxAge:      10 * time.Minute,
}

func loadCorsFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("cors")
	CORSConfig.Enabled = sec.Key("ENABLED").MustBool(false)
	CORSConfig.AllowDomain = sec.Key("ALLOW_DOMAIN").Strings(",")
	if len(CORSConfig.AllowDomain) == 0 {
		CORSConfig.AllowDomain = []string{"*"}
	}
	CORSConfig.Methods = sec.Key("METHODS").Strings(",")
	if len(CORSConfig.Methods) == 0 {
		CORSConfig.Methods = []string{"GET", "HEAD", "POST", "OPTIONS"}
	}
	CORSConfig.MaxAge = sec.Key("MAX_AGE").MustDuration(10 * time.Minute)
	if CORSConfig.Enabled {
		log.Info("CORS Service Enabled")
	}
}
