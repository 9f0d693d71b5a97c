// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setting loads the app.ini configuration of the duotone tools.
package setting

import (
	"os"
	"strconv"
	"strings"
)

// CustomConf is the path of the config file given by --config
var CustomConf = "custom/conf/app.ini"

// GetEnvFunc reads an environment variable, tests pass their own
type GetEnvFunc func(key string) string

// LoadSettings loads all settings from the config file, environment variables override file values
func LoadSettings(file string) error {
	cfg, err := NewConfigProviderFromFile(file)
	if err != nil {
		return err
	}
	LoadSettingsFrom(cfg, os.Getenv)
	return nil
}

// LoadSettingsFrom loads all settings from an already parsed config
func LoadSettingsFrom(cfg ConfigProvider, getenv GetEnvFunc) {
	loadLogFrom(cfg)
	loadDuotoneFrom(cfg, getenv)
	loadBlockSupportsFrom(cfg)
	loadServerFrom(cfg)
	loadCorsFrom(cfg)
}

// parseEnvBool accepts the truthy strings used by SCRIPT_DEBUG
func parseEnvBool(s string) (value, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, true
	}
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	return false, false
}
