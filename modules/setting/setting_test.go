// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.gitea.io/duotone/modules/log"
	"code.gitea.io/duotone/modules/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) GetEnvFunc {
	return func(key string) string {
		return m[key]
	}
}

func TestLoadDuotone(t *testing.T) {
	defer test.MockVariableValue(&Duotone)()

	cfg, err := NewConfigProviderFromData(`
[duotone]
SCRIPT_DEBUG = true
FILTER_ID_PREFIX = my-duotone-
THEME_FILE = theme.json
`)
	require.NoError(t, err)

	loadDuotoneFrom(cfg, nil)
	assert.True(t, Duotone.ScriptDebug)
	assert.Equal(t, "my-duotone-", Duotone.FilterIDPrefix)
	assert.Equal(t, "theme.json", Duotone.ThemeFile)

	loadDuotoneFrom(cfg, envOf(map[string]string{"SCRIPT_DEBUG": "0"}))
	assert.False(t, Duotone.ScriptDebug)

	loadDuotoneFrom(cfg, envOf(map[string]string{"SCRIPT_DEBUG": "maybe"}))
	assert.True(t, Duotone.ScriptDebug)

	empty, err := NewConfigProviderFromData("")
	require.NoError(t, err)
	loadDuotoneFrom(empty, envOf(map[string]string{"SCRIPT_DEBUG": "on"}))
	assert.True(t, Duotone.ScriptDebug)
	assert.Equal(t, "wp-duotone-", Duotone.FilterIDPrefix)
}

func TestLoadBlockSupports(t *testing.T) {
	defer test.MockVariableValue(&BlockSupports)()

	cfg, err := NewConfigProviderFromData(`
[block_supports.core/image]
DUOTONE = img, .wp-block-image__crop-area

[block_supports.acme/*]
DUOTONE = .acme-media

[block_supports.core/empty]
DUOTONE =
`)
	require.NoError(t, err)
	loadBlockSupportsFrom(cfg)
	assert.Equal(t, []BlockSupport{
		{Pattern: "core/image", Duotone: "img, .wp-block-image__crop-area"},
		{Pattern: "acme/*", Duotone: ".acme-media"},
	}, BlockSupports)

	empty, err := NewConfigProviderFromData("")
	require.NoError(t, err)
	loadBlockSupportsFrom(empty)
	assert.Equal(t, defaultBlockSupports, BlockSupports)
}

func TestLoadLogAndServer(t *testing.T) {
	defer test.MockVariableValue(&Log)()
	defer test.MockVariableValue(&Server)()

	cfg, err := NewConfigProviderFromData(`
[log]
LEVEL = Debug
FLAGS = none

[server]
HTTP_ADDR = 0.0.0.0
HTTP_PORT = 8080
PRESET_CACHE_SIZE = -1
`)
	require.NoError(t, err)
	loadLogFrom(cfg)
	loadServerFrom(cfg)
	assert.Equal(t, log.DEBUG, Log.Level)
	assert.Equal(t, -1, Log.Flags)
	assert.Equal(t, "0.0.0.0:8080", Server.ListenAddr())
	assert.Equal(t, 128, Server.PresetCacheSize)
}

func TestNewConfigProviderFromFile(t *testing.T) {
	cfg, err := NewConfigProviderFromFile(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.False(t, cfg.HasSection("duotone"))

	file := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(file, []byte("[duotone]\nSCRIPT_DEBUG = true\n"), 0o644))
	cfg, err = NewConfigProviderFromFile(file)
	require.NoError(t, err)
	assert.True(t, cfg.Section("duotone").Key("SCRIPT_DEBUG").MustBool(false))
}

func TestParseEnvBool(t *testing.T) {
	for s, expected := range map[string]bool{"1": true, "true": true, "ON": true, "yes": true, "0": false, "false": false, "off": false} {
		v, ok := parseEnvBool(s)
		assert.True(t, ok, s)
		assert.Equal(t, expected, v, s)
	}
	_, ok := parseEnvBool("")
	assert.False(t, ok)
	_, ok = parseEnvBool("debug")
	assert.False(t, ok)
}

func TestLoadCors(t *testing.T) {
	defer test.MockVariableValue(&CORSConfig)()

	cfg, err := NewConfigProviderFromData(`
[cors]
ENABLED = true
ALLOW_DOMAIN = https://editor.example.com, https://preview.example.com
MAX_AGE = 1h
`)
	require.NoError(t, err)
	loadCorsFrom(cfg)
	assert.True(t, CORSConfig.Enabled)
	assert.Equal(t, []string{"https://editor.example.com", "https://preview.example.com"}, CORSConfig.AllowDomain)
	assert.Equal(t, []string{"GET", "HEAD", "POST", "OPTIONS"}, CORSConfig.Methods)
	assert.Equal(t, time.Hour, CORSConfig.MaxAge)

	empty, err := NewConfigProviderFromData("")
	require.NoError(t, err)
	loadCorsFrom(empty)
	assert.False(t, CORSConfig.Enabled)
	assert.Equal(t, []string{"*"}, CORSConfig.AllowDomain)
}
