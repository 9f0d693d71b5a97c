// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"net"
	"strconv"
)

// ServerSettings configures the preview web server
type ServerSettings struct {
	HTTPAddr        string
	HTTPPort        int
	PresetCacheSize int
}

// Server settings
var Server = ServerSettings{
	HTTPAddr:        "127.0.0.1",
	HTTPPort:        3000,
	PresetCacheSize: 128,
}

func loadServerFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("server")
	Server.HTTPAddr = sec.Key("HTTP_ADDR").MustString("127.0.0.1")
	Server.HTTPPort = sec.Key("HTTP_PORT").MustInt(3000)
	Server.PresetCacheSize = sec.Key("PRESET_CACHE_SIZE").MustInt(128)
	if Server.PresetCacheSize <= 0 {
		Server.PresetCacheSize = 128
	}
}

// ListenAddr returns the host:port the web server listens on
func (s ServerSettings) ListenAddr() string {
	return net.JoinHostPort(s.HTTPAddr, strconv.Itoa(s.HTTPPort))
}
