// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"

	"code.gitea.io/duotone/modules/log"
)

// Log settings
var Log = struct {
	Level log.Level
	Flags int
}{
	Level: log.INFO,
	Flags: log.LstdFlags,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("Info"))
	Log.Flags = log.LstdFlags
	if sec.HasKey("FLAGS") {
		Log.Flags = log.FlagsFromString(sec.Key("FLAGS").String())
		if Log.Flags == 0 {
			Log.Flags = -1
		}
	}
}

// InitLogger replaces the default logger by a console logger using the loaded settings,
// debug messages are shown when SCRIPT_DEBUG is on
func InitLogger() {
	logger := log.NewConsoleLogger(os.Stderr, log.LevelForDebug(Log.Level, Duotone.ScriptDebug))
	logger.SetFlags(Log.Flags)
	log.SetDefaultLogger(logger)
}
