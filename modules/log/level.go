// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"strconv"
	"strings"

	"code.gitea.io/duotone/modules/json"
)

// Level is the level of the logger
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

// CRITICAL is logged as ERROR
const CRITICAL = ERROR

type levelInfo struct {
	name   string
	colors []ColorAttribute
}

// levels is indexed by Level
var levels = [...]levelInfo{
	UNDEFINED: {"undefined", []ColorAttribute{Reset}},
	TRACE:     {"trace", []ColorAttribute{Bold, FgCyan}},
	DEBUG:     {"debug", []ColorAttribute{Bold, FgBlue}},
	INFO:      {"info", []ColorAttribute{Bold, FgGreen}},
	WARN:      {"warn", []ColorAttribute{Bold, FgYellow}},
	ERROR:     {"error", []ColorAttribute{Bold, FgRed}},
	FATAL:     {"fatal", []ColorAttribute{Bold, BgRed}},
	NONE:      {"none", []ColorAttribute{Reset}},
}

func (l Level) valid() bool {
	return l >= UNDEFINED && int(l) < len(levels)
}

// String returns the lower-case name, out of range levels are "info"
func (l Level) String() string {
	if !l.valid() {
		return levels[INFO].name
	}
	return levels[l].name
}

func (l Level) ColorAttributes() []ColorAttribute {
	if !l.valid() {
		return levels[NONE].colors
	}
	return levels[l].colors
}

// MarshalJSON writes the level name
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(l.String())), nil
}

// UnmarshalJSON accepts a level name or its number, anything else is INFO
func (l *Level) UnmarshalJSON(b []byte) error {
	var tmp any
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}

	*l = INFO
	switch v := tmp.(type) {
	case string:
		*l = LevelFromString(v)
	case float64:
		if n := Level(int(v)); n.valid() {
			*l = n
		}
	}
	return nil
}

// LevelFromString takes a level name, "warning" is accepted for WARN, unknown names are INFO
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WARN
	}
	for i, info := range levels {
		if info.name == level {
			return Level(i)
		}
	}
	return INFO
}

// LevelForDebug lowers the configured level to DEBUG when script debugging is on.
// Levels already at DEBUG or below are kept.
func LevelForDebug(configured Level, scriptDebug bool) Level {
	if scriptDebug && configured > DEBUG && configured != NONE {
		return DEBUG
	}
	return configured
}
