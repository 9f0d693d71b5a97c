// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevel(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, WARN, -1, false)

	logger.Info("ignored %d", 1)
	assert.Empty(t, buf.String())

	logger.Warn("unresolvable color %q", "notacolor")
	assert.Equal(t, "unresolvable color \"notacolor\"\n", buf.String())

	buf.Reset()
	logger.SetLevel(TRACE)
	logger.Trace("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestLoggerFlags(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(&buf, INFO, Lshortfile|Llevelinitial, false)
	logger.SetPrefix("[duotone] ")
	logger.Error("boom")
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[duotone] logger_test.go:"), out)
	assert.True(t, strings.HasSuffix(out, " [E] boom\n"), out)
}

func TestEventFormat(t *testing.T) {
	event := &Event{
		Time:     time.Date(2019, time.January, 13, 22, 3, 30, 15, time.UTC),
		Level:    INFO,
		Caller:   "code.gitea.io/duotone/modules/duotone.RenderFilter()",
		Filename: "/src/modules/duotone/filter.go",
		Line:     42,
		Msg:      "first\nsecond\n",
	}
	var buf []byte
	event.appendTo(&buf, "", Ldate|Ltime|Lshortfile|Lshortfuncname|Llevel, false)
	assert.Equal(t, "2019/01/13 22:03:30 filter.go:42:RenderFilter() [INFO] first\n        second\n", string(buf))
}

func TestLevelForDebug(t *testing.T) {
	assert.Equal(t, DEBUG, LevelForDebug(INFO, true))
	assert.Equal(t, DEBUG, LevelForDebug(ERROR, true))
	assert.Equal(t, TRACE, LevelForDebug(TRACE, true))
	assert.Equal(t, NONE, LevelForDebug(NONE, true))
	assert.Equal(t, INFO, LevelForDebug(INFO, false))

	assert.Equal(t, []ColorAttribute{Bold, FgYellow}, WARN.ColorAttributes())
	assert.Equal(t, []ColorAttribute{Reset}, Level(-1).ColorAttributes())
	assert.Equal(t, "info", Level(-1).String())
}

func TestLevelJSON(t *testing.T) {
	b, err := WARN.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"warn"`, string(b))

	var l Level
	assert.NoError(t, l.UnmarshalJSON([]byte(`"Debug"`)))
	assert.Equal(t, DEBUG, l)
	assert.NoError(t, l.UnmarshalJSON([]byte(`5`)))
	assert.Equal(t, ERROR, l)

	assert.NoError(t, l.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, INFO, l)
	assert.NoError(t, l.UnmarshalJSON([]byte(`true`)))
	assert.Equal(t, INFO, l)
	assert.Error(t, l.UnmarshalJSON([]byte(`{`)))

	b, err = Level(42).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"info"`, string(b))

	assert.Equal(t, WARN, LevelFromString("warning"))
	assert.Equal(t, TRACE, LevelFromString(" Trace "))
	assert.Equal(t, NONE, LevelFromString("none"))
	assert.Equal(t, INFO, LevelFromString("unknown"))
	assert.Equal(t, Ldate|Lshortfile, FlagsFromString("date, shortfile"))
}
