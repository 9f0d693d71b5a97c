// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// BaseLogger provides the basic logging functions
type BaseLogger interface {
	Log(skip int, level Level, format string, v ...any)
	GetLevel() Level
}

// LevelLogger provides level-related logging functions
type LevelLogger interface {
	LevelEnabled(level Level) bool

	Trace(format string, v ...any)
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Critical(format string, v ...any)
}

type Logger interface {
	BaseLogger
	LevelLogger
}

// LoggerImpl writes formatted events to a single writer
type LoggerImpl struct {
	mu  sync.Mutex
	out io.Writer

	level    Level
	flags    int
	prefix   string
	colorize bool
}

var _ Logger = (*LoggerImpl)(nil)

// NewLogger creates a logger writing to out, flags==0 means LstdFlags and flags==-1 means no flags
func NewLogger(out io.Writer, level Level, flags int, colorize bool) *LoggerImpl {
	switch flags {
	case 0:
		flags = LstdFlags
	case -1:
		flags = 0
	}
	return &LoggerImpl{out: out, level: level, flags: flags, colorize: colorize}
}

// SetLevel changes the minimal level which will be written
func (l *LoggerImpl) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetFlags changes the prefix flags, -1 means no flags
func (l *LoggerImpl) SetFlags(flags int) {
	if flags == -1 {
		flags = 0
	}
	l.mu.Lock()
	l.flags = flags
	l.mu.Unlock()
}

// SetPrefix sets the text written before every event
func (l *LoggerImpl) SetPrefix(prefix string) {
	l.mu.Lock()
	l.prefix = prefix
	l.mu.Unlock()
}

// GetLevel returns the logging level for this logger
func (l *LoggerImpl) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return level >= l.GetLevel()
}

// Log prepares the event and writes it, skip is the number of stack frames above the caller of Log
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}

	event := &Event{Time: time.Now(), Level: level}
	if pc, filename, line, ok := runtime.Caller(skip + 1); ok {
		event.Filename, event.Line = filename, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			event.Caller = fn.Name() + "()"
		}
	}
	if len(v) == 0 {
		event.Msg = format
	} else {
		event.Msg = fmt.Sprintf(format, v...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	buf := make([]byte, 0, 256)
	event.appendTo(&buf, l.prefix, l.flags, l.colorize)
	_, _ = l.out.Write(buf)
}

func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

func (l *LoggerImpl) Critical(format string, v ...any) {
	l.Log(1, CRITICAL, format, v...)
}

// Fatal records the event and exits the process
func (l *LoggerImpl) Fatal(format string, v ...any) {
	l.Log(1, FATAL, format, v...)
	os.Exit(1)
}
