// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides leveled logging for the duotone tools.
// Concepts:
//
// * Logger: a Logger provides logging functions and writes formatted events to its writer
//
// * Event: the time, level, caller and message of one log call
//
// Call graph:
// -> log.Info()
// -> LoggerImpl.Log()
// -> Event.appendTo() formats the prefix, then the bytes go to the writer
package log

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

var defaultLogger atomic.Pointer[LoggerImpl]

func init() {
	defaultLogger.Store(NewConsoleLogger(os.Stderr, INFO))
}

// NewConsoleLogger creates a logger for a terminal-like writer, the output is colorized when the writer is a tty
func NewConsoleLogger(w io.Writer, level Level) *LoggerImpl {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return NewLogger(w, level, LstdFlags, colorize)
}

// GetLogger returns the default logger
func GetLogger() *LoggerImpl {
	return defaultLogger.Load()
}

// SetDefaultLogger replaces the default logger, it returns the previous one
func SetDefaultLogger(l *LoggerImpl) *LoggerImpl {
	return defaultLogger.Swap(l)
}

// GetLevel returns the level of the default logger
func GetLevel() Level {
	return GetLogger().GetLevel()
}

// IsDebug returns whether debug events are written
func IsDebug() bool {
	return GetLogger().LevelEnabled(DEBUG)
}

func Trace(format string, v ...any) {
	GetLogger().Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	GetLogger().Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	GetLogger().Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	GetLogger().Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	GetLogger().Log(1, ERROR, format, v...)
}

func Critical(format string, v ...any) {
	GetLogger().Log(1, CRITICAL, format, v...)
}

func Fatal(format string, v ...any) {
	GetLogger().Log(1, FATAL, format, v...)
	os.Exit(1)
}
