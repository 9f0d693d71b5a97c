// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWatcher(t *testing.T) {
	dir := t.TempDir()
	themeFile := filepath.Join(dir, "theme.json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started, ended atomic.Bool
	var changes atomic.Int32
	CreateWatcher(ctx, "test", &CreateWatcherOpts{
		Paths: []string{dir, filepath.Join(dir, "missing")},
		Filter: func(event fsnotify.Event) bool {
			return filepath.Base(event.Name) == "theme.json"
		},
		BeforeCallback:  func() { started.Store(true) },
		BetweenCallback: func() { changes.Add(1) },
		AfterCallback:   func() { ended.Store(true) },
	})
	assert.Eventually(t, started.Load, time.Second, 10*time.Millisecond)

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(themeFile, []byte("{}"), 0o644))
	assert.Eventually(t, func() bool { return changes.Load() > 0 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.Eventually(t, ended.Load, time.Second, 10*time.Millisecond)
}
