// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package watcher

import (
	"context"

	"code.gitea.io/duotone/modules/log"

	"github.com/fsnotify/fsnotify"
)

// CreateWatcherOpts are options to configure the watcher
type CreateWatcherOpts struct {
	// Paths are the files or directories to watch, a missing path is skipped
	Paths []string

	// Filter selects the events which trigger the BetweenCallback, every event does when nil
	Filter func(event fsnotify.Event) bool

	// BeforeCallback is called before any files are watched
	BeforeCallback func()

	// BetweenCallback is called after a watched event has occurred
	BetweenCallback func()

	// AfterCallback is called as this watcher ends
	AfterCallback func()
}

// CreateWatcher creates a watcher labelled with the provided description and running with the provided options.
// The watcher ends when ctx is done.
func CreateWatcher(ctx context.Context, desc string, opts *CreateWatcherOpts) {
	go run(ctx, desc, opts)
}

func run(ctx context.Context, desc string, opts *CreateWatcherOpts) {
	if opts.BeforeCallback != nil {
		opts.BeforeCallback()
	}
	if opts.AfterCallback != nil {
		defer opts.AfterCallback()
	}

	log.Trace("Watcher loop starting for %s", desc)
	defer log.Trace("Watcher loop ended for %s", desc)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("Unable to create watcher for %s: %v", desc, err)
		return
	}
	defer watcher.Close()

	for _, path := range opts.Paths {
		if err := watcher.Add(path); err != nil {
			log.Warn("Watcher: %s unable to watch %q: %v", desc, path, err)
			continue
		}
		log.Trace("Watcher: %s watching %q", desc, path)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Debug("Watched file for %s had event: %v", desc, event)
			if opts.Filter != nil && !opts.Filter(event) {
				continue
			}
			if opts.BetweenCallback != nil {
				opts.BetweenCallback()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("Error whilst watching files for %s: %v", desc, err)
		case <-ctx.Done():
			return
		}
	}
}
