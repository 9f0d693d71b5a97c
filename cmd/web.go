// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/log"
	"code.gitea.io/duotone/modules/setting"
	"code.gitea.io/duotone/modules/theme"
	"code.gitea.io/duotone/modules/watcher"
	"code.gitea.io/duotone/routers/web"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/cors"
	"github.com/urfave/cli/v2"
)

// CmdWeb represents the available web sub-command.
var CmdWeb = &cli.Command{
	Name:        "web",
	Usage:       "Start the duotone web server",
	Description: "Serve the theme presets, filter rendering and color resolving over HTTP.",
	Action:      runWeb,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Temporary port number to prevent conflict",
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "Path of the theme file, defaults to [duotone] THEME_FILE",
		},
	},
}

// watchTheme reloads the presets when the theme file is written or replaced
func watchTheme(ctx context.Context, themeFile string, api *web.API) {
	watcher.CreateWatcher(ctx, "theme presets", &watcher.CreateWatcherOpts{
		// the directory is watched, editors replace the file on save
		Paths: []string{filepath.Dir(themeFile)},
		Filter: func(event fsnotify.Event) bool {
			return filepath.Clean(event.Name) == filepath.Clean(themeFile) && event.Has(fsnotify.Write|fsnotify.Create)
		},
		BetweenCallback: func() {
			presets, err := theme.LoadPresets(themeFile)
			if err != nil {
				log.Error("Unable to reload duotone presets from %s: %v", themeFile, err)
				return
			}
			api.ReloadPresets(presets)
			log.Info("Reloaded %d duotone presets from %s", len(presets), themeFile)
		},
	})
}

func runWeb(ctx *cli.Context) error {
	if ctx.IsSet("port") {
		port, err := strconv.Atoi(ctx.String("port"))
		if err != nil {
			return cli.Exit("invalid port: "+ctx.String("port"), 1)
		}
		setting.Server.HTTPPort = port
	}

	themeFile := ctx.String("theme")
	if themeFile == "" {
		themeFile = setting.Duotone.ThemeFile
	}
	var presets []duotone.Preset
	if themeFile != "" {
		var err error
		if presets, err = theme.LoadPresets(themeFile); err != nil {
			return err
		}
		log.Info("Loaded %d duotone presets from %s", len(presets), themeFile)
	}

	opts := web.Options{
		Presets:   presets,
		IDs:       duotone.UUIDGenerator{Prefix: setting.Duotone.FilterIDPrefix},
		Debug:     setting.Duotone.ScriptDebug,
		CacheSize: setting.Server.PresetCacheSize,
	}
	if setting.CORSConfig.Enabled {
		opts.CORS = &cors.Options{
			AllowedOrigins: setting.CORSConfig.AllowDomain,
			AllowedMethods: setting.CORSConfig.Methods,
			MaxAge:         int(setting.CORSConfig.MaxAge.Seconds()),
		}
	}
	handler, err := web.Routes(opts)
	if err != nil {
		return err
	}
	if themeFile != "" {
		watchTheme(ctx.Context, themeFile, handler)
	}

	srv := &http.Server{
		Addr:              setting.Server.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx.Context },
	}
	go func() {
		<-ctx.Context.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shutdown the web server: %v", err)
		}
	}()

	log.Info("Listen: http://%s", srv.Addr)
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Critical("Failed to start server: %v", err)
		return err
	}
	log.Info("HTTP Listener: %s Closed", srv.Addr)
	return nil
}
