// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package web serves rendered duotone filters over HTTP, for previews and for hosts
// which don't link the Go packages.
package web

import (
	"net/http"
	"sync"
	"time"

	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the routes
type Options struct {
	Presets   []duotone.Preset
	IDs       duotone.IDGenerator
	Debug     bool
	CacheSize int
	// CORS enables cross-origin requests from the listed origins when not nil
	CORS      *cors.Options
	// Registry receives the metrics, a new registry is used when nil
	Registry  *prometheus.Registry
}

type presetKey struct {
	slug  string
	debug bool
	// generation of the preset set, a filter rendered from replaced presets is never served
	gen   uint64
}

// API serves the duotone endpoints, the presets can be replaced while serving
type API struct {
	router chi.Router

	mu      sync.RWMutex
	presets map[string]duotone.Preset
	order   []string
	gen     uint64

	ids     duotone.IDGenerator
	debug   bool
	cache   *lru.Cache[presetKey, string]
	metrics *metrics
}

func (s *API) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(resp, req)
}

// ReloadPresets replaces the served presets and drops the rendered filters of the old ones
func (s *API) ReloadPresets(presets []duotone.Preset) {
	m := make(map[string]duotone.Preset, len(presets))
	order := make([]string, 0, len(presets))
	for _, p := range presets {
		if _, ok := m[p.Slug]; !ok {
			order = append(order, p.Slug)
		}
		m[p.Slug] = p
	}

	s.mu.Lock()
	s.presets, s.order = m, order
	s.gen++
	s.cache.Purge()
	s.mu.Unlock()
}

func (s *API) lookupPreset(slug string) (p duotone.Preset, gen uint64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok = s.presets[slug]
	return p, s.gen, ok
}

func (s *API) listedPresets() []duotone.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	presets := make([]duotone.Preset, 0, len(s.order))
	for _, slug := range s.order {
		presets = append(presets, s.presets[slug])
	}
	return presets
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(resp, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		log.Debug("%s %s %d in %v", req.Method, req.RequestURI, ww.Status(), time.Since(start))
	})
}

// Routes creates the router of the duotone API
func Routes(opts Options) (*API, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 128
	}
	cache, err := lru.New[presetKey, string](opts.CacheSize)
	if err != nil {
		return nil, err
	}
	if opts.IDs == nil {
		opts.IDs = duotone.UUIDGenerator{Prefix: duotone.DefaultIDPrefix}
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &API{
		ids:     opts.IDs,
		debug:   opts.Debug,
		cache:   cache,
		metrics: newMetrics(opts.Registry),
	}
	s.ReloadPresets(opts.Presets)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer, middleware.StripSlashes, accessLogger)
	if opts.CORS != nil {
		r.Use(cors.Handler(*opts.CORS))
	}
	r.Get("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}).ServeHTTP)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/duotone", func(r chi.Router) {
			r.Get("/presets", s.listPresets)
			r.Get("/presets/{slug}", s.presetFilter)
			r.Post("/render", s.render)
		})
		r.Get("/color/resolve", s.resolveColor)
	})
	s.router = r
	return s, nil
}
