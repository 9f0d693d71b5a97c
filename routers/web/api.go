// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"errors"
	"net/http"
	"strings"

	"code.gitea.io/duotone/modules/color"
	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/htmlutil"
	"code.gitea.io/duotone/modules/json"
	"code.gitea.io/duotone/modules/log"
	"code.gitea.io/duotone/modules/theme"
	"code.gitea.io/duotone/modules/util"

	"github.com/go-chi/chi/v5"
)

// RenderOptions is the body of a render request
type RenderOptions struct {
	ID       string   `json:"id"`
	Selector string   `json:"selector"`
	Colors   []string `json:"colors"`
	Debug    *bool    `json:"debug"`
}

// ResolvedColor is the response of a resolve request
type ResolvedColor struct {
	Format color.Format `json:"format"`
	R      float64      `json:"r"`
	G      float64      `json:"g"`
	B      float64      `json:"b"`
	Hex    string       `json:"hex"`
	Dark   bool         `json:"dark"`
}

type apiError struct {
	Message string `json:"message"`
}

func writeJSON(resp http.ResponseWriter, status int, v any) {
	resp.Header().Set("Content-Type", "application/json;charset=utf-8")
	resp.WriteHeader(status)
	if err := json.NewEncoder(resp).Encode(v); err != nil {
		log.Error("unable to write json response: %v", err)
	}
}

func writeError(resp http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, util.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, util.ErrNotExist):
		status = http.StatusNotFound
	default:
		log.Error("duotone api: %v", err)
	}
	writeJSON(resp, status, apiError{Message: err.Error()})
}

func (s *API) debugMode(req *http.Request) bool {
	switch req.URL.Query().Get("debug") {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return s.debug
}

func (s *API) listPresets(resp http.ResponseWriter, req *http.Request) {
	writeJSON(resp, http.StatusOK, s.listedPresets())
}

func (s *API) presetFilter(resp http.ResponseWriter, req *http.Request) {
	slug := strings.TrimSuffix(chi.URLParam(req, "slug"), ".svg")
	preset, gen, ok := s.lookupPreset(slug)
	if !ok {
		writeError(resp, util.NewNotExistErrorf("unknown duotone preset %q", slug))
		return
	}

	key := presetKey{slug: slug, debug: s.debugMode(req), gen: gen}
	svg, ok := s.cache.Get(key)
	if !ok {
		tables, skipped := duotone.BuildTables(preset.Colors)
		s.metrics.colorsUnresolved.Add(float64(len(skipped)))
		svg = string(duotone.RenderTables(theme.FilterID(slug), tables, key.debug))
		s.cache.Add(key, svg)
		s.metrics.filtersRendered.WithLabelValues("preset").Inc()
	}

	resp.Header().Set("Content-Type", "image/svg+xml")
	_, _ = resp.Write([]byte(svg))
}

func (s *API) render(resp http.ResponseWriter, req *http.Request) {
	var opts RenderOptions
	if err := json.NewDecoder(req.Body).Decode(&opts); err != nil {
		writeError(resp, util.NewInvalidArgumentErrorf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(opts.Selector) == "" {
		writeError(resp, util.NewInvalidArgumentErrorf("selector is required"))
		return
	}
	if !duotone.IsValidSelector(opts.Selector) {
		writeError(resp, util.NewInvalidArgumentErrorf("invalid selector %q", opts.Selector))
		return
	}
	if opts.ID == "" {
		opts.ID = s.ids.NewID()
	} else if !duotone.IsValidID(opts.ID) {
		writeError(resp, util.NewInvalidArgumentErrorf("invalid filter id %q", opts.ID))
		return
	}
	debug := s.debug
	if opts.Debug != nil {
		debug = *opts.Debug
	}

	tables, skipped := duotone.BuildTables(opts.Colors)
	for _, c := range skipped {
		log.Warn("Duotone filter %s: %q can't be resolved, skipped", opts.ID, c)
	}
	s.metrics.colorsUnresolved.Add(float64(len(skipped)))
	s.metrics.filtersRendered.WithLabelValues("request").Inc()

	out := duotone.RenderTables(opts.ID, tables, debug) + htmlutil.StyleTag(duotone.FilterStyle(opts.ID, opts.Selector, debug))
	resp.Header().Set("Content-Type", "text/html;charset=utf-8")
	resp.Header().Set("X-Duotone-Id", opts.ID)
	_, _ = resp.Write([]byte(out))
}

func (s *API) resolveColor(resp http.ResponseWriter, req *http.Request) {
	raw := req.URL.Query().Get("c")
	c, ok := color.Resolve(raw).Get()
	if !ok {
		writeError(resp, util.NewNotExistErrorf("%q is not a color", raw))
		return
	}
	format, _ := color.Detect(raw)
	writeJSON(resp, http.StatusOK, ResolvedColor{Format: format, R: c.R, G: c.G, B: c.B, Hex: c.Hex(), Dark: c.IsDark()})
}
