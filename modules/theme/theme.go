// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme reads the duotone presets declared by a theme.json (or theme.yaml) file.
package theme

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"code.gitea.io/duotone/modules/duotone"
	"code.gitea.io/duotone/modules/json"
	"code.gitea.io/duotone/modules/log"
	"code.gitea.io/duotone/modules/util"

	"gopkg.in/yaml.v3"
)

// ErrNoPresets is returned when the theme file declares no duotone presets
var ErrNoPresets = util.NewNotExistErrorf("theme declares no duotone presets")

// the part of theme.json which holds the presets: settings.color.duotone
type themeFile struct {
	Settings struct {
		Color struct {
			Duotone []duotone.Preset `json:"duotone" yaml:"duotone"`
		} `json:"color" yaml:"color"`
	} `json:"settings" yaml:"settings"`
}

func validate(presets []duotone.Preset) ([]duotone.Preset, error) {
	valid := make([]duotone.Preset, 0, len(presets))
	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		if p.Slug == "" {
			log.Warn("Ignoring duotone preset %q without slug", p.Name)
			continue
		}
		if seen[p.Slug] {
			log.Warn("Ignoring duplicated duotone preset %q", p.Slug)
			continue
		}
		seen[p.Slug] = true
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return nil, ErrNoPresets
	}
	return valid, nil
}

// ParsePresetsJSON reads the presets of a theme.json document
func ParsePresetsJSON(data []byte) ([]duotone.Preset, error) {
	var f themeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, util.NewInvalidArgumentErrorf("unable to parse theme json: %v", err)
	}
	return validate(f.Settings.Color.Duotone)
}

// ParsePresetsYAML reads the presets of a theme.yaml document, which has the same structure as theme.json
func ParsePresetsYAML(data []byte) ([]duotone.Preset, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, util.NewInvalidArgumentErrorf("unable to parse theme yaml: %v", err)
	}
	return validate(f.Settings.Color.Duotone)
}

// LoadPresets reads the presets of a theme file, the format is chosen by the file extension.
// Files with another extension are read as JSON when they hold valid JSON, as YAML otherwise.
func LoadPresets(path string) ([]duotone.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParsePresetsYAML(data)
	case ".json":
		return ParsePresetsJSON(data)
	}
	if json.Valid(data) {
		return ParsePresetsJSON(data)
	}
	return ParsePresetsYAML(data)
}

// FilterID returns the id of the global filter of a preset
func FilterID(slug string) string {
	return duotone.DefaultIDPrefix + slug
}

// RenderPresets renders the global SVG filters of all presets, the filter ids are "wp-duotone-" + slug
func RenderPresets(presets []duotone.Preset, debug bool) template.HTML {
	var sb strings.Builder
	for _, p := range presets {
		tables, skipped := duotone.BuildTables(p.Colors)
		for _, s := range skipped {
			log.Warn("Duotone preset %q: %q is not a color, skipped", p.Slug, s)
		}
		sb.WriteString(string(duotone.RenderTables(FilterID(p.Slug), tables, debug)))
	}
	return template.HTML(sb.String())
}
