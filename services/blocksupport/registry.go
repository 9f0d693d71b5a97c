// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package blocksupport

import (
	"strings"
	"sync"

	"code.gitea.io/duotone/modules/setting"
	"code.gitea.io/duotone/modules/util"

	"github.com/gobwas/glob"
)

// Capability is what a block type declares it supports
type Capability struct {
	// Duotone is the comma-separated selector template of the elements the filter applies to,
	// empty means the block has no duotone support
	Duotone string
}

type patternCapability struct {
	pattern    string
	glob       glob.Glob
	capability Capability
}

// Registry maps block types to their capabilities.
// Exact block names are looked up first, then glob patterns like "core/*" in registration order.
type Registry struct {
	mu       sync.RWMutex
	exact    map[string]Capability
	patterns []patternCapability
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{exact: map[string]Capability{}}
}

// NewRegistryFromSettings creates a registry holding the configured block supports
func NewRegistryFromSettings(supports []setting.BlockSupport) (*Registry, error) {
	r := NewRegistry()
	for _, s := range supports {
		if err := r.Register(s.Pattern, Capability{Duotone: s.Duotone}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Register declares the capability of a block type or of a glob of block types, a later exact registration replaces an earlier one
func (r *Registry) Register(pattern string, c Capability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !isGlobPattern(pattern) {
		r.exact[pattern] = c
		return nil
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return util.NewInvalidArgumentErrorf("invalid block type pattern %q: %v", pattern, err)
	}
	r.patterns = append(r.patterns, patternCapability{pattern: pattern, glob: g, capability: c})
	return nil
}

// Lookup returns the capability of a block type
func (r *Registry) Lookup(blockName string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.exact[blockName]; ok {
		return c, true
	}
	for _, p := range r.patterns {
		if p.glob.Match(blockName) {
			return p.capability, true
		}
	}
	return Capability{}, false
}

// DuotoneSelectors returns the selector template of a block type, or "" when it has no duotone support
func (r *Registry) DuotoneSelectors(blockName string) string {
	c, _ := r.Lookup(blockName)
	return strings.TrimSpace(c.Duotone)
}
