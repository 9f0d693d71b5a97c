// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package blocksupport

import (
	"html/template"
	"strings"
	"sync"
)

// StyleCollector gathers the style fragments of one document, every fragment is kept once in insertion order
type StyleCollector struct {
	mu        sync.Mutex
	fragments []template.HTML
	seen      map[template.HTML]struct{}
}

// NewStyleCollector creates an empty collector
func NewStyleCollector() *StyleCollector {
	return &StyleCollector{seen: map[template.HTML]struct{}{}}
}

// Add records a fragment, it returns false if the same fragment was already recorded
func (c *StyleCollector) Add(fragment template.HTML) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[fragment]; ok {
		return false
	}
	c.seen[fragment] = struct{}{}
	c.fragments = append(c.fragments, fragment)
	return true
}

// Len returns the number of recorded fragments
func (c *StyleCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fragments)
}

// HTML returns all fragments concatenated
func (c *StyleCollector) HTML() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sb strings.Builder
	for _, f := range c.fragments {
		sb.WriteString(string(f))
	}
	return template.HTML(sb.String())
}
