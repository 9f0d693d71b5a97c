// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package duotone

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultIDPrefix is prepended to generated filter ids
const DefaultIDPrefix = "wp-duotone-"

// IDGenerator creates filter ids which are unique within one document
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator creates ids from random UUIDs
type UUIDGenerator struct {
	Prefix string
}

// NewID returns the prefix and the last 13 hex digits of a random UUID
func (g UUIDGenerator) NewID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return g.Prefix + hex[len(hex)-13:]
}

// CounterGenerator creates sequential ids, "prefix1", "prefix2", ...
type CounterGenerator struct {
	Prefix string
	n      atomic.Int64
}

func (g *CounterGenerator) NewID() string {
	return g.Prefix + strconv.FormatInt(g.n.Add(1), 10)
}
