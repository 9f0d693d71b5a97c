// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package optional_test

import (
	"testing"

	"code.gitea.io/duotone/modules/optional"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	var uninitialized optional.Option[int]
	assert.False(t, uninitialized.Has())
	assert.Equal(t, 0, uninitialized.Value())
	assert.Equal(t, 1, uninitialized.ValueOrDefault(1))

	none := optional.None[int]()
	assert.False(t, none.Has())
	_, ok := none.Get()
	assert.False(t, ok)

	some := optional.Some(2)
	assert.True(t, some.Has())
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, some.ValueOrDefault(1))

	var ptr *string
	assert.False(t, optional.FromPtr(ptr).Has())
	s := "#fff"
	assert.Equal(t, "#fff", optional.FromPtr(&s).Value())
}
