// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSilentWrap(t *testing.T) {
	err := NewInvalidArgumentErrorf("bad color %q", "nope")
	assert.Equal(t, `bad color "nope"`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrNotExist)

	wrapped := fmt.Errorf("render: %w", NewNotExistErrorf("no preset"))
	assert.ErrorIs(t, wrapped, ErrNotExist)
	assert.Equal(t, "render: no preset", wrapped.Error())

	var sw SilentWrap
	assert.True(t, errors.As(wrapped, &sw))
	assert.Equal(t, "no preset", sw.Message)
}
