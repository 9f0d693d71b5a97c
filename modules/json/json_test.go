// Copyright 2025 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalBlockAttrs(t *testing.T) {
	var attrs map[string]any
	err := Unmarshal([]byte(`{"style":{"color":{"duotone":["#000","#fff"]}}}`), &attrs)
	require.NoError(t, err)
	style := attrs["style"].(map[string]any)
	c := style["color"].(map[string]any)
	assert.Equal(t, []any{"#000", "#fff"}, c["duotone"])
}

func TestMarshalIndent(t *testing.T) {
	b, err := MarshalIndent(map[string]any{"slug": "blue-red"}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"slug\": \"blue-red\"\n}", string(b))
	assert.True(t, Valid(b))
	assert.False(t, Valid([]byte("{")))
}
