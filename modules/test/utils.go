// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"io"
	"strings"

	"code.gitea.io/duotone/modules/json"
)

// MockVariableValue replaces the value of a variable, calling the returned function restores it.
// Without a value the variable is only saved and restored.
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	}
	return func() { *p = old }
}

// JSONReader encodes v as JSON for a request body
func JSONReader(v any) io.Reader {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return strings.NewReader(string(b))
}
