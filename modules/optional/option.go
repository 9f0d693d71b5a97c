// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package optional holds a value which may be absent.
package optional

type Option[T any] []T

func None[T any]() Option[T] {
	return nil
}

func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Option[T]) Has() bool {
	return o != nil
}

// Get returns the value and whether it is present, for use in "if v, ok := o.Get(); ok" form
func (o Option[T]) Get() (T, bool) {
	if o.Has() {
		return o[0], true
	}
	var zero T
	return zero, false
}

func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}
