// File: vec/options.go
// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "github.com/momentics/hioload-vec/api"

// DefaultStartCapacity is the capacity established by the first Append or
// Emplace on a container that has never allocated.
const DefaultStartCapacity = 16

// Option configures a container at construction time.
type Option[T any] func(*Vec[T])

// WithLifecycle routes the container's element lifetime events through lc
// instead of the trivial lifecycle.
func WithLifecycle[T any](lc api.Lifecycle[T]) Option[T] {
	return func(v *Vec[T]) {
		if lc != nil {
			v.lc = lc
		}
	}
}

// WithStartCapacity overrides the capacity established by the first append.
// Values below 1 are ignored.
func WithStartCapacity[T any](n int) Option[T] {
	return func(v *Vec[T]) {
		if n >= 1 {
			v.startCap = n
		}
	}
}
