// File: vec/iter.go
// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "iter"

// All ranges over index/value pairs of the live elements in index order.
// The sequence is finite and restartable; like every view into the
// container it is invalidated by reallocation or shrink.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.store.slots[i]) {
				return
			}
		}
	}
}

// Values ranges over copies of the live elements in index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.store.slots[i]) {
				return
			}
		}
	}
}

// Ptrs ranges over pointers to the live elements in index order for
// in-place mutation.
func (v *Vec[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(&v.store.slots[i]) {
				return
			}
		}
	}
}
