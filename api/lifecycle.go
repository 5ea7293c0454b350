// File: api/lifecycle.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element lifetime contract for contiguous-storage containers.

package api

// Lifecycle routes every element lifetime event of a container through one
// set of hooks so external instrumentation can observe them. The container
// guarantees exactly one call per logical event: it constructs only into
// uninitialized slots, assigns only into live ones, and destroys every live
// element exactly once.
type Lifecycle[T any] interface {
	// Construct default-constructs a value in the uninitialized slot dst.
	Construct(dst *T)

	// CopyConstruct constructs *dst in an uninitialized slot as an
	// independent copy of the live value *src.
	CopyConstruct(dst, src *T)

	// MoveConstruct constructs *dst in an uninitialized slot from the live
	// value *src, leaving *src moved-from but still destructible.
	MoveConstruct(dst, src *T)

	// CopyAssign replaces the live value *dst with a copy of *src.
	CopyAssign(dst, src *T)

	// MoveAssign replaces the live value *dst with *src, leaving *src
	// moved-from but still destructible.
	MoveAssign(dst, src *T)

	// Destroy ends the lifetime of the live value at p.
	Destroy(p *T)
}

// Trivial implements Lifecycle for value types with no lifetime behavior of
// their own. Construction zeroes the slot, copies and moves are plain value
// copies, and moved-from or destroyed slots are zeroed so dead referents are
// not pinned.
type Trivial[T any] struct{}

func (Trivial[T]) Construct(dst *T) {
	var zero T
	*dst = zero
}

func (Trivial[T]) CopyConstruct(dst, src *T) {
	*dst = *src
}

func (Trivial[T]) MoveConstruct(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

func (Trivial[T]) CopyAssign(dst, src *T) {
	*dst = *src
}

func (Trivial[T]) MoveAssign(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

func (Trivial[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

var _ Lifecycle[int] = Trivial[int]{}
