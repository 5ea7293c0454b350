// File: vec/vec.go
// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable contiguous-storage container with explicit element lifetimes.

package vec

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/mem"
)

// storage is the owned backing of a container: a slot view plus, for
// off-heap containers, the region the view aliases. A nil slot view means no
// storage. len(slots) is the true slot count of the backing, which can
// exceed the logical capacity after a shrinking Resize; the region remembers
// its allocated length so release stays correct.
type storage[T any] struct {
	slots  []T
	region mem.Region
}

func (s *storage[T]) free() error {
	s.slots = nil
	return s.region.Release()
}

// Vec is a growable contiguous-storage container generic over the element
// type. Slots [0, Size()) hold live elements; slots [Size(), Cap()) are
// allocated but uninitialized and the container never reads them. Every
// element lifetime event runs through the configured api.Lifecycle exactly
// once.
//
// Pointer-free element types are backed by off-heap regions from the mem
// package; types whose representation embeds Go pointers use GC-visible heap
// storage instead, chosen once at construction.
//
// A Vec is not safe for concurrent use. Pointers and iterators obtained from
// it are invalidated by any operation that reallocates (Reserve, growing
// Resize, append-triggered growth) or shrinks the container.
type Vec[T any] struct {
	store    storage[T]
	size     int
	capacity int
	lc       api.Lifecycle[T]
	offheap  bool
	startCap int
}

// New returns an empty container. No allocation is performed.
func New[T any](opts ...Option[T]) *Vec[T] {
	v := &Vec[T]{
		lc:       api.Trivial[T]{},
		startCap: DefaultStartCapacity,
	}
	t := reflect.TypeFor[T]()
	v.offheap = t.Size() > 0 && !hasPointers(t)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSized returns a container holding n default-constructed elements.
// Capacity equals size afterwards.
func NewSized[T any](n int, opts ...Option[T]) (*Vec[T], error) {
	v := New[T](opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Take move-constructs a container from other in O(1): the storage handle
// transfers wholesale and no element hook runs. other is left empty, valid,
// and reusable (no storage, size 0, capacity 0).
func Take[T any](other *Vec[T]) *Vec[T] {
	v := &Vec[T]{
		lc:       other.lc,
		offheap:  other.offheap,
		startCap: other.startCap,
	}
	v.adopt(other)
	return v
}

// Size returns the live element count.
func (v *Vec[T]) Size() int { return v.size }

// Cap returns the allocated slot count.
func (v *Vec[T]) Cap() int { return v.capacity }

// At returns a pointer to the live element at index i for in-place access.
// The index contract is 0 <= i < Size(); the container performs no size
// check. The pointer is invalidated like any other view.
func (v *Vec[T]) At(i int) *T { return &v.store.slots[i] }

// Get returns a copy of the live element at index i. Same index contract
// as At.
func (v *Vec[T]) Get(i int) T { return v.store.slots[i] }

// Set replaces the live element at index i with a copy of val through the
// CopyAssign hook. Same index contract as At.
func (v *Vec[T]) Set(i int, val T) {
	v.lc.CopyAssign(&v.store.slots[i], &val)
}

// Reserve guarantees capacity for at least n elements. Requests at or below
// the current capacity are a no-op. Growing relocates the live elements into
// a fresh region by move-construct and destroys the originals; Size never
// changes, and on an empty container only memory moves.
func (v *Vec[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative capacity %d", api.ErrInvalidArgument, n)
	}
	if n <= v.capacity {
		return nil
	}
	return v.regrow(n)
}

// Resize sets the live element count to n. Growing reallocates to exactly n
// slots and default-constructs the new trailing elements, so capacity equals
// size afterwards. Shrinking destroys the trailing elements and drops the
// capacity to n without reallocating; Resize(0) also releases the storage so
// capacity 0 always means no storage.
func (v *Vec[T]) Resize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative size %d", api.ErrInvalidArgument, n)
	case n == v.size:
		return nil
	case n > v.size:
		if err := v.regrow(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			v.lc.Construct(&v.store.slots[i])
		}
		v.size = n
		return nil
	default:
		v.destroyRange(n, v.size)
		v.size = n
		v.capacity = n
		if n == 0 {
			return v.store.free()
		}
		return nil
	}
}

// Append grows the container by one element copy-constructed from val.
// Amortized O(1): a container that has never allocated reserves the starting
// capacity first, a full one doubles.
func (v *Vec[T]) Append(val T) error {
	if err := v.ensureRoom(); err != nil {
		return err
	}
	v.lc.CopyConstruct(&v.store.slots[v.size], &val)
	v.size++
	return nil
}

// Emplace grows the container by one default-constructed element and
// returns a pointer to it for in-place initialization. Same growth policy
// as Append.
func (v *Vec[T]) Emplace() (*T, error) {
	if err := v.ensureRoom(); err != nil {
		return nil, err
	}
	p := &v.store.slots[v.size]
	v.lc.Construct(p)
	v.size++
	return p, nil
}

// Clone copy-constructs an independent container: fresh storage sized to
// exactly Size() and one copy-construction per live element, in index order.
func (v *Vec[T]) Clone() (*Vec[T], error) {
	out := &Vec[T]{
		lc:       v.lc,
		offheap:  v.offheap,
		startCap: v.startCap,
	}
	if err := out.CopyFrom(v); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom makes the receiver an independent copy of other. The receiver's
// prior live elements are destroyed first, storage grows per Reserve
// semantics when needed, then other's elements are copy-constructed into raw
// slots in index order; element assignment is never used. Self-copy is a
// no-op.
func (v *Vec[T]) CopyFrom(other *Vec[T]) error {
	if v == other {
		return nil
	}
	v.destroyRange(0, v.size)
	v.size = 0
	if err := v.Reserve(other.size); err != nil {
		return err
	}
	for i := 0; i < other.size; i++ {
		v.lc.CopyConstruct(&v.store.slots[i], &other.store.slots[i])
	}
	v.size = other.size
	return nil
}

// MoveFrom destroys the receiver's live elements, releases its storage, and
// takes ownership of other's storage in O(1). No element hook runs for the
// transferred elements; other ends empty and valid. Self-move is a no-op.
func (v *Vec[T]) MoveFrom(other *Vec[T]) error {
	if v == other {
		return nil
	}
	v.destroyRange(0, v.size)
	err := v.store.free()
	v.adopt(other)
	return err
}

// Release destroys the live elements and returns the storage to the
// platform. The container ends empty and reusable; releasing an empty
// container releases only memory, and releasing twice is a no-op.
func (v *Vec[T]) Release() error {
	v.destroyRange(0, v.size)
	v.size = 0
	v.capacity = 0
	return v.store.free()
}

// ensureRoom makes space for one more element.
func (v *Vec[T]) ensureRoom() error {
	switch {
	case v.capacity == 0:
		return v.regrow(v.startCap)
	case v.size == v.capacity:
		return v.regrow(v.capacity * 2)
	}
	return nil
}

// regrow replaces the backing with a fresh region of exactly n slots, n > 0.
// Live elements relocate by move-construct in index order, then the old ones
// are destroyed and the old region released. Allocation happens before any
// destruction, so a failed allocation leaves the container untouched.
func (v *Vec[T]) regrow(n int) error {
	next, err := v.allocSlots(n)
	if err != nil {
		return err
	}
	for i := 0; i < v.size; i++ {
		v.lc.MoveConstruct(&next.slots[i], &v.store.slots[i])
	}
	v.destroyRange(0, v.size)
	ferr := v.store.free()
	v.store = next
	v.capacity = n
	return ferr
}

// allocSlots acquires backing for n slots, n > 0, on the path chosen at
// construction.
func (v *Vec[T]) allocSlots(n int) (storage[T], error) {
	if !v.offheap {
		return storage[T]{slots: make([]T, n)}, nil
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if n > math.MaxInt/elem {
		return storage[T]{}, fmt.Errorf("%w: %d slots of %d bytes", api.ErrAllocFailed, n, elem)
	}
	r, err := mem.Alloc(n * elem)
	if err != nil {
		return storage[T]{}, err
	}
	return storage[T]{
		slots:  unsafe.Slice((*T)(r.Base()), n),
		region: r,
	}, nil
}

// destroyRange destroys live elements in [from, to) and zeroes the slots so
// heap-backed storage drops its references. The zeroing is not a hook event.
func (v *Vec[T]) destroyRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		v.lc.Destroy(&v.store.slots[i])
		v.store.slots[i] = zero
	}
}

// adopt steals other's storage and counters, zeroing all three of other's
// fields. A moved-from container with stale size but no storage would tear
// itself apart on release; zeroing everything keeps it safe to release or
// reuse.
func (v *Vec[T]) adopt(other *Vec[T]) {
	v.store = other.store
	v.size = other.size
	v.capacity = other.capacity
	other.store = storage[T]{}
	other.size = 0
	other.capacity = 0
}

// hasPointers reports whether values of t embed Go pointers anywhere in
// their representation. Pointer-free types may live in regions the garbage
// collector never scans.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
