// Package vec
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous-storage container built on raw regions from the mem
// package instead of Go slice growth. The container owns a single region
// sized to its capacity, tracks the live-element prefix, and routes every
// element construction, copy, move, assignment, and destruction through an
// api.Lifecycle exactly once, so instrumentation can count them.
//
// Growth policy: first append establishes capacity 16 (configurable),
// further growth doubles; Reserve and growing Resize relocate live elements
// by move-construct into a fresh region. A shrinking Resize drops capacity
// to the new size rather than retaining spare slots, unlike typical vector
// semantics.
//
// Single-threaded contract: no operation is safe to run concurrently with
// another on the same container.
package vec
