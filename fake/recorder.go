// File: fake/recorder.go
// Package fake
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Instrumented element lifecycle for lifetime tests.

package fake

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-vec/api"
)

// EventKind identifies one element lifetime event.
type EventKind int

const (
	EvConstruct EventKind = iota
	EvCopyConstruct
	EvMoveConstruct
	EvCopyAssign
	EvMoveAssign
	EvDestroy
)

func (k EventKind) String() string {
	switch k {
	case EvConstruct:
		return "construct"
	case EvCopyConstruct:
		return "copy-construct"
	case EvMoveConstruct:
		return "move-construct"
	case EvCopyAssign:
		return "copy-assign"
	case EvMoveAssign:
		return "move-assign"
	case EvDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Counts aggregates hook invocations per event kind.
type Counts struct {
	Construct     uint64
	CopyConstruct uint64
	MoveConstruct uint64
	CopyAssign    uint64
	MoveAssign    uint64
	Destroy       uint64
}

// Recorder implements api.Lifecycle by delegating to an inner lifecycle
// while counting every hook invocation and journaling the event order in a
// FIFO queue. Not safe for concurrent use, matching the container contract.
type Recorder[T any] struct {
	inner  api.Lifecycle[T]
	counts Counts
	trace  *queue.Queue
}

// NewRecorder returns a Recorder wrapping the trivial lifecycle.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{
		inner: api.Trivial[T]{},
		trace: queue.New(),
	}
}

// Wrap returns a Recorder delegating to lc.
func Wrap[T any](lc api.Lifecycle[T]) *Recorder[T] {
	return &Recorder[T]{inner: lc, trace: queue.New()}
}

func (r *Recorder[T]) Construct(dst *T) {
	r.counts.Construct++
	r.trace.Add(EvConstruct)
	r.inner.Construct(dst)
}

func (r *Recorder[T]) CopyConstruct(dst, src *T) {
	r.counts.CopyConstruct++
	r.trace.Add(EvCopyConstruct)
	r.inner.CopyConstruct(dst, src)
}

func (r *Recorder[T]) MoveConstruct(dst, src *T) {
	r.counts.MoveConstruct++
	r.trace.Add(EvMoveConstruct)
	r.inner.MoveConstruct(dst, src)
}

func (r *Recorder[T]) CopyAssign(dst, src *T) {
	r.counts.CopyAssign++
	r.trace.Add(EvCopyAssign)
	r.inner.CopyAssign(dst, src)
}

func (r *Recorder[T]) MoveAssign(dst, src *T) {
	r.counts.MoveAssign++
	r.trace.Add(EvMoveAssign)
	r.inner.MoveAssign(dst, src)
}

func (r *Recorder[T]) Destroy(p *T) {
	r.counts.Destroy++
	r.trace.Add(EvDestroy)
	r.inner.Destroy(p)
}

// Counts returns the totals accumulated since the last Reset.
func (r *Recorder[T]) Counts() Counts { return r.counts }

// Reset zeroes the totals and drains the journal.
func (r *Recorder[T]) Reset() {
	r.counts = Counts{}
	for r.trace.Length() > 0 {
		r.trace.Remove()
	}
}

// Drain pops and returns the journaled events in arrival order, leaving the
// journal empty.
func (r *Recorder[T]) Drain() []EventKind {
	out := make([]EventKind, 0, r.trace.Length())
	for r.trace.Length() > 0 {
		out = append(out, r.trace.Remove().(EventKind))
	}
	return out
}

var _ api.Lifecycle[int] = (*Recorder[int])(nil)
