// File: mem/region.go
// Package mem
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw region acquisition and release behind a single per-platform strategy.

package mem

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
)

// Region is an exclusively owned block of raw memory. The zero Region holds
// no memory. Regions are not safe for concurrent use; the process-wide
// counters below are the only shared state in the package.
type Region struct {
	data   []byte
	mapped bool
}

var (
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
)

// Alloc acquires a region of exactly n bytes through the platform strategy.
// Mapped regions come back zero-filled and are invisible to the garbage
// collector, so callers must not store Go pointers in them. n == 0 yields
// the zero Region without touching the allocator.
func Alloc(n int) (Region, error) {
	if n < 0 {
		return Region{}, fmt.Errorf("%w: negative region size %d", api.ErrInvalidArgument, n)
	}
	if n == 0 {
		return Region{}, nil
	}
	data, mapped, err := grab(n)
	if err != nil {
		return Region{}, fmt.Errorf("%w: %d bytes: %v", api.ErrAllocFailed, n, err)
	}
	totalAlloc.Add(1)
	bytesInUse.Add(int64(n))
	return Region{data: data, mapped: mapped}, nil
}

// Release returns the region's memory to the platform and leaves the
// receiver as the zero Region. Releasing a zero Region is a no-op.
func (r *Region) Release() error {
	if r.data == nil {
		return nil
	}
	data, mapped := r.data, r.mapped
	r.data = nil
	r.mapped = false
	totalFree.Add(1)
	bytesInUse.Add(-int64(len(data)))
	if mapped {
		return drop(data)
	}
	return nil
}

// Base returns the region's base address, nil for the zero Region.
func (r *Region) Base() unsafe.Pointer {
	if r.data == nil {
		return nil
	}
	return unsafe.Pointer(&r.data[0])
}

// Bytes returns the raw byte view of the region.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the region length in bytes, the length it was allocated with.
func (r *Region) Len() int { return len(r.data) }

// Stats reports process-wide region accounting.
func Stats() api.RegionStats {
	alloc := totalAlloc.Load()
	free := totalFree.Load()
	return api.RegionStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
		BytesInUse: bytesInUse.Load(),
	}
}
