//go:build !linux

// File: mem/region_stub.go
// Package mem
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback region strategy for platforms without the mmap path.

package mem

// grab allocates heap-backed storage. A []byte never holds Go pointers for
// the collector's purposes, so the no-Go-pointers caller contract is the
// same as on the mapped path.
func grab(n int) ([]byte, bool, error) {
	return make([]byte, n), false, nil
}

func drop(data []byte) error { return nil }
