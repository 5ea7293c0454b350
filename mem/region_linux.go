//go:build linux

// File: mem/region_linux.go
// Package mem
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux region strategy: anonymous private mappings.

package mem

import "golang.org/x/sys/unix"

// grab maps an anonymous private region of n bytes. The kernel rounds the
// mapping up to page granularity internally; the returned slice is exactly
// n bytes and Munmap accepts it as-is.
func grab(n int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func drop(data []byte) error {
	return unix.Munmap(data)
}
