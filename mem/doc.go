// Package mem
// Author: momentics <momentics@gmail.com>
//
// Raw memory regions for contiguous-storage containers. One acquisition and
// release strategy per platform: anonymous private mmap on Linux, heap-backed
// slices elsewhere. Process-wide atomic counters feed Stats().
package mem
