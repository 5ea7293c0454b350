// File: api/stats.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// RegionStats aggregates process-wide raw-region accounting, maintained by
// the mem package across every container in the process.
type RegionStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}
