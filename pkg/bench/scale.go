package bench

import "math"

// pgbench's TPC-B tables grow roughly linearly with the scale factor. The
// coefficient maps a target database size in megabytes to the scale that
// produces approximately that size.
//
// Ref https://www.cybertec-postgresql.com/en/a-formula-to-calculate-pgbench-scaling-factor-for-target-db-size/
const scalePerMB = 0.06689

// ScaleForDBSize returns the pgbench scale factor for the given target
// database size in MB.
//
// The result may be zero or negative for very small sizes; callers needing
// a minimum scale clamp it themselves.
func ScaleForDBSize(sizeMB int64) int64 {
	return int64(math.Round(scalePerMB*float64(sizeMB) - 0.5))
}
