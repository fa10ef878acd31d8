package report

import (
	"time"

	"go.uber.org/zap"
)

// GCResult describes a single garbage collection pass over the layer files
// of a timeline.
type GCResult struct {
	// Elapsed is the wall-clock duration of the pass.
	Elapsed time.Duration

	LayersTotal            uint64
	LayersNeededByCutoff   uint64
	LayersNeededByPITR     uint64
	LayersNeededByBranches uint64
	LayersNotUpdated       uint64
	LayersRemoved          uint64
}

// Log writes the pass summary as a single structured info record.
func (r GCResult) Log(l *zap.Logger) {
	l.Info("garbage collection pass finished",
		zap.Duration("elapsed", r.Elapsed),
		zap.Uint64("layers_total", r.LayersTotal),
		zap.Uint64("layers_needed_by_cutoff", r.LayersNeededByCutoff),
		zap.Uint64("layers_needed_by_pitr", r.LayersNeededByPITR),
		zap.Uint64("layers_needed_by_branches", r.LayersNeededByBranches),
		zap.Uint64("layers_not_updated", r.LayersNotUpdated),
		zap.Uint64("layers_removed", r.LayersRemoved),
	)
}
