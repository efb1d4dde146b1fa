package tumble

import (
	"fmt"
	"os"
)

// stepStats holds per-frame counters for the most recent Update.
// Only logged when World.Debug is true; CollisionChecks exposes the
// narrow-phase count either way.
type stepStats struct {
	subSteps        int
	activeColliders int
	narrowTests     int
	contacts        int
}

// logStats prints step counters to stderr.
func (w *World) logStats() {
	if !w.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tumble] sub-steps: %d | active: %d | narrow tests: %d | contacts: %d\n",
		w.stats.subSteps, w.stats.activeColliders, w.stats.narrowTests, w.stats.contacts)
}

// logPrune reports colliders removed by OptimizePerformance.
func (w *World) logPrune(removed int) {
	if !w.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tumble] performance optimization: removed %d inactive colliders\n", removed)
}
