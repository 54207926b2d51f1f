// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"pwalign-core/align"
)

// EffectiveThreads maps the --threads value to a worker count:
// 0 (or anything below 1) means one worker per CPU.
func EffectiveThreads(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// ScoringWarnings returns advisory notes for parameter choices that still
// align fine but rarely mean what the user wanted. They never fail a run.
func ScoringWarnings(p align.Params) []string {
	var warns []string
	if p.Gap >= 0 {
		warns = append(warns, fmt.Sprintf("--gap is %d; gaps are never penalized, expect gap-heavy alignments", p.Gap))
	}
	if p.Mismatch >= p.Match {
		warns = append(warns, fmt.Sprintf("--mismatch (%d) is not lower than --match (%d); mismatches score as well as matches", p.Mismatch, p.Match))
	}
	return warns
}
