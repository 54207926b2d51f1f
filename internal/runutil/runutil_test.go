package runutil

import (
	"runtime"
	"strings"
	"testing"

	"pwalign-core/align"
)

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveThreads(1); got != 1 {
		t.Fatalf("want 1, got %d", got)
	}
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 means all CPUs → want %d, got %d", runtime.NumCPU(), got)
	}
	if got := EffectiveThreads(-4); got != runtime.NumCPU() {
		t.Fatalf("negative means all CPUs → want %d, got %d", runtime.NumCPU(), got)
	}
}

func TestScoringWarnings(t *testing.T) {
	// sane parameters: silent
	if w := ScoringWarnings(align.Params{Match: 1, Mismatch: -1, Gap: -1}); len(w) != 0 {
		t.Fatalf("no warnings expected, got %v", w)
	}
	// non-negative gap
	w := ScoringWarnings(align.Params{Match: 1, Mismatch: -1, Gap: 0})
	if len(w) != 1 || !strings.Contains(w[0], "--gap") {
		t.Fatalf("gap warning missing: %v", w)
	}
	// mismatch not below match
	w = ScoringWarnings(align.Params{Match: 1, Mismatch: 1, Gap: -1})
	if len(w) != 1 || !strings.Contains(w[0], "--mismatch") {
		t.Fatalf("mismatch warning missing: %v", w)
	}
	// both at once
	if w = ScoringWarnings(align.Params{Match: -3, Mismatch: -9, Gap: 1}); len(w) != 1 {
		t.Fatalf("want only the gap warning, got %v", w)
	}
}
