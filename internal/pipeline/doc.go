// Package pipeline fans alignment pairs out to worker goroutines and
// hands results to a visit callback in deterministic pair order.
//
// The only contract to implement is AlignFunc (align.Align by default).
// This keeps the pipeline swappable and testable.
package pipeline
