// Package align computes optimal global pairwise alignments of single-byte
// symbol sequences under a match/mismatch/gap scoring model. It never
// imports I/O, CLI, or pipeline layers; keep it domain-only.
//
// External outputs must not depend on the internal shape of Result; the
// root module's pkg/api carries the stable wire types (JSON/JSONL v1).
package align
