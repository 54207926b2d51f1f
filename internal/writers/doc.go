// Package writers turns alignment results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text blocks, TSV, JSON/JSONL).
//   • Align stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
