// pkg/api/alignments_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for pairwise alignments.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	NameA    string `json:"name_a"`
	NameB    string `json:"name_b"`
	Score    int    `json:"score"`
	Length   int    `json:"length"`
	Matches  int    `json:"matches"`
	AlignedA string `json:"aligned_a"`
	AlignedB string `json:"aligned_b"`
}
