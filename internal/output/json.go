// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pwalign-core/align"
	"pwalign/internal/jsonutil"
	"pwalign/pkg/api"
)

// ToAPIAlignment converts a domain Result to the stable wire schema (v1).
func ToAPIAlignment(r align.Result) api.AlignmentV1 {
	return api.AlignmentV1{
		NameA:    r.NameA,
		NameB:    r.NameB,
		Score:    r.Score,
		Length:   r.Length,
		Matches:  r.Matches,
		AlignedA: r.AlignedA,
		AlignedB: r.AlignedB,
	}
}

func toAPIAlignments(list []align.Result) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIAlignment(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []align.Result) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}

// WriteJSONL writes one JSON line per alignment. The streaming path lives
// in the writers package; this buffered variant serves sorted output.
func WriteJSONL(w io.Writer, list []align.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range list {
		if err := enc.Encode(ToAPIAlignment(r)); err != nil {
			return err
		}
	}
	return nil
}
