// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"pwalign-core/align"
)

// FormatRowTSV returns the TSV columns for one alignment (no trailing
// newline). Column order must stay in lockstep with TSVHeader.
func FormatRowTSV(r align.Result) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%s\t%s",
		r.NameA, r.NameB, r.Score, r.Length, r.Matches, r.AlignedA, r.AlignedB)
}

// StreamTSV writes alignments as they arrive, with an optional header.
func StreamTSV(w io.Writer, in <-chan align.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV is the buffered variant, used when output is sorted first.
func WriteTSV(w io.Writer, list []align.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
