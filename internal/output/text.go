// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pwalign-core/align"
)

// RenderFunc returns the decoration line printed between the two aligned
// rows of one result. An empty string suppresses the line.
type RenderFunc func(align.Result) string

// WriteTextResult prints one alignment in the classic report shape: a
// score sentence followed by the two gap-padded rows.
func WriteTextResult(w io.Writer, r align.Result, midline string) error {
	if _, err := fmt.Fprintf(w, "Score for alignment of %s to %s is %d\n", r.NameA, r.NameB, r.Score); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, r.AlignedA); err != nil {
		return err
	}
	if midline != "" {
		if _, err := fmt.Fprintln(w, midline); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.AlignedB)
	return err
}

// StreamText writes alignments as they arrive on in.
func StreamText(w io.Writer, in <-chan align.Result, render RenderFunc) error {
	for r := range in {
		if err := writeOneText(w, r, render); err != nil {
			return err
		}
	}
	return nil
}

// WriteText is the buffered variant, used when output is sorted first.
func WriteText(w io.Writer, list []align.Result, render RenderFunc) error {
	for _, r := range list {
		if err := writeOneText(w, r, render); err != nil {
			return err
		}
	}
	return nil
}

func writeOneText(w io.Writer, r align.Result, render RenderFunc) error {
	var mid string
	if render != nil {
		mid = render(r)
	}
	return WriteTextResult(w, r, mid)
}
