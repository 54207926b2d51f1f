// internal/output/text_test.go
package output

import (
	"bytes"
	"testing"

	"pwalign-core/align"
)

func TestWriteTextResult_Shape(t *testing.T) {
	buf := &bytes.Buffer{}
	r := align.Result{
		NameA: "seqA", NameB: "seqB", Score: 0,
		AlignedA: "GCA-TGCU", AlignedB: "G-ATTACA",
		Length: 8, Matches: 4,
	}
	if err := WriteTextResult(buf, r, ""); err != nil {
		t.Fatalf("text write: %v", err)
	}
	const want = "Score for alignment of seqA to seqB is 0\nGCA-TGCU\nG-ATTACA\n"
	if buf.String() != want {
		t.Fatalf("text block changed:\n got:  %q\n want: %q", buf.String(), want)
	}
}

func TestWriteTextResult_Midline(t *testing.T) {
	buf := &bytes.Buffer{}
	r := align.Result{NameA: "a", NameB: "b", Score: 2, AlignedA: "AC", AlignedB: "AG"}
	if err := WriteTextResult(buf, r, "|."); err != nil {
		t.Fatalf("text write: %v", err)
	}
	const want = "Score for alignment of a to b is 2\nAC\n|.\nAG\n"
	if buf.String() != want {
		t.Fatalf("midline block changed:\n got:  %q\n want: %q", buf.String(), want)
	}
}

func TestStreamText_MatchesBuffered(t *testing.T) {
	list := []align.Result{
		{NameA: "a", NameB: "b", Score: 1, AlignedA: "A", AlignedB: "A"},
		{NameA: "a", NameB: "c", Score: -1, AlignedA: "A", AlignedB: "C"},
	}
	render := func(r align.Result) string { return "x" }

	streamed := &bytes.Buffer{}
	in := make(chan align.Result, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	if err := StreamText(streamed, in, render); err != nil {
		t.Fatalf("stream: %v", err)
	}

	buffered := &bytes.Buffer{}
	if err := WriteText(buffered, list, render); err != nil {
		t.Fatalf("buffered: %v", err)
	}
	if streamed.String() != buffered.String() {
		t.Fatalf("stream/buffered mismatch:\n%q\n%q", streamed.String(), buffered.String())
	}
}
