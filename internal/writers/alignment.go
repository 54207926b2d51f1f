// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"pwalign-core/align"
	"pwalign/internal/common"
	"pwalign/internal/output"
	"pwalign/internal/pretty"
)

// StartAlignmentWriter spins up a writer goroutine for align.Result items.
// (Wrapper using pretty.DefaultOptions.)
func StartAlignmentWriter(out io.Writer, format string, sortResults, header, prettyMode bool, bufSize int) (chan<- align.Result, <-chan error) {
	return StartAlignmentWriterWithPrettyOptions(out, format, sortResults, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartAlignmentWriterWithPrettyOptions allows customizing the midline glyphs.
// Sorting buffers the whole stream; without it text/tsv/jsonl stay streaming.
func StartAlignmentWriterWithPrettyOptions(out io.Writer, format string, sortResults, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- align.Result, <-chan error) {
	if format == output.FormatJSONL && !sortResults {
		return StartAlignmentJSONLWriter(out, bufSize)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan align.Result, bufSize)
	errCh := make(chan error, 1)

	var render output.RenderFunc
	if prettyMode {
		render = func(r align.Result) string { return pretty.MidlineWithOptions(r, popt) }
	}

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			buf := collect(in)
			if sortResults {
				common.SortResults(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatJSONL:
			// Reached only with --sort; the streaming path returned above.
			buf := collect(in)
			common.SortResults(buf)
			err = output.WriteJSONL(out, buf)

		case output.FormatTSV:
			if sortResults {
				buf := collect(in)
				common.SortResults(buf)
				err = output.WriteTSV(out, buf, header)
			} else {
				err = output.StreamTSV(out, in, header)
			}

		case output.FormatText:
			if sortResults {
				buf := collect(in)
				common.SortResults(buf)
				err = output.WriteText(out, buf, render)
			} else {
				err = output.StreamText(out, in, render)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block on a writer that stopped early.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func collect(in <-chan align.Result) []align.Result {
	var buf []align.Result
	for r := range in {
		buf = append(buf, r)
	}
	return buf
}
