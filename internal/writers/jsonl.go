// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"pwalign-core/align"
	"pwalign/internal/jsonlutil"
	"pwalign/internal/output"
)

// StartAlignmentJSONLWriter streams each align.Result as one JSON line (v1).
func StartAlignmentJSONLWriter(out io.Writer, bufSize int) (chan<- align.Result, <-chan error) {
	return jsonlutil.Start[align.Result](out, bufSize,
		func(enc *json.Encoder, r align.Result) error {
			return enc.Encode(output.ToAPIAlignment(r))
		},
		IsBrokenPipe,
	)
}
