// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

const indent = "  "

// EncodePretty writes v as indented JSON to w. json.Encoder appends a
// trailing newline, so callers get a complete line without adding one.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(v)
}
