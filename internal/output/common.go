// internal/output/common.go
package output

// Supported --output format names.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatText, FormatTSV, FormatJSON, FormatJSONL:
		return true
	}
	return false
}

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "name_a\tname_b\tscore\tlength\tmatches\taligned_a\taligned_b"
