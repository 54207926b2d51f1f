package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatTSV != "tsv" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
}

func TestValidFormat(t *testing.T) {
	for _, name := range []string{FormatText, FormatTSV, FormatJSON, FormatJSONL} {
		if !ValidFormat(name) {
			t.Fatalf("ValidFormat(%q) = false", name)
		}
	}
	if ValidFormat("fasta") || ValidFormat("") {
		t.Fatalf("ValidFormat accepted unsupported name")
	}
}
