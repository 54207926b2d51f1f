package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.MatchGlyph == "" || d.MismatchGlyph == "" || d.GapGlyph == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	if d.MatchGlyph != "|" || d.MismatchGlyph != "." || d.GapGlyph != " " {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
