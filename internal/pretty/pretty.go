// internal/pretty/pretty.go
package pretty

import (
	"strings"

	"pwalign-core/align"
)

// Options control the glyphs of the match line drawn between the two
// aligned rows of a text block.
type Options struct {
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

// DefaultOptions keeps the classic look.
var DefaultOptions = Options{
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

// MidlineWithOptions returns the decoration row for one alignment, one
// glyph per column. A column where either row holds the gap symbol gets
// GapGlyph; equal symbols get MatchGlyph; everything else MismatchGlyph.
func MidlineWithOptions(r align.Result, opt Options) string {
	a, b := r.AlignedA, r.AlignedB
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		switch {
		case a[i] == align.GapSymbol || b[i] == align.GapSymbol:
			sb.WriteString(opt.GapGlyphOrDefault())
		case a[i] == b[i]:
			sb.WriteString(opt.MatchGlyphOrDefault())
		default:
			sb.WriteString(opt.MismatchGlyphOrDefault())
		}
	}
	return sb.String()
}

// Midline renders with DefaultOptions.
func Midline(r align.Result) string { return MidlineWithOptions(r, DefaultOptions) }

// helpers for default glyphs
func (o Options) MatchGlyphOrDefault() string {
	if o.MatchGlyph != "" {
		return o.MatchGlyph
	}
	return DefaultOptions.MatchGlyph
}

func (o Options) MismatchGlyphOrDefault() string {
	if o.MismatchGlyph != "" {
		return o.MismatchGlyph
	}
	return DefaultOptions.MismatchGlyph
}

func (o Options) GapGlyphOrDefault() string {
	if o.GapGlyph != "" {
		return o.GapGlyph
	}
	return DefaultOptions.GapGlyph
}
