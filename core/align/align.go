// core/align/align.go
package align

import (
	"errors"

	"pwalign-core/seq"
)

// GapSymbol is the byte written into aligned output where one sequence
// contributes no symbol. Inputs may contain it; it is only reserved on
// the output side.
const GapSymbol byte = '-'

var (
	// ErrEmptySequence indicates an input with no symbols.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrScoreOverflow indicates a score accumulation left the int range.
	ErrScoreOverflow = errors.New("align: score arithmetic overflow")

	// ErrMatrixTooLarge indicates the score matrix size does not fit in int.
	ErrMatrixTooLarge = errors.New("align: sequences too long for one score matrix")
)

// Params holds the three scores of the model. Every int value is legal:
// Match rewards identical symbols, Mismatch prices a substitution, Gap
// prices each single inserted gap.
type Params struct {
	Match    int `json:"match"    yaml:"match"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Gap      int `json:"gap"      yaml:"gap"`
}

func (p Params) symbolScore(x, y byte) int {
	if x == y {
		return p.Match
	}
	return p.Mismatch
}

// Result is one finished pairwise alignment. AlignedA and AlignedB have
// equal length and reproduce the inputs exactly once all GapSymbol bytes
// are removed.
type Result struct {
	NameA    string
	NameB    string
	Score    int
	AlignedA string
	AlignedB string
	Length   int // alignment length, len(AlignedA)
	Matches  int // positions where both sides hold the same symbol
}

// Align computes the optimal global alignment of a against b and one
// canonical gap placement for it.
//
// Score ties between cell origins resolve diagonal first, then left,
// then above, so repeated runs reconstruct the same strings: aligning
// AA against A under Match=2, Mismatch=-1, Gap=-2 yields
//
//	AA
//	-A
//
// never AA/A-. Inputs are read-only; every call fills a private matrix.
func Align(a, b seq.Sequence, p Params) (Result, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return Result{}, ErrEmptySequence
	}
	x, err := fillMatrix(a.Symbols, b.Symbols, p)
	if err != nil {
		return Result{}, err
	}
	res := traceback(x, a.Symbols, b.Symbols)
	res.NameA = a.Name
	res.NameB = b.Name
	res.Score = x.scoreAt(a.Len(), b.Len())
	return res, nil
}
