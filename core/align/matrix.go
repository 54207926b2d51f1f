// core/align/matrix.go
package align

// origin tags how a cell's score was reached. The fill loop resolves
// score ties in declaration order: diagonal beats left, left beats above.
type origin uint8

const (
	originNone  origin = iota
	originDiag         // consume one symbol from both sequences
	originLeft         // gap in A, consume one symbol from B
	originAbove        // gap in B, consume one symbol from A
)

// matrix is the (m+1)x(n+1) dynamic-programming table for one pair,
// m = len(a) and n = len(b), stored row-major in two flat slices; cell
// (i,j) sits at i*cols+j. Each Align call owns one matrix outright.
type matrix struct {
	rows, cols int
	scores     []int
	origins    []origin
}

func newMatrix(m, n int) (*matrix, error) {
	rows, cols := m+1, n+1
	total := rows * cols
	if total/cols != rows {
		return nil, ErrMatrixTooLarge
	}
	return &matrix{
		rows:    rows,
		cols:    cols,
		scores:  make([]int, total),
		origins: make([]origin, total),
	}, nil
}

func (x *matrix) set(i, j, score int, org origin) {
	k := i*x.cols + j
	x.scores[k] = score
	x.origins[k] = org
}

func (x *matrix) scoreAt(i, j int) int     { return x.scores[i*x.cols+j] }
func (x *matrix) originAt(i, j int) origin { return x.origins[i*x.cols+j] }

// addChecked adds two scores, failing instead of wrapping around.
func addChecked(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrScoreOverflow
	}
	return s, nil
}

// fillMatrix runs the global-alignment recurrence over a and b. The
// first column and first row accumulate one gap per step, so the i*Gap
// and j*Gap borders get the same overflow checking as interior cells.
func fillMatrix(a, b []byte, p Params) (*matrix, error) {
	x, err := newMatrix(len(a), len(b))
	if err != nil {
		return nil, err
	}

	x.set(0, 0, 0, originNone)
	for i := 1; i < x.rows; i++ {
		s, err := addChecked(x.scoreAt(i-1, 0), p.Gap)
		if err != nil {
			return nil, err
		}
		x.set(i, 0, s, originAbove)
	}
	for j := 1; j < x.cols; j++ {
		s, err := addChecked(x.scoreAt(0, j-1), p.Gap)
		if err != nil {
			return nil, err
		}
		x.set(0, j, s, originLeft)
	}

	for i := 1; i < x.rows; i++ {
		ai := a[i-1]
		for j := 1; j < x.cols; j++ {
			diag, err := addChecked(x.scoreAt(i-1, j-1), p.symbolScore(ai, b[j-1]))
			if err != nil {
				return nil, err
			}
			left, err := addChecked(x.scoreAt(i, j-1), p.Gap)
			if err != nil {
				return nil, err
			}
			above, err := addChecked(x.scoreAt(i-1, j), p.Gap)
			if err != nil {
				return nil, err
			}
			best, org := diag, originDiag
			if left > best {
				best, org = left, originLeft
			}
			if above > best {
				best, org = above, originAbove
			}
			x.set(i, j, best, org)
		}
	}
	return x, nil
}
