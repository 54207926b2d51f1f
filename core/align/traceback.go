// core/align/traceback.go
package align

// traceback walks origin tags from (m,n) back to (0,0) and rebuilds the
// aligned strings. Symbols are appended in reverse into buffers sized to
// the m+n worst case and flipped once at the end, so reconstruction does
// no per-step allocation.
func traceback(x *matrix, a, b []byte) Result {
	m, n := x.rows-1, x.cols-1
	bufA := make([]byte, 0, m+n)
	bufB := make([]byte, 0, m+n)
	matches := 0

	i, j := m, n
	for i > 0 || j > 0 {
		switch x.originAt(i, j) {
		case originDiag:
			bufA = append(bufA, a[i-1])
			bufB = append(bufB, b[j-1])
			if a[i-1] == b[j-1] {
				matches++
			}
			i--
			j--
		case originLeft:
			bufA = append(bufA, GapSymbol)
			bufB = append(bufB, b[j-1])
			j--
		case originAbove:
			bufA = append(bufA, a[i-1])
			bufB = append(bufB, GapSymbol)
			i--
		default:
			// fillMatrix tags every cell except (0,0).
			panic("align: untagged cell before (0,0)")
		}
	}
	reverseBytes(bufA)
	reverseBytes(bufB)

	return Result{
		AlignedA: string(bufA),
		AlignedB: string(bufB),
		Length:   len(bufA),
		Matches:  matches,
	}
}

func reverseBytes(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
