// core/align/allpairs.go
package align

import (
	"fmt"

	"pwalign-core/seq"
)

// AllPairs aligns every unordered pair of c: the outer index ascends in
// input order and the inner index runs over later sequences only, so
// each pair appears exactly once, never mirrored. visit observes results
// in exactly that order; a visit error stops the sweep.
func AllPairs(c *seq.Collection, p Params, visit func(Result) error) error {
	for i := 0; i < c.Len(); i++ {
		for j := i + 1; j < c.Len(); j++ {
			r, err := Align(c.At(i), c.At(j), p)
			if err != nil {
				return fmt.Errorf("pair %s/%s: %w", c.At(i).Name, c.At(j).Name, err)
			}
			if err := visit(r); err != nil {
				return err
			}
		}
	}
	return nil
}
