// core/seq/collection.go
package seq

// Collection is an append-only, order-preserving set of sequences.
// Pair enumeration and output ordering both derive from input order,
// so Collection never sorts or deduplicates.
type Collection struct {
	seqs []Sequence
}

// NewCollection builds a collection from the given sequences, in order.
func NewCollection(seqs ...Sequence) *Collection {
	c := &Collection{}
	c.seqs = append(c.seqs, seqs...)
	return c
}

// Add appends s, preserving insertion order.
func (c *Collection) Add(s Sequence) { c.seqs = append(c.seqs, s) }

// Len returns the number of sequences.
func (c *Collection) Len() int { return len(c.seqs) }

// At returns the i-th sequence in insertion order.
func (c *Collection) At(i int) Sequence { return c.seqs[i] }

// PairCount returns the number of unordered pairs, n*(n-1)/2.
func (c *Collection) PairCount() int {
	n := len(c.seqs)
	return n * (n - 1) / 2
}
