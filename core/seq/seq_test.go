// core/seq/seq_test.go
package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwalign-core/seq"
)

// TestValidate_Empty verifies that a sequence without symbols fails
// validation with ErrEmpty and that the error names the sequence.
func TestValidate_Empty(t *testing.T) {
	s := seq.Sequence{Name: "empty one"}
	err := s.Validate()
	assert.ErrorIs(t, err, seq.ErrEmpty, "zero-symbol sequence must fail")
	assert.Contains(t, err.Error(), "empty one", "error should carry the name")
}

// TestValidate_ControlByte verifies that embedded control bytes are
// rejected with the offending offset in the message.
func TestValidate_ControlByte(t *testing.T) {
	s := seq.Sequence{Name: "bad", Symbols: []byte("AC\x0bGT")}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 2")
}

// TestValidate_OK verifies that ordinary symbol data passes, including
// characters outside the DNA alphabet (symbols carry no semantics).
func TestValidate_OK(t *testing.T) {
	for _, data := range []string{"A", "GCATGCU", "hello world!", "A-C"} {
		s := seq.Sequence{Name: "x", Symbols: []byte(data)}
		assert.NoError(t, s.Validate(), "data %q", data)
	}
}

// TestCollection_OrderAndPairCount verifies insertion order is kept and
// the unordered pair count follows n*(n-1)/2.
func TestCollection_OrderAndPairCount(t *testing.T) {
	c := seq.NewCollection(
		seq.Sequence{Name: "a", Symbols: []byte("A")},
		seq.Sequence{Name: "b", Symbols: []byte("C")},
	)
	c.Add(seq.Sequence{Name: "c", Symbols: []byte("G")})

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "a", c.At(0).Name)
	assert.Equal(t, "b", c.At(1).Name)
	assert.Equal(t, "c", c.At(2).Name)
	assert.Equal(t, 3, c.PairCount())

	assert.Equal(t, 0, seq.NewCollection().PairCount())
	assert.Equal(t, 0, seq.NewCollection(seq.Sequence{Name: "solo", Symbols: []byte("T")}).PairCount())
}
