// core/seq/seq.go
package seq

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates a sequence with no symbols.
var ErrEmpty = errors.New("seq: sequence has no symbols")

// Sequence is one named input sequence. Symbols are raw single-byte
// characters compared by equality only; the engine attaches no alphabet
// semantics to them.
type Sequence struct {
	Name    string
	Symbols []byte
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.Symbols) }

// Validate enforces the input invariants: at least one symbol, and no
// control bytes (line terminators never survive parsing; anything else
// below 0x20 is a sign of a binary or mangled input).
func (s Sequence) Validate() error {
	if len(s.Symbols) == 0 {
		return fmt.Errorf("sequence %q: %w", s.Name, ErrEmpty)
	}
	for i, b := range s.Symbols {
		if b < 0x20 {
			return fmt.Errorf("sequence %q: control byte 0x%02x at offset %d", s.Name, b, i)
		}
	}
	return nil
}
