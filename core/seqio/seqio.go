// core/seqio/seqio.go

// Package seqio parses named sequences from '>'-headed text, the format
// the aligner consumes. It never imports anything above the core module;
// callers that need wire types use pkg/api in the root module.
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"pwalign-core/seq"
)

// ErrNoHeader indicates sequence data before the first '>' header line.
var ErrNoHeader = errors.New("seqio: sequence data before first header")

// Stream parses records from r and calls emit for each finalized one.
//
// A line starting with '>' opens a record; the rest of that line, trimmed
// of surrounding whitespace, is the record name in full. Following
// non-empty lines are concatenated into the symbol data (each trimmed, so
// CRLF input is safe). Blank lines are skipped. Every finalized record is
// validated before emit; an empty record is an error, not a skip.
//
// It is cancelable: ctx is checked between lines, so a canceled context
// stops a large scan promptly.
func Stream(ctx context.Context, r io.Reader, emit func(seq.Sequence) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		name     string
		inRecord bool
		data     = make([]byte, 0, 1<<20)
		lineNum  int
	)

	flush := func() error {
		s := seq.Sequence{Name: name, Symbols: append([]byte(nil), data...)}
		if err := s.Validate(); err != nil {
			return err
		}
		return emit(s)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNum++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if inRecord {
				if err := flush(); err != nil {
					return err
				}
				data = data[:0]
			}
			name = string(bytes.TrimSpace(line[1:]))
			inRecord = true
			continue
		}
		if !inRecord {
			return fmt.Errorf("line %d: %w", lineNum, ErrNoHeader)
		}
		data = append(data, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("seqio scan: %w", err)
	}
	if inRecord {
		return flush()
	}
	return nil
}
