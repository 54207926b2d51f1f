// core/seqio/read.go
package seqio

import (
	"context"
	"fmt"

	"pwalign-core/seq"
)

// StreamPath opens path (plain, .gz, or "-" for stdin) and streams its
// records through emit. Errors are prefixed with the path.
func StreamPath(ctx context.Context, path string, emit func(seq.Sequence) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := Stream(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadPaths reads every path in order and accumulates all records into
// one collection; records keep file order, files keep argument order.
func ReadPaths(ctx context.Context, paths []string) (*seq.Collection, error) {
	col := seq.NewCollection()
	for _, p := range paths {
		if err := StreamPath(ctx, p, func(s seq.Sequence) error {
			col.Add(s)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	return col, nil
}
