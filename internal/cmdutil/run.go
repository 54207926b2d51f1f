package cmdutil

import (
	"context"

	"pwalign-core/align"
	"pwalign-core/seq"
	"pwalign/internal/pipeline"
)

// RunStream runs the shared pipeline and forwards every alignment via send.
// It returns the number of alignments forwarded and the first error.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	col *seq.Collection,
	params align.Params,
	send func(align.Result) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachAlignment(ctx, cfg, col, params, nil, func(r align.Result) error {
		if err := send(r); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
