// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pwalign-core/align"
	"pwalign-core/seq"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int          // worker goroutines; <1 means all CPUs
	Log     *slog.Logger // optional trace logger; nil disables
}

// AlignFunc computes one pairwise alignment. Any implementation
// (including fakes in tests) can stand in for align.Align.
type AlignFunc func(a, b seq.Sequence, p align.Params) (align.Result, error)

type job struct {
	idx  int
	a, b seq.Sequence
}

type item struct {
	idx int
	res align.Result
}

// ForEachAlignment aligns every unordered pair in c and calls visit in
// the pair order align.AllPairs produces, (0,1), (0,2), ..., (1,2), ...,
// no matter which worker finishes first. It returns the first error
// encountered (including context cancellation).
func ForEachAlignment(
	ctx context.Context,
	cfg Config,
	c *seq.Collection,
	params align.Params,
	alignFn AlignFunc,
	visit func(align.Result) error,
) error {
	if alignFn == nil {
		alignFn = func(a, b seq.Sequence, p align.Params) (align.Result, error) {
			return align.Align(a, b, p)
		}
	}
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	n := c.Len()
	total := c.PairCount()
	// A context canceled before the sweep starts must not emit pairs.
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug("pair sweep start", "sequences", n, "pairs", total, "threads", threads)

	jobs := make(chan job, threads*2)
	results := make(chan item, threads*2)

	g, gctx := errgroup.WithContext(ctx)

	// Producer side: one feeder plus the workers share a nested group so
	// results closes exactly once, after every worker has stopped.
	g.Go(func() error {
		w, wctx := errgroup.WithContext(gctx)
		w.Go(func() error {
			defer close(jobs)
			idx := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					select {
					case jobs <- job{idx: idx, a: c.At(i), b: c.At(j)}:
					case <-wctx.Done():
						return wctx.Err()
					}
					idx++
				}
			}
			return nil
		})
		for t := 0; t < threads; t++ {
			w.Go(func() error {
				for jb := range jobs {
					res, err := alignFn(jb.a, jb.b, params)
					if err != nil {
						return fmt.Errorf("pair %s/%s: %w", jb.a.Name, jb.b.Name, err)
					}
					select {
					case results <- item{idx: jb.idx, res: res}:
					case <-wctx.Done():
						return wctx.Err()
					}
				}
				return nil
			})
		}
		err := w.Wait()
		close(results)
		return err
	})

	// Collector: workers finish out of order; buffer until the next pair
	// index arrives so visit always sees pair order.
	g.Go(func() error {
		pending := make(map[int]align.Result, threads*2)
		next := 0
		for it := range results {
			pending[it.idx] = it.res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				log.Debug("pair aligned", "a", r.NameA, "b", r.NameB, "score", r.Score, "length", r.Length)
				if err := visit(r); err != nil {
					return err
				}
				next++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Debug("pair sweep aborted", "error", err)
		return err
	}
	log.Debug("pair sweep done", "pairs", total)
	return nil
}
