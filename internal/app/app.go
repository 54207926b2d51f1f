// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"pwalign-core/align"
	"pwalign-core/seqio"
	"pwalign/internal/cli"
	"pwalign/internal/cmdutil"
	"pwalign/internal/params"
	"pwalign/internal/pipeline"
	"pwalign/internal/runutil"
	"pwalign/internal/version"
	"pwalign/internal/writers"
)

// RunContext executes one CLI invocation and returns the process exit
// code: 0 success, 2 usage or input error, 3 runtime failure, 130 canceled.
// A consumer closing the pipe early counts as success.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pwalign")
	fs.SetOutput(io.Discard)

	usageExit := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	if len(argv) == 0 {
		return usageExit(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usageExit(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usageExit(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pwalign version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	// Scoring parameters: command-line flags win over the YAML file.
	var file params.File
	if opts.ParamsFile != "" {
		if file, err = params.Load(opts.ParamsFile); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	p, err := params.Resolve(file,
		params.Value{V: opts.Match, Set: opts.MatchSet},
		params.Value{V: opts.Mismatch, Set: opts.MismatchSet},
		params.Value{V: opts.Gap, Set: opts.GapSet},
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	for _, w := range runutil.ScoringWarnings(p) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Verbose {
		log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	col, err := seqio.ReadPaths(ctx, opts.SeqFiles)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Debug("sequences loaded", "count", col.Len(), "files", len(opts.SeqFiles))

	if col.Len() < 2 {
		_, _ = fmt.Fprintf(stderr, "error: need at least two sequences to align, got %d\n", col.Len())
		return 2
	}

	thr := runutil.EffectiveThreads(opts.Threads)
	inCh, writeErr := writers.StartAlignmentWriter(outw, opts.Output, opts.Sort, opts.Header, opts.Pretty, thr*4)

	total, perr := cmdutil.RunStream(ctx,
		pipeline.Config{Threads: thr, Log: log},
		col, p,
		func(r align.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	log.Debug("run complete", "alignments", total)
	return 0
}

// Run is RunContext against a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
