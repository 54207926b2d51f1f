// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pwalign/internal/cliutil"
	"pwalign/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Sequence input
	SeqFiles   []string
	ParamsFile string

	// Scoring. The *Set fields record whether the flag appeared on the
	// command line, since 0 is a legal value for all three scores.
	Match       int
	Mismatch    int
	Gap         int
	MatchSet    bool
	MismatchSet bool
	GapSet      bool

	// Performance
	Threads int

	// Output
	Output string
	Pretty bool
	Sort   bool
	Header bool // true unless --no-header

	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the grouped usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags and returns an Options struct.
// Positional arguments are sequence files; glob patterns among them expand.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seqs stringSlice
	fs.Var(&seqs, "sequences", "FASTA file(s) (repeatable or '-')")
	fs.Var(&seqs, "i", "FASTA file(s) (shorthand)")
	fs.StringVar(&opt.ParamsFile, "params", "", "YAML file with match/mismatch/gap scores")

	fs.IntVar(&opt.Match, "match", 0, "score for aligning two equal symbols [*]")
	fs.IntVar(&opt.Mismatch, "mismatch", 0, "score for aligning two different symbols [*]")
	fs.IntVar(&opt.Gap, "gap", 0, "score for aligning a symbol against a gap [*]")

	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "worker threads (shorthand)")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | tsv | json | jsonl")
	fs.StringVar(&opt.Output, "o", output.FormatText, "output format (shorthand)")
	fs.BoolVar(&opt.Pretty, "pretty", false, "match line between aligned rows (text)")
	fs.BoolVar(&opt.Sort, "sort", false, "sort output by score (desc), then names")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (tsv)")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress scoring warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress scoring warnings (shorthand)")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug trace on stderr")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			opt.MatchSet = true
		case "mismatch":
			opt.MismatchSet = true
		case "gap":
			opt.GapSet = true
		}
	})

	opt.Header = !noHeader
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPaths(posArgs)
		if err != nil {
			return opt, err
		}
		seqs = append(seqs, exp...)
	}
	opt.SeqFiles = seqs

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one sequence file is required (positional or --sequences)")
	}
	if opt.ParamsFile == "" {
		var missing []string
		if !opt.MatchSet {
			missing = append(missing, "--match")
		}
		if !opt.MismatchSet {
			missing = append(missing, "--mismatch")
		}
		if !opt.GapSet {
			missing = append(missing, "--gap")
		}
		if len(missing) > 0 {
			return opt, fmt.Errorf("missing %s (or supply --params)", strings.Join(missing, ", "))
		}
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if !output.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q (want text | tsv | json | jsonl)", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
