// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestScoresAndFilesOK(t *testing.T) {
	o := mustParse(t,
		"--match", "1", "--mismatch", "-1", "--gap", "-1",
		"--sequences", "a.fa", "--sequences", "b.fa",
	)
	if o.Match != 1 || o.Mismatch != -1 || o.Gap != -1 || len(o.SeqFiles) != 2 {
		t.Errorf("bad parse %+v", o)
	}
	if !o.MatchSet || !o.MismatchSet || !o.GapSet {
		t.Errorf("set-tracking lost: %+v", o)
	}
	if !o.Header || o.Output != "text" {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestZeroScoreCountsAsSet(t *testing.T) {
	o := mustParse(t, "--match", "0", "--mismatch", "0", "--gap", "0", "x.fa")
	if !o.MatchSet || !o.MismatchSet || !o.GapSet {
		t.Errorf("explicit zeros must count as set: %+v", o)
	}
}

func TestPositionalsBecomeSeqFiles(t *testing.T) {
	o := mustParse(t, "--match", "1", "--mismatch", "-1", "--gap", "-1", "a.fa", "-")
	if len(o.SeqFiles) != 2 || o.SeqFiles[0] != "a.fa" || o.SeqFiles[1] != "-" {
		t.Errorf("positionals lost: %+v", o.SeqFiles)
	}
}

func TestErrorMissingScores(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--match", "1", "a.fa"})
	if err == nil {
		t.Fatalf("expected error when mismatch/gap not supplied")
	}
}

func TestParamsFileDefersScoreCheck(t *testing.T) {
	o := mustParse(t, "--params", "p.yaml", "a.fa")
	if o.ParamsFile != "p.yaml" {
		t.Errorf("params file lost: %+v", o)
	}
}

func TestErrorNoSequences(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--match", "1", "--mismatch", "-1", "--gap", "-1"})
	if err == nil {
		t.Fatalf("expected error when sequences missing")
	}
}

func TestErrorBadOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--match", "1", "--mismatch", "-1", "--gap", "-1", "--output", "xml", "a.fa",
	})
	if err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestErrorNegativeThreads(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--match", "1", "--mismatch", "-1", "--gap", "-1", "--threads", "-2", "a.fa",
	})
	if err == nil {
		t.Fatalf("expected error for negative threads")
	}
}

func TestHelpRequested(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatalf("version flag lost")
	}
}
