package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var quiet bool
	var gap int
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.IntVar(&gap, "gap", 0, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"--quiet", "one.fasta", "--gap", "-1", "-", "--", "--two.fasta"})
	want := []string{"--quiet", "--gap", "-1"}
	if len(flagArgs) != len(want) {
		t.Fatalf("flagArgs = %v, want %v", flagArgs, want)
	}
	for i := range want {
		if flagArgs[i] != want[i] {
			t.Fatalf("flagArgs = %v, want %v", flagArgs, want)
		}
	}
	if len(posArgs) != 3 || posArgs[0] != "one.fasta" || posArgs[1] != "-" || posArgs[2] != "--two.fasta" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestSplitKeepsInlineValues(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var out string
	fs.StringVar(&out, "output", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--output=tsv", "seqs.fa"})
	if len(flagArgs) != 1 || flagArgs[0] != "--output=tsv" {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 1 || posArgs[0] != "seqs.fa" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(">s\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPaths([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: got %v", got)
	}
}

func TestExpandPathsNoMatch(t *testing.T) {
	if _, err := ExpandPaths([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
