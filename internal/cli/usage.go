// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"pwalign/internal/version"
)

// installUsage wires the grouped help text onto fs.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – optimal global pairwise alignment\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --match 1 --mismatch -1 --gap -1 seqs.fasta\n", name)
		fmt.Fprintf(out, "  cat seqs.fasta | %s --params scoring.yaml -\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --sequences file        FASTA file(s) (repeatable, positional, or '-' for STDIN)")
		fmt.Fprintln(out, "      --params file           YAML file with match/mismatch/gap scores")

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintln(out, "      --match int             Score for aligning two equal symbols [*]")
		fmt.Fprintln(out, "      --mismatch int          Score for aligning two different symbols [*]")
		fmt.Fprintln(out, "      --gap int               Score for aligning a symbol against a gap [*]")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                Match line between aligned rows (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --sort                  Sort by score (desc), then names [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line (tsv) [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress scoring warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug trace on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nFlags marked [*] are required unless --params supplies them.")
	}
}
