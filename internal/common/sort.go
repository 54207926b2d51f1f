// internal/common/sort.go
package common

import (
	"sort"

	"pwalign-core/align"
)

// LessResult defines the --sort order: best score first, name tie-break.
func LessResult(a, b align.Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.NameA != b.NameA {
		return a.NameA < b.NameA
	}
	return a.NameB < b.NameB
}

func SortResults(rs []align.Result) {
	sort.Slice(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
