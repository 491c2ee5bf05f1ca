// Package diff renders unified diffs between identity reports.
package diff

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns the unified diff between the expected and actual line
// sets. Both inputs are sorted before comparison; an empty result means
// the two sets are equal.
func Unified(expected, actual []string) (string, error) {
	left := sortedCopy(expected)
	right := sortedCopy(actual)

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminated(left),
		B:        terminated(right),
		FromFile: "identified",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(text, "\n"), nil
}

func sortedCopy(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	sort.Strings(out)
	return out
}

// terminated gives every line the trailing newline difflib expects.
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
