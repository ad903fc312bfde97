package salam

import (
	"sort"
	"strings"
)

// NormalizeRecipients drops empty entries, upper-cases the rest and returns
// them sorted lexicographically on the upper-cased values. A nil slice is
// treated as empty; the input is never mutated and the result is always
// non-nil.
func NormalizeRecipients(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		normalized = append(normalized, strings.ToUpper(name))
	}
	sort.Strings(normalized)
	return normalized
}
