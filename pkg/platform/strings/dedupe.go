// Package strings provides string slice utilities.
package strings

import (
	"slices"
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SortedUnique is DedupeAndTrim followed by a lexical sort. It yields the
// vocabulary a label encoder assigns codes over.
//
// Example:
//
//	SortedUnique([]string{"male", " female", "male"})
//	// Returns: []string{"female", "male"}
func SortedUnique(values []string) []string {
	result := DedupeAndTrim(values)
	slices.Sort(result)
	return result
}
