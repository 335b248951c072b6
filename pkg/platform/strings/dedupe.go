// Package strings provides string helpers for names and filter values.
package strings

import (
	"sort"
	"strings"
)

// DedupeAndTrim trims each value and drops empties and duplicates, keeping
// first-seen order. Filter parameters pass through here before reaching a store,
// so "A", " A" and "" collapse to a single "A".
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
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// SortedUnion merges the given lists into one sorted list without duplicates or empties.
func SortedUnion(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	out := DedupeAndTrim(all)
	if out == nil {
		return []string{}
	}
	sort.Strings(out)
	return out
}

// NormalizeName trims a display name and collapses inner runs of whitespace,
// so "  Security   Council " is stored as "Security Council".
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
