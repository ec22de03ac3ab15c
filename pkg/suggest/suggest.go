// Package suggest provides the string similarity primitives behind
// "did you mean" command suggestions.
package suggest

import "strings"

// Distance returns the Levenshtein edit distance between s and t. When
// ignoreCase is set both strings are lower-cased first. The computation is
// byte-oriented and keeps a single working row.
func Distance(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToLower(s)
		t = strings.ToLower(t)
	}
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	row := make([]int, len(s)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(t); j++ {
		diag := row[0]
		row[0] = j
		for i := 1; i <= len(s); i++ {
			old := row[i]
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = old
		}
	}
	return row[len(s)]
}

// HasFoldedPrefix reports whether query is a case-insensitive prefix of
// candidate. A query longer than the candidate never matches.
func HasFoldedPrefix(candidate, query string) bool {
	return strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(query))
}
