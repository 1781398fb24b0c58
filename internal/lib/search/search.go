// Package search implements the free-text filter of the admin panels:
// a case-insensitive substring match across a fixed set of display
// fields, computed against the full in-memory list. The backend never
// sees the query.
package search

import "strings"

// Matches reports whether term occurs in any of the fields, ignoring
// case. An empty term matches everything.
func Matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
