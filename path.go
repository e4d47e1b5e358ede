// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import "strings"

const (
	patternSeparator = ","
	pathSeparator    = '/'
)

// SplitPattern splits pattern on commas, preserving every token.
//
// Empty tokens between consecutive separators and leading/trailing empty
// tokens are kept: ",a,,b," yields ["", "a", "", "b", ""].
// Empty pattern yields an empty slice.
func SplitPattern(pattern string) []string {
	if pattern == "" {
		return []string{}
	}

	return strings.Split(pattern, patternSeparator)
}

// SplitPath splits path on slashes, collapsing repeated separators.
//
// Leading and trailing separators are dropped: "/a//b/" yields ["a", "b"].
// Whitespace is not trimmed, so "   " yields one segment.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == pathSeparator
	})
}

// CountWildcards counts tokens of pattern equal to wildcard.
func CountWildcards(pattern string, wildcard string) int {
	count := 0
	for _, token := range SplitPattern(pattern) {
		if token == wildcard {
			count++
		}
	}

	return count
}

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
