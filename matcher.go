// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import "math"

// Matcher resolves nearest patterns for paths against a prebuilt trie.
//
// Matcher is read-only after NewMatcher and is safe for concurrent use.
type Matcher struct {
	root     *Node
	wildcard string
	noMatch  string
}

// NewMatcher builds the pattern trie once for ordered patterns.
func NewMatcher(patterns []string, opts MatcherOptions) *Matcher {
	opts.applyDefaults()

	return &Matcher{
		root:     Build(patterns),
		wildcard: opts.Wildcard,
		noMatch:  opts.NoMatch,
	}
}

// Root returns the trie root.
func (m *Matcher) Root() *Node {
	return m.root
}

// Nearest returns the nearest pattern for path.
func (m *Matcher) Nearest(path string) (string, bool) {
	pattern := findNearest(m.root, SplitPath(path), m.wildcard)
	return pattern, pattern != ""
}

// Decide returns the decision for one path.
func (m *Matcher) Decide(path string) Result {
	pattern, ok := m.Nearest(path)
	if !ok {
		return Result{
			Path:    path,
			Pattern: m.noMatch,
		}
	}

	return Result{
		Path:      path,
		Pattern:   pattern,
		Matched:   true,
		Wildcards: CountWildcards(pattern, m.wildcard),
	}
}

// Results returns decisions for paths in input order.
func (m *Matcher) Results(paths []string) []Result {
	out := make([]Result, 0, len(paths))
	for _, path := range paths {
		out = append(out, m.Decide(path))
	}

	return out
}

// MatchAll returns the nearest pattern, or the no-match label, for each path in input order.
func (m *Matcher) MatchAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		out = append(out, m.Decide(path).Pattern)
	}

	return out
}

// GetMatchingPatterns builds a trie from patterns and resolves every path.
//
// Output has one entry per path in input order; unmatched paths get "NO MATCH".
func GetMatchingPatterns(patterns []string, paths []string) []string {
	return NewMatcher(patterns, MatcherOptions{}).MatchAll(paths)
}

// FindNearestMatch resolves the pattern nearest to path segments below node,
// using the default wildcard token.
//
// Only segments from node.Position onward are considered.
func FindNearestMatch(node *Node, segments []string) (string, bool) {
	pattern := findNearest(node, segments, Wildcard)
	return pattern, pattern != ""
}

// findNearest walks the trie along segments and returns the nearest pattern, or "".
//
// Primary walk prefers a literal child over the wildcard child and remembers
// every wildcard sibling it passes over. The last node reached decides the
// primary result. When that result is missing or took more than one wildcard,
// the remembered branches (most recent first) are searched again and the one
// with the fewest wildcards replaces it if strictly better.
func findNearest(node *Node, segments []string, wildcard string) string {
	if node == nil || len(segments) <= node.Position {
		return ""
	}

	var (
		matched    string
		wildcards  int
		alternates []*Node
	)

	children := node.Children
	for _, segment := range segments[node.Position:] {
		if isBlank(segment) {
			continue
		}

		if child, ok := children[segment]; ok {
			matched = child.Pattern
			if star, ok := children[wildcard]; ok {
				alternates = append([]*Node{star}, alternates...)
			}

			children = child.Children
			continue
		}

		star, ok := children[wildcard]
		if !ok {
			break
		}

		matched = star.Pattern
		wildcards++
		children = star.Children
	}

	if matched != "" && wildcards <= 1 {
		return matched
	}

	alternate, alternateWildcards := bestAlternate(alternates, segments, wildcard)
	if alternate != "" && (matched == "" || wildcards > alternateWildcards) {
		return alternate
	}

	return matched
}

// bestAlternate resolves every alternate branch and returns the result with
// the fewest wildcards; the earliest alternate wins ties.
func bestAlternate(alternates []*Node, segments []string, wildcard string) (string, int) {
	best := ""
	bestWildcards := math.MaxInt

	for _, alternate := range alternates {
		pattern := findNearest(alternate, segments, wildcard)
		if pattern == "" {
			continue
		}

		if count := CountWildcards(pattern, wildcard); count < bestWildcards {
			best = pattern
			bestWildcards = count
		}
	}

	return best, bestWildcards
}
