// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import "sort"

const (
	// Wildcard is the default token matching any single path segment.
	Wildcard = "*"
	// NoMatch is the default label reported for paths without a pattern.
	NoMatch = "NO MATCH"
)

// Node is one node of the pattern trie.
type Node struct {
	// Children maps a pattern token (literal or wildcard) to its child node.
	Children map[string]*Node `json:"children,omitempty" yaml:"children,omitempty"`
	// Pattern is the full pattern text ending at this node, empty when none ends here.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Position is the depth from root; root is 0.
	Position int `json:"position" yaml:"position"`
}

// newNode creates a node at depth position.
func newNode(position int) *Node {
	return &Node{
		Children: make(map[string]*Node),
		Position: position,
	}
}

// Child returns child node for token.
func (n *Node) Child(token string) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	child, ok := n.Children[token]
	return child, ok
}

// Terminal reports whether some pattern ends at this node.
func (n *Node) Terminal() bool {
	return n != nil && n.Pattern != ""
}

// Keys returns child tokens in sorted order.
func (n *Node) Keys() []string {
	if n == nil || len(n.Children) == 0 {
		return nil
	}

	keys := make([]string, 0, len(n.Children))
	for key := range n.Children {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// Size returns the number of nodes below n, n excluded.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}

	total := 0
	for _, child := range n.Children {
		total += 1 + child.Size()
	}

	return total
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// Wildcard is the token matching any single segment. Empty value defaults to "*".
	Wildcard string `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	// NoMatch is the label reported for unmatched paths. Empty value defaults to "NO MATCH".
	NoMatch string `json:"no_match,omitempty" yaml:"no_match,omitempty"`
}

// Result is the decision produced for one path.
type Result struct {
	// Path is the path as given by caller.
	Path string `json:"path" yaml:"path"`
	// Pattern is the nearest pattern, or the NoMatch label when nothing matched.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Matched reports whether a pattern was found.
	Matched bool `json:"matched" yaml:"matched"`
	// Wildcards is the wildcard count of the matched pattern.
	Wildcards int `json:"wildcards" yaml:"wildcards"`
}

// Input is the pattern and path lists read from an input source.
type Input struct {
	Patterns []string `json:"patterns" yaml:"patterns"`
	Paths    []string `json:"paths" yaml:"paths"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if opts.Wildcard == "" {
		opts.Wildcard = Wildcard
	}

	if opts.NoMatch == "" {
		opts.NoMatch = NoMatch
	}
}
