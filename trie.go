// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

// Build creates the pattern trie for ordered patterns.
//
// Every token of a pattern becomes one node, and patterns sharing leading
// tokens share the branch. For "a,b,c" and "a,b,d" the trie is:
//
//	root 0
//	  a 1
//	    b 2
//	      c 3 (a,b,c)
//	      d 3 (a,b,d)
//
// Build never fails:
//   - empty patterns are skipped
//   - a pattern with a blank token is abandoned at that token, but nodes
//     already created for its leading tokens stay in the trie without a pattern
//   - repeated token sequences keep the last pattern text
func Build(patterns []string) *Node {
	root := newNode(0)

	for _, pattern := range patterns {
		insertPattern(root, pattern)
	}

	return root
}

// insertPattern adds one pattern below root.
func insertPattern(root *Node, pattern string) {
	tokens := SplitPattern(pattern)
	if len(tokens) == 0 {
		return
	}

	node := root
	for depth, token := range tokens {
		if isBlank(token) {
			return
		}

		child, ok := node.Children[token]
		if !ok {
			child = newNode(depth + 1)
			node.Children[token] = child
		}

		node = child
	}

	node.Pattern = pattern
}
