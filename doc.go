// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

/*
Package pathtrie classifies slash-separated paths against comma-separated wildcard patterns.

A pattern such as `a,*,c` describes every path with three segments whose first segment
is `a` and last segment is `c`. The wildcard token `*` matches any one segment.
When several patterns fit a path, the one using the fewest wildcards wins.

Basic flow:
  - build pattern trie (`Build`) or matcher (`NewMatcher`)
  - split path into segments (`SplitPath`)
  - resolve nearest pattern (`FindNearestMatch` / `Matcher.Decide`)
  - or classify a whole batch at once (`GetMatchingPatterns`)

File flow used by the `pathtrie` command:
  - read count-prefixed pattern and path lists (`LoadInputFile` / `ParseInput`)
  - classify paths (`Matcher.Results`)
  - write one line per path (`WriteResultsFile`)

The trie is immutable once built and can be shared between goroutines for reads.
*/
package pathtrie
