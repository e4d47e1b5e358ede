// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import (
	"fmt"
	"strings"
	"testing"
)

const (
	benchPatternCount = 96
	benchPathCount    = 512
)

var (
	benchResultSink  Result
	benchNodeSink    *Node
	benchPatternSink string
)

func BenchmarkParseInput(b *testing.B) {
	src := buildBenchmarkInputSource(benchPatternCount, benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input, err := ParseInputString(src)
		if err != nil {
			b.Fatal(err)
		}

		if len(input.Paths) != benchPathCount {
			b.Fatalf("len(paths)=%d", len(input.Paths))
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchNodeSink = Build(patterns)
	}
}

func BenchmarkMatcherDecide(b *testing.B) {
	m := NewMatcher(benchmarkPatterns(benchPatternCount), MatcherOptions{})
	paths := benchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = m.Decide(paths[i%len(paths)])
	}
}

func BenchmarkFindNearestMatchBacktracking(b *testing.B) {
	// Every literal step leaves a wildcard alternate behind.
	patterns := make([]string, 0, 16)
	for depth := 1; depth <= 8; depth++ {
		tokens := make([]string, 8)
		for i := range tokens {
			tokens[i] = "*"
			if i < depth {
				tokens[i] = fmt.Sprintf("s%d", i)
			}
		}

		patterns = append(patterns, strings.Join(tokens, ","))
	}

	root := Build(patterns)
	segments := SplitPath("s0/s1/s2/s3/s4/s5/s6/x")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchPatternSink, _ = FindNearestMatch(root, segments)
	}
}

func benchmarkPatterns(patternCount int) []string {
	patterns := make([]string, 0, patternCount)
	for i := 0; i < patternCount; i++ {
		switch i % 6 {
		case 0:
			patterns = append(patterns, fmt.Sprintf("assets,group_%03d,*", i%37))
		case 1:
			patterns = append(patterns, fmt.Sprintf("scripts,module_%03d,*", i%71))
		case 2:
			patterns = append(patterns, fmt.Sprintf("*,group_%03d,*", i%37))
		case 3:
			patterns = append(patterns, fmt.Sprintf("build_%03d,*", i%29))
		case 4:
			patterns = append(patterns, fmt.Sprintf("docs,*,chapter_%02d,*", i%17))
		default:
			patterns = append(patterns, "*,*,*")
		}
	}

	return patterns
}

func benchmarkPaths(pathCount int) []string {
	paths := make([]string, 0, pathCount)
	for i := 0; i < pathCount; i++ {
		switch i % 5 {
		case 0:
			paths = append(paths, fmt.Sprintf("/assets/group_%03d/tex_%05d.paa", i%37, i))
		case 1:
			paths = append(paths, fmt.Sprintf("scripts/module_%03d/main_%02d.c", i%71, i%19))
		case 2:
			paths = append(paths, fmt.Sprintf("build_%03d/cache_%04d.bin/", i%29, i))
		case 3:
			paths = append(paths, fmt.Sprintf("docs/section_%03d/chapter_%02d/readme.md", i%41, i%17))
		default:
			paths = append(paths, fmt.Sprintf("misc//file_%05d.txt", i))
		}
	}

	return paths
}

func buildBenchmarkInputSource(patternCount int, pathCount int) string {
	patterns := benchmarkPatterns(patternCount)
	paths := benchmarkPaths(pathCount)

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(patterns))
	for _, pattern := range patterns {
		b.WriteString(pattern)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%d\n", len(paths))
	for _, path := range paths {
		b.WriteString(path)
		b.WriteByte('\n')
	}

	return b.String()
}
