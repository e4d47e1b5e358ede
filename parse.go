// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds one input line.
const maxLineSize = 1 << 20

// ParseInput parses count-prefixed pattern and path lists from reader.
//
// Format:
//   - line with number of patterns N, followed by N pattern lines
//   - line with number of paths M, followed by M path lines
//
// Input is decoded as UTF-8; a leading byte order mark is dropped.
// Lines after the last declared path are ignored.
//
// Structural problems return ErrInvalidData:
//   - count line missing or not an integer
//   - fewer lines than declared
//   - blank pattern or path line
//   - zero patterns or zero paths
//
// Read failures return ErrFileHandling.
func ParseInput(r io.Reader) (Input, error) {
	s := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p := &inputParser{scanner: s}

	patterns, err := p.section("pattern")
	if err != nil {
		return Input{}, err
	}

	paths, err := p.section("path")
	if err != nil {
		return Input{}, err
	}

	return Input{
		Patterns: patterns,
		Paths:    paths,
	}, nil
}

// ParseInputString parses input from string.
func ParseInputString(src string) (Input, error) {
	return ParseInput(strings.NewReader(src))
}

// inputParser reads input line by line and tracks line numbers for errors.
type inputParser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next line, false at end of input.
func (p *inputParser) next() (string, bool, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("%w: scan input: %w", ErrFileHandling, err)
		}

		return "", false, nil
	}

	p.line++
	return strings.TrimRight(p.scanner.Text(), "\r"), true, nil
}

// section reads one count line and the declared number of entries.
func (p *inputParser) section(name string) ([]string, error) {
	raw, ok, err := p.next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: line %d: missing number of %ss", ErrInvalidData, p.line+1, name)
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: number of %ss must be an integer, got %q", ErrInvalidData, p.line, name, raw)
	}

	if count <= 0 {
		return nil, fmt.Errorf("%w: line %d: there are no %ss", ErrInvalidData, p.line, name)
	}

	entries := make([]string, 0, min(count, 1024))
	for range count {
		entry, ok, err := p.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, fmt.Errorf("%w: expected %d %ss, got %d", ErrInvalidData, count, name, len(entries))
		}

		if isBlank(entry) {
			return nil, fmt.Errorf("%w: line %d: %s is blank", ErrInvalidData, p.line, name)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
