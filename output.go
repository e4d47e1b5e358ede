// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	// FormatText writes one resolved pattern per line.
	FormatText Format = "text"
	// FormatJSON writes an indented JSON array of results.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML sequence of results.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a case-insensitive format name; empty value means text.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, name)
	}
}

// WriteResults writes results to w in the given format.
func WriteResults(w io.Writer, results []Result, format Format) error {
	switch format {
	case "", FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNilResults(results)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNilResults(results)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// WriteResultsFile creates or truncates path and writes results to it.
func WriteResultsFile(path string, results []Result, format Format) (err error) {
	if !format.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create output file: %w", ErrFileHandling, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close output file: %w", ErrFileHandling, closeErr)
		}
	}()

	if err := WriteResults(f, results, format); err != nil {
		return fmt.Errorf("%w: write output file %s: %w", ErrFileHandling, path, err)
	}

	return nil
}

// writeText writes one resolved pattern per line.
func writeText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		if _, err := bw.WriteString(res.Pattern); err != nil {
			return err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// valid reports whether format value is supported.
func (f Format) valid() bool {
	return f == "" || f == FormatText || f == FormatJSON || f == FormatYAML
}

// nonNilResults keeps encoders from emitting null for an empty batch.
func nonNilResults(results []Result) []Result {
	if results == nil {
		return []Result{}
	}

	return results
}
