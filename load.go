// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import (
	"fmt"
	"os"
)

// LoadInputFile reads and parses pattern and path lists from a file.
func LoadInputFile(path string) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, fmt.Errorf("%w: open input file: %w", ErrFileHandling, err)
	}
	defer func() { _ = f.Close() }()

	input, err := ParseInput(f)
	if err != nil {
		return Input{}, fmt.Errorf("parse input file %s: %w", path, err)
	}

	return input, nil
}
