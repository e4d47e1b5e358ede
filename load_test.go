// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(referenceInput), 0o600))

	input, err := LoadInputFile(path)
	require.NoError(t, err)

	assert.Len(t, input.Patterns, 6)
	assert.Len(t, input.Paths, 5)
}

func TestLoadInputFileInvalidData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n*,b,*\n"), 0o600))

	_, err := LoadInputFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), path)
}

func TestLoadInputFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadInputFile(filepath.Join(t.TempDir(), "xxxxxx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileHandling)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, KindFileHandling, KindOf(err))
}
