// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package pathtrie

import "errors"

// Sentinel errors for pathtrie I/O operations.
//
// Matching itself never fails; only input parsing and file access return errors.
var (
	// ErrInvalidData indicates malformed structural input: bad counts, missing or blank lines.
	ErrInvalidData = errors.New("invalid data")
	// ErrFileHandling indicates a failure opening, reading or writing a file.
	ErrFileHandling = errors.New("file handling failed")
	// ErrInvalidFormat indicates an unsupported output format name.
	ErrInvalidFormat = errors.New("invalid output format")
)

// ErrorKind is a closed classification of pathtrie errors.
type ErrorKind uint8

const (
	// KindNone is returned for nil and for errors outside pathtrie categories.
	KindNone ErrorKind = iota
	// KindInvalidData classifies errors wrapping ErrInvalidData.
	KindInvalidData
	// KindFileHandling classifies errors wrapping ErrFileHandling.
	KindFileHandling
)

// KindOf classifies err into one of the pathtrie error kinds.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidData):
		return KindInvalidData
	case errors.Is(err, ErrFileHandling):
		return KindFileHandling
	default:
		return KindNone
	}
}

// String returns a stable kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidData:
		return "InvalidData"
	case KindFileHandling:
		return "FileHandling"
	default:
		return "None"
	}
}
