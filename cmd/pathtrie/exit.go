// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package main

import (
	"errors"

	"github.com/woozymasta/pathtrie"
	"github.com/woozymasta/pathtrie/internal/config"
)

// Process exit statuses.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitInvalidData  = 3
	exitFileHandling = 4
)

// errUsage marks invocation errors detected before any input is read.
var errUsage = errors.New("usage")

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	switch pathtrie.KindOf(err) {
	case pathtrie.KindInvalidData:
		return exitInvalidData
	case pathtrie.KindFileHandling:
		return exitFileHandling
	}

	if errors.Is(err, errUsage) || errors.Is(err, config.ErrInvalidConfig) {
		return exitUsage
	}

	return exitFailure
}
