// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

// Command pathtrie classifies paths from an input file against wildcard patterns.
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}
