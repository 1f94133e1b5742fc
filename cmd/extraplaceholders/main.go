// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Command extraplaceholders is the placeholder expansion binary. The
// host launches it through the serve subcommand; resolve and info
// exist for poking at the expansion without a host.
package main

import (
	"fmt"
	"os"
)

// version is stamped via -ldflags at release time.
var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
