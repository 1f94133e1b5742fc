// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package tracker

import (
	"log/slog"

	"github.com/shedux/extraplaceholders/internal/bolt"
	"github.com/shedux/extraplaceholders/internal/phoenix"
)

// Bolt tracks the Bolt match/kit framework.
type Bolt = Dependency[bolt.API]

// Phoenix tracks the Phoenix staff/profile framework.
type Phoenix = Dependency[phoenix.API]

// TrackBolt acquires the Bolt handle through the host registration
// point.
func TrackBolt(log *slog.Logger) *Bolt {
	return Track("bolt", bolt.Lookup, log)
}

// TrackPhoenix acquires the Phoenix handle through the host
// registration point.
func TrackPhoenix(log *slog.Logger) *Phoenix {
	return Track("phoenix", phoenix.Lookup, log)
}
