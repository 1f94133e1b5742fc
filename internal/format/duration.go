// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package format turns raw facts into display strings: millisecond
// durations under configurable unit cascading, and chat text styled
// with legacy, hex, and gradient color markup.
package format

import (
	"fmt"
	"strings"
)

// Calendar-approximate unit sizes in milliseconds. A year is fixed at
// 365 days and a month at 30 days; the formatter is a display helper,
// not a calendar.
const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
	millisPerDay          = 24 * millisPerHour
	millisPerMonth        = 30 * millisPerDay
	millisPerYear         = 365 * millisPerDay
)

// unitCount is the number of cascading units, years through seconds.
const unitCount = 6

// unitMillis orders the units largest first.
var unitMillis = [unitCount]int64{
	millisPerYear,
	millisPerMonth,
	millisPerDay,
	millisPerHour,
	millisPerMinute,
	millisPerSecond,
}

// DurationSpec configures FormatDuration. Index 0 is years, index 5
// is seconds.
type DurationSpec struct {
	// Enabled marks which units may appear in output. A disabled
	// unit's magnitude cascades into the enabled units below it.
	Enabled [unitCount]bool

	// Singular and Plural are the labels appended after the value;
	// Singular applies exactly when the value is 1.
	Singular [unitCount]string
	Plural   [unitCount]string

	// Empty is returned when no enabled unit has a nonzero value.
	Empty string
}

// FormatDuration renders a millisecond duration under the spec's unit
// flags and labels.
//
// The decomposition is a single largest-enabled-unit-first pass: each
// enabled unit takes its quotient of the remaining duration and the
// remainder carries downward. Disabled units take nothing, so their
// magnitude lands in the enabled units below them; whatever is left
// below the smallest enabled unit is truncated.
func FormatDuration(ms int64, spec DurationSpec) string {
	if ms < 0 {
		return spec.Empty
	}

	remaining := ms
	parts := make([]string, 0, unitCount)

	for u := 0; u < unitCount; u++ {
		if !spec.Enabled[u] {
			continue
		}
		value := remaining / unitMillis[u]
		remaining %= unitMillis[u]
		if value == 0 {
			continue
		}

		label := spec.Plural[u]
		if value == 1 {
			label = spec.Singular[u]
		}
		parts = append(parts, fmt.Sprintf("%d%s", value, label))
	}

	out := strings.TrimSpace(strings.Join(parts, " "))
	if out == "" {
		return spec.Empty
	}
	return out
}
