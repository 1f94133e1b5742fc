// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultSpec() DurationSpec {
	return DurationSpec{
		Enabled:  [6]bool{true, true, true, true, true, true},
		Singular: [6]string{" Year", " Month", " Day", " Hour", " Minute", " Second"},
		Plural:   [6]string{" Years", " Months", " Days", " Hours", " Minutes", " Seconds"},
		Empty:    "&c0s",
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name   string
		ms     int64
		mutate func(*DurationSpec)
		want   string
	}{
		{
			name: "full cascade",
			ms:   90061000, // 1d 1h 1m 1s
			want: "1 Day 1 Hour 1 Minute 1 Second",
		},
		{
			name: "zero yields empty label",
			ms:   0,
			want: "&c0s",
		},
		{
			name: "negative yields empty label",
			ms:   -5,
			want: "&c0s",
		},
		{
			name: "sub-second truncates",
			ms:   999,
			want: "&c0s",
		},
		{
			name: "plural labels",
			ms:   2 * millisPerHour,
			want: "2 Hours",
		},
		{
			name: "year and month",
			ms:   millisPerYear + 2*millisPerMonth + 3*millisPerDay,
			want: "1 Year 2 Months 3 Days",
		},
		{
			name: "disabled day folds into hours",
			ms:   millisPerDay + millisPerHour,
			mutate: func(s *DurationSpec) {
				s.Enabled[2] = false
			},
			want: "25 Hours",
		},
		{
			name: "only seconds enabled",
			ms:   millisPerDay,
			mutate: func(s *DurationSpec) {
				s.Enabled = [6]bool{false, false, false, false, false, true}
			},
			want: "86400 Seconds",
		},
		{
			name: "all units disabled yields empty label",
			ms:   millisPerDay,
			mutate: func(s *DurationSpec) {
				s.Enabled = [6]bool{}
			},
			want: "&c0s",
		},
		{
			name: "seconds disabled truncates remainder",
			ms:   millisPerMinute + 30*millisPerSecond,
			mutate: func(s *DurationSpec) {
				s.Enabled[5] = false
			},
			want: "1 Minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := defaultSpec()
			if tt.mutate != nil {
				tt.mutate(&spec)
			}
			assert.Equal(t, tt.want, FormatDuration(tt.ms, spec))
		})
	}
}
