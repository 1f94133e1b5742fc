// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/placeholder"
)

func TestServerHandlerDate(t *testing.T) {
	cfg := testConfig()
	when := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return when }

	h := NewServerHandler(snapshotOf(cfg), format.NewColorizer("1.16.5"), clock, nil)
	player := placeholder.Player{Name: "Steve"}

	t.Run("default locale", func(t *testing.T) {
		out, handled := h.Handle(context.Background(), player, []string{"date"})
		require.True(t, handled)
		assert.Equal(t, "4 Mart 2026, Çar", out)
	})

	t.Run("named locale", func(t *testing.T) {
		out, handled := h.Handle(context.Background(), player, []string{"date", "en-us"})
		require.True(t, handled)
		assert.Equal(t, "4 March 2026, Wed", out)
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		out, handled := h.Handle(context.Background(), player, []string{"date", "klingon"})
		require.True(t, handled)
		assert.Equal(t, "4 Mart 2026, Çar", out)
	})

	t.Run("unroutable forms", func(t *testing.T) {
		for _, args := range [][]string{
			{},
			{"time"},
			{"date", "en-us", "extra"},
		} {
			_, handled := h.Handle(context.Background(), player, args)
			assert.False(t, handled, "args %v", args)
		}
	})
}
