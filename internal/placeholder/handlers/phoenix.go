// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/shedux/extraplaceholders/internal/config"
	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/phoenix"
	"github.com/shedux/extraplaceholders/internal/placeholder"
	"github.com/shedux/extraplaceholders/internal/tracker"
)

// permanentCeilingMillis is 100 years; any grant with more remaining
// time than this displays as permanent.
const permanentCeilingMillis int64 = 100 * 365 * 24 * 60 * 60 * 1000

// PhoenixHandler resolves the "phoenix" namespace: staff status
// prefixes and rank grant expiration.
type PhoenixHandler struct {
	dep      *tracker.Phoenix
	snapshot func() *config.Config
	colors   *format.Colorizer
	log      *slog.Logger
}

// NewPhoenixHandler wires the handler to its tracked dependency and
// configuration snapshot source.
func NewPhoenixHandler(dep *tracker.Phoenix, snapshot func() *config.Config, colors *format.Colorizer, log *slog.Logger) *PhoenixHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PhoenixHandler{
		dep:      dep,
		snapshot: snapshot,
		colors:   colors,
		log:      log,
	}
}

// Namespace implements placeholder.Handler.
func (h *PhoenixHandler) Namespace() string { return "phoenix" }

// Handle implements placeholder.Handler. Recognized forms:
//
//	status        vanish/mod-mode prefix string
//	expiration    remaining rank grant time or the permanent label
func (h *PhoenixHandler) Handle(ctx context.Context, player placeholder.Player, args []string) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	cfg := h.snapshot()

	switch strings.ToLower(args[0]) {
	case "status":
		return h.status(ctx, player, cfg), true
	case "expiration":
		return h.expiration(ctx, player, cfg), true
	}
	return "", false
}

// status builds the staff prefix string. Status prefixes land on
// constrained surfaces (name tags, tab lists), so output goes through
// Normalize rather than plain colorization.
func (h *PhoenixHandler) status(ctx context.Context, player placeholder.Player, cfg *config.Config) string {
	defaultStatus := h.colors.Normalize(cfg.Phoenix.DefaultStatus)

	if !player.Online() || !h.dep.APIAvailable() {
		return defaultStatus
	}
	api := h.dep.API()

	// No resolvable profile means no status flags at all; mod mode is
	// never consulted without one.
	profile, err := api.Profile(player.ID)
	if err != nil || profile == nil {
		if err != nil {
			h.log.DebugContext(ctx, "profile lookup failed",
				"player", player.ID.String(), "error", err)
		}
		return defaultStatus
	}
	vanished := profile.Vanished

	// Mod mode is queried independently and fails soft.
	modMode, err := api.InModMode(player.ID)
	if err != nil {
		h.log.DebugContext(ctx, "mod mode lookup failed",
			"player", player.ID.String(), "error", err)
		modMode = false
	}

	if !vanished && !modMode {
		return defaultStatus
	}

	var b strings.Builder
	if vanished {
		b.WriteString(cfg.Phoenix.VanishedPrefix)
	}
	if modMode {
		b.WriteString(cfg.Phoenix.ModModePrefix)
	}
	return h.colors.Normalize(b.String())
}

// expiration renders the remaining time on the player's best rank
// grant.
func (h *PhoenixHandler) expiration(ctx context.Context, player placeholder.Player, cfg *config.Config) string {
	if !h.dep.APIAvailable() {
		return h.colors.Colorize(cfg.Messages.PhoenixNotAvailable)
	}
	if !player.Online() {
		return h.colors.Colorize(cfg.Messages.Unavailable)
	}

	profile, err := h.dep.API().Profile(player.ID)
	if err != nil || profile == nil {
		if err != nil {
			h.log.DebugContext(ctx, "profile lookup failed",
				"player", player.ID.String(), "error", err)
		}
		return h.colors.Colorize(cfg.Messages.Unavailable)
	}

	// No grant means the profile holds its rank without a timer.
	if profile.BestGrant == nil {
		return h.colors.Colorize(cfg.Phoenix.PermanentRank)
	}

	remaining := profile.BestGrant.RemainingMillis
	if isPermanent(remaining) {
		return h.colors.Colorize(cfg.Phoenix.PermanentRank)
	}

	return h.colors.Colorize(format.FormatDuration(remaining, durationSpec(cfg)))
}

// isPermanent reports whether a remaining duration collapses to the
// permanent label: the sentinel, the maximum representable value,
// non-positive values, and anything beyond the 100-year ceiling.
func isPermanent(remainingMillis int64) bool {
	switch {
	case remainingMillis == phoenix.PermanentMillis:
		return true
	case remainingMillis == math.MaxInt64:
		return true
	case remainingMillis <= 0:
		return true
	case remainingMillis > permanentCeilingMillis:
		return true
	}
	return false
}

// durationSpec adapts the rank expiry configuration into the
// formatter's unit table.
func durationSpec(cfg *config.Config) format.DurationSpec {
	e := cfg.Phoenix.RankExpiry
	return format.DurationSpec{
		Enabled: [6]bool{
			e.Units.Year, e.Units.Month, e.Units.Day,
			e.Units.Hour, e.Units.Minute, e.Units.Second,
		},
		Singular: [6]string{
			e.Singular.Year, e.Singular.Month, e.Singular.Day,
			e.Singular.Hour, e.Singular.Minute, e.Singular.Second,
		},
		Plural: [6]string{
			e.Plural.Year, e.Plural.Month, e.Plural.Day,
			e.Plural.Hour, e.Plural.Minute, e.Plural.Second,
		},
		Empty: cfg.Phoenix.NoTimeRemaining,
	}
}
