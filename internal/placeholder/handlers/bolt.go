// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package handlers implements the per-namespace placeholder handlers:
// bolt (match and kit queries), phoenix (staff status and rank
// expiration), and server (locale-aware dates).
package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shedux/extraplaceholders/internal/bolt"
	"github.com/shedux/extraplaceholders/internal/config"
	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/placeholder"
	"github.com/shedux/extraplaceholders/internal/tracker"
)

// BoltHandler resolves the "bolt" namespace: kit names, kit rule
// flags, and match winner/loser queries.
type BoltHandler struct {
	dep      *tracker.Bolt
	snapshot func() *config.Config
	colors   *format.Colorizer
	rules    map[string]KitRule
	log      *slog.Logger
}

// NewBoltHandler wires the handler to its tracked dependency,
// configuration snapshot source, and the shared kit rule table.
func NewBoltHandler(dep *tracker.Bolt, snapshot func() *config.Config, colors *format.Colorizer, rules map[string]KitRule, log *slog.Logger) *BoltHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BoltHandler{
		dep:      dep,
		snapshot: snapshot,
		colors:   colors,
		rules:    rules,
		log:      log,
	}
}

// Namespace implements placeholder.Handler.
func (h *BoltHandler) Namespace() string { return "bolt" }

// Handle implements placeholder.Handler. Recognized forms:
//
//	kit                       current kit name
//	kit_rule_<rule>           rule flag on the current kit
//	kit_<name>_rule_<rule>    rule flag on a named kit
//	match_winner              winner of the ending match
//	match_loser               loser(s) of the ending match
func (h *BoltHandler) Handle(ctx context.Context, player placeholder.Player, args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	cfg := h.snapshot()

	switch strings.ToLower(args[0]) {
	case "kit":
		return h.handleKit(ctx, player, args, cfg)
	case "match":
		return h.handleMatch(ctx, player, args, cfg)
	}
	return "", false
}

// handleKit covers the three kit forms. Every form is anchored to the
// viewer's current match, the named-kit rule included, so the match
// and current-kit fallbacks apply before any rule is evaluated.
func (h *BoltHandler) handleKit(ctx context.Context, player placeholder.Player, args []string, cfg *config.Config) (string, bool) {
	kitName := len(args) == 1
	currentRule := len(args) == 3 && strings.EqualFold(args[1], "rule")
	namedRule := len(args) == 4 && strings.EqualFold(args[2], "rule")
	if !kitName && !currentRule && !namedRule {
		return "", false
	}

	if !h.dep.APIAvailable() {
		return h.colors.Colorize(cfg.Messages.BoltNotAvailable), true
	}
	// Kit context has no meaning for a disconnected viewer.
	if !player.Online() {
		return h.colors.Colorize(cfg.Messages.KitDefault), true
	}
	m := h.matchByPlayer(ctx, player)
	if m == nil {
		return h.colors.Colorize(cfg.Messages.KitOutOfMatch), true
	}
	kit := m.Kit()
	if kit == nil {
		return h.colors.Colorize(cfg.Messages.KitLoading), true
	}

	switch {
	case currentRule:
		return h.evalRule(kit, args[2]), true
	case namedRule:
		// The kit name argument is a literal: case preserved.
		named := h.kitByName(ctx, args[1])
		if named == nil {
			return h.colors.Colorize(cfg.Messages.KitInvalid), true
		}
		return h.evalRule(named, args[3]), true
	}

	if kit.Name == "" {
		return h.colors.Colorize(cfg.Messages.KitDefault), true
	}
	return kit.Name, true
}

// evalRule produces a boolean literal. Unknown rule names read
// "false", never an error message.
func (h *BoltHandler) evalRule(kit *bolt.Kit, rule string) string {
	fn, ok := h.rules[strings.ToLower(rule)]
	if !ok {
		return "false"
	}
	return strconv.FormatBool(fn(kit))
}

func (h *BoltHandler) handleMatch(ctx context.Context, player placeholder.Player, args []string, cfg *config.Config) (string, bool) {
	if len(args) != 2 {
		return "", false
	}
	sub := strings.ToLower(args[1])
	if sub != "winner" && sub != "loser" {
		return "", false
	}

	if !h.dep.APIAvailable() {
		return h.colors.Colorize(cfg.Messages.BoltNotAvailable), true
	}

	unavailable := h.colors.Colorize(cfg.Messages.Unavailable)

	// Results only exist for the viewer's own match, once it has
	// reached its terminal state.
	if !player.Online() {
		return unavailable, true
	}
	m := h.matchByPlayer(ctx, player)
	if m == nil || m.State() != bolt.StateEnding {
		return unavailable, true
	}

	if sub == "winner" {
		return h.matchWinner(m, unavailable), true
	}
	return h.matchLoser(m, unavailable), true
}

func (h *BoltHandler) matchWinner(m bolt.Match, unavailable string) string {
	switch m.Kind() {
	case bolt.KindTeam:
		winner, _ := teamPair(m)
		return teamName(winner, unavailable)
	case bolt.KindFFA:
		return participantName(ffaWinner(m), unavailable)
	default:
		return participantName(soloWinner(m), unavailable)
	}
}

func (h *BoltHandler) matchLoser(m bolt.Match, unavailable string) string {
	switch m.Kind() {
	case bolt.KindTeam:
		_, loser := teamPair(m)
		return teamName(loser, unavailable)
	case bolt.KindFFA:
		losers := ffaLosers(m, ffaWinner(m))
		if len(losers) == 0 {
			return unavailable
		}
		return strings.Join(losers, ", ")
	default:
		winner := soloWinner(m)
		return participantName(soloLoser(m, winner), unavailable)
	}
}

// matchByPlayer wraps the match lookup so a failing subsystem call
// reads as "no match" instead of propagating.
func (h *BoltHandler) matchByPlayer(ctx context.Context, player placeholder.Player) bolt.Match {
	if !h.dep.APIAvailable() {
		return nil
	}
	m, err := h.dep.API().Matches().ByPlayer(player.ID)
	if err != nil {
		h.log.DebugContext(ctx, "match lookup failed",
			"player", player.ID.String(), "error", err)
		return nil
	}
	return m
}

// kitByName wraps the kit lookup the same way.
func (h *BoltHandler) kitByName(ctx context.Context, name string) *bolt.Kit {
	if !h.dep.APIAvailable() {
		return nil
	}
	kit, err := h.dep.API().Kits().ByName(name)
	if err != nil {
		h.log.DebugContext(ctx, "kit lookup failed", "kit", name, "error", err)
		return nil
	}
	return kit
}
