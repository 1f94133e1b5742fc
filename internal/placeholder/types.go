// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package placeholder routes placeholder parameters to namespace
// handlers. A request like "bolt_match_winner" splits on underscores;
// the first token picks the handler, the rest are its arguments.
package placeholder

import (
	"context"

	"github.com/google/uuid"
)

// Player is the viewer a placeholder resolves against. Placeholders
// may be requested for players who are not currently connected, so
// handlers must not assume an online session.
type Player struct {
	ID        uuid.UUID
	Name      string
	Connected bool
}

// Online reports whether the player has an active session.
func (p Player) Online() bool {
	return p.Connected
}

// Handler resolves placeholders within a single namespace.
type Handler interface {
	// Namespace is the first parameter token this handler owns,
	// e.g. "bolt". Matching is case-insensitive.
	Namespace() string

	// Handle resolves the remaining tokens for the player. The second
	// return reports whether the handler recognized the request; false
	// means the placeholder stays unresolved and the caller shows the
	// raw token.
	Handle(ctx context.Context, player Player, args []string) (string, bool)
}
