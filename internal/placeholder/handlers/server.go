// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shedux/extraplaceholders/internal/config"
	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/locale"
	"github.com/shedux/extraplaceholders/internal/placeholder"
)

// ServerHandler resolves the "server" namespace: the current date in
// a requested or default locale.
type ServerHandler struct {
	snapshot func() *config.Config
	colors   *format.Colorizer
	now      func() time.Time
	log      *slog.Logger
}

// NewServerHandler wires the handler to its configuration snapshot
// source. A nil clock uses time.Now.
func NewServerHandler(snapshot func() *config.Config, colors *format.Colorizer, now func() time.Time, log *slog.Logger) *ServerHandler {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &ServerHandler{
		snapshot: snapshot,
		colors:   colors,
		now:      now,
		log:      log,
	}
}

// Namespace implements placeholder.Handler.
func (h *ServerHandler) Namespace() string { return "server" }

// Handle implements placeholder.Handler. Recognized forms:
//
//	date                  current date, default locale
//	date_<localeToken>    current date, named locale
func (h *ServerHandler) Handle(ctx context.Context, _ placeholder.Player, args []string) (string, bool) {
	if len(args) == 0 || len(args) > 2 || !strings.EqualFold(args[0], "date") {
		return "", false
	}
	cfg := h.snapshot()

	token := cfg.Date.DefaultLocale
	if len(args) == 2 {
		token = args[1]
	}

	return h.formatDate(ctx, token, cfg), true
}

// formatDate renders the current timestamp. Unknown locale tokens
// fall back through the configured default; a failing formatter is
// contained and replaced by the invalid-locale message.
func (h *ServerHandler) formatDate(ctx context.Context, token string, cfg *config.Config) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.WarnContext(ctx, "date formatting failed",
				"locale", token, "pattern", cfg.Date.Pattern, "panic", rec)
			out = h.colors.Colorize(cfg.Messages.InvalidLocale)
		}
	}()
	return locale.Format(h.now(), cfg.Date.Pattern, token, cfg.Date.DefaultLocale)
}
