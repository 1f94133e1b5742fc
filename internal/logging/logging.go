// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package logging provides structured logging with OpenTelemetry trace
// context. Expansion processes must log to stderr: stdout is reserved
// for the go-plugin handshake.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// Options configures Setup.
type Options struct {
	// Format is "json" or "text"; empty defaults to "json".
	Format string

	// Level defaults to slog.LevelInfo; resolution paths log at Debug.
	Level slog.Leveler

	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// spanHandler decorates a slog.Handler with the expansion identity and
// the active span's trace context.
type spanHandler struct {
	inner   slog.Handler
	service string
	version string
}

// Handle adds the service identity and trace context to the record.
func (h *spanHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("service", h.service),
		slog.String("version", h.version),
	)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return h.inner.Handle(ctx, r)
}

func (h *spanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *spanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &spanHandler{inner: h.inner.WithAttrs(attrs), service: h.service, version: h.version}
}

func (h *spanHandler) WithGroup(name string) slog.Handler {
	return &spanHandler{inner: h.inner.WithGroup(name), service: h.service, version: h.version}
}

// Setup creates a configured slog.Logger for the expansion process.
func Setup(service, version string, opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	ho := &slog.HandlerOptions{Level: level}
	var base slog.Handler
	if opts.Format == "text" {
		base = slog.NewTextHandler(w, ho)
	} else {
		base = slog.NewJSONHandler(w, ho)
	}

	return slog.New(&spanHandler{inner: base, service: service, version: version})
}

// SetDefault installs a configured logger as the process default.
func SetDefault(service, version string, opts Options) *slog.Logger {
	logger := Setup(service, version, opts)
	slog.SetDefault(logger)
	return logger
}
