// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package placeholder

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("extraplaceholders/placeholder")

// minTokens is the smallest parameter count a handler can act on: the
// namespace plus at least one argument, e.g. "server_date".
const minTokens = 2

// Router tokenizes placeholder parameters and dispatches them to the
// handler owning the namespace token.
type Router struct {
	registry *Registry
	log      *slog.Logger
}

// NewRouter creates a router over the given registry. Returns an
// error if registry is nil; a nil logger falls back to slog.Default.
func NewRouter(registry *Registry, log *slog.Logger) (*Router, error) {
	if registry == nil {
		return nil, ErrNilRegistry()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Router{registry: registry, log: log}, nil
}

// Resolve dispatches raw placeholder parameters (the text between the
// identifier and the closing delimiter, e.g. "bolt_match_winner").
// The second return reports whether any handler produced a value;
// false tells the caller to leave the raw placeholder visible.
//
// A panicking handler is contained here: the request resolves as
// unhandled and the panic is logged, never propagated to the host.
func (r *Router) Resolve(ctx context.Context, player Player, rawParams string) (out string, handled bool) {
	tokens := strings.Split(rawParams, "_")
	if len(tokens) < minTokens || tokens[0] == "" {
		return "", false
	}
	namespace := strings.ToLower(tokens[0])

	ctx, span := tracer.Start(ctx, "placeholder.resolve",
		trace.WithAttributes(
			attribute.String("placeholder.namespace", namespace),
			attribute.String("placeholder.params", rawParams),
		),
	)
	defer span.End()

	h, ok := r.registry.Get(namespace)
	if !ok {
		span.SetStatus(codes.Error, "unknown namespace")
		RecordResolution(namespace, StatusUnknown)
		return "", false
	}

	start := time.Now()
	defer func() {
		RecordResolutionDuration(namespace, time.Since(start))

		if rec := recover(); rec != nil {
			err := oops.Code(CodeHandlerPanic).
				With("namespace", namespace).
				With("params", rawParams).
				Errorf("handler panicked: %v", rec)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			RecordResolution(namespace, StatusPanic)
			r.log.ErrorContext(ctx, "placeholder handler panicked",
				"namespace", namespace,
				"params", rawParams,
				"panic", rec,
			)
			out, handled = "", false
		}
	}()

	out, handled = h.Handle(ctx, player, tokens[1:])
	if handled {
		RecordResolution(namespace, StatusResolved)
	} else {
		RecordResolution(namespace, StatusUnhandled)
	}
	return out, handled
}
