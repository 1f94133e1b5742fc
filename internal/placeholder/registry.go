// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package placeholder

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry manages handler registration and namespace lookup.
// It is thread-safe for concurrent access.
type Registry struct {
	handlers map[string]Handler
	mu       sync.RWMutex
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under its namespace, lowercased. If a
// handler already owns the namespace it is overwritten and a warning
// is logged: last registration wins.
func (r *Registry) Register(h Handler) error {
	if h == nil || strings.TrimSpace(h.Namespace()) == "" {
		return ErrNilHandler()
	}
	ns := strings.ToLower(h.Namespace())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[ns]; ok {
		slog.Warn("namespace conflict: overwriting existing handler",
			"namespace", ns)
	}

	r.handlers[ns] = h
	return nil
}

// Get retrieves the handler owning a namespace. The lookup is
// case-insensitive.
func (r *Registry) Get(namespace string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[strings.ToLower(namespace)]
	return h, ok
}

// Namespaces returns all registered namespaces, sorted.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.handlers))
	for ns := range r.handlers {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}
