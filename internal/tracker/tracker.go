// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package tracker wraps the expansion's optional external
// dependencies. A tracker is constructed exactly once at startup and
// is immutable afterwards; an absent dependency is a normal state, not
// an error, and construction never fails.
package tracker

import (
	"log/slog"
)

// State describes the outcome of dependency acquisition.
type State int

// Tracker states. A tracker leaves StateUninitialized during
// construction and never changes state again.
const (
	StateUninitialized State = iota
	StateAbsent
	StateAvailable
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateAvailable:
		return "available"
	default:
		return "uninitialized"
	}
}

// Dependency tracks one optional external subsystem of type T.
type Dependency[T any] struct {
	name  string
	state State
	api   T
}

// Track attempts to acquire a handle for the named dependency. Any
// locator failure, including a nil handle with a nil error, results in
// StateAbsent. The failure is logged once here and never surfaces to
// placeholder resolution.
func Track[T any](name string, locate func() (T, error), log *slog.Logger) *Dependency[T] {
	d := &Dependency[T]{name: name, state: StateAbsent}

	api, err := locate()
	if err != nil {
		if log != nil {
			log.Info("dependency not detected", "dependency", name, "reason", err)
		}
		return d
	}
	if isNil(api) {
		if log != nil {
			log.Info("dependency locator returned no handle", "dependency", name)
		}
		return d
	}

	d.api = api
	d.state = StateAvailable
	if log != nil {
		log.Info("dependency detected", "dependency", name)
	}
	return d
}

// Name returns the dependency name used in logs and the info surface.
func (d *Dependency[T]) Name() string { return d.name }

// State returns the tracker state.
func (d *Dependency[T]) State() State { return d.state }

// Present reports whether the subsystem was detected at startup.
func (d *Dependency[T]) Present() bool { return d.state == StateAvailable }

// APIAvailable is the canonical gate handlers check before touching
// the subsystem. When false, handlers short-circuit to their
// configured "not available" message.
func (d *Dependency[T]) APIAvailable() bool {
	return d.state == StateAvailable && !isNil(d.api)
}

// API returns the acquired handle. The zero value of T is returned
// for absent dependencies; callers must gate on APIAvailable first.
func (d *Dependency[T]) API() T { return d.api }

// isNil reports whether a value of interface or pointer kind holds
// nothing. Plain any comparison is enough here because T is always an
// interface type in this codebase.
func isNil[T any](v T) bool {
	return any(v) == nil
}
