// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package placeholder

import "github.com/samber/oops"

// Error codes for placeholder routing failures.
const (
	CodeNilHandler   = "NIL_HANDLER"
	CodeNilRegistry  = "NIL_REGISTRY"
	CodeHandlerPanic = "HANDLER_PANIC"
)

// ErrNilHandler is returned when registering a nil handler or one
// with an empty namespace.
func ErrNilHandler() error {
	return oops.Code(CodeNilHandler).Errorf("handler must be non-nil with a non-empty namespace")
}

// ErrNilRegistry is returned when constructing a router without a
// registry.
func ErrNilRegistry() error {
	return oops.Code(CodeNilRegistry).Errorf("registry must not be nil")
}
