// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package phoenix declares the surface of the optional Phoenix
// staff/profile framework. Like bolt, it is a black box registered by
// the host; profiles and grants are per-request read-only views.
package phoenix

import (
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// PermanentMillis is the sentinel Phoenix uses for grants that never
// expire.
const PermanentMillis int64 = -1

// API is the root handle to a running Phoenix instance.
type API interface {
	// Profile returns the profile stored for an identity, or an
	// error when Phoenix has no record of it.
	Profile(id uuid.UUID) (*Profile, error)

	// InModMode reports whether a connected identity is currently in
	// staff moderation mode.
	InModMode(id uuid.UUID) (bool, error)
}

// Profile is a read-only view of one Phoenix profile.
type Profile struct {
	ID       uuid.UUID
	Vanished bool

	// BestGrant is the highest-priority active rank grant, or nil
	// when the profile only holds the default rank.
	BestGrant *Grant
}

// Grant is a time-bounded or permanent rank assignment.
type Grant struct {
	Rank string

	// RemainingMillis is the time left on the grant in milliseconds,
	// or PermanentMillis for grants that never expire.
	RemainingMillis int64
}

var registered API

// Register installs the live Phoenix handle.
func Register(api API) {
	registered = api
}

// Lookup returns the registered Phoenix handle.
func Lookup() (API, error) {
	if registered == nil {
		return nil, oops.Code("DEP_ABSENT").
			With("dependency", "phoenix").
			Errorf("phoenix is not installed on this server")
	}
	return registered, nil
}
