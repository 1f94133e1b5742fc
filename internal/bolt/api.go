// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package bolt declares the surface of the optional Bolt match/kit
// framework that this expansion consumes. Bolt is a black box: the
// host registers a live implementation at startup, and every value
// obtained through it is an ephemeral read-only view valid for a
// single placeholder resolution.
package bolt

import (
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// API is the root handle to a running Bolt instance.
type API interface {
	Matches() MatchService
	Kits() KitService
}

// MatchService looks up live matches.
type MatchService interface {
	// ByPlayer returns the match the player is currently part of.
	ByPlayer(id uuid.UUID) (Match, error)
}

// KitService looks up kit definitions.
type KitService interface {
	// ByName returns the kit registered under the given name,
	// matched verbatim (kit names are case-sensitive in Bolt).
	ByName(name string) (*Kit, error)
}

// State is the lifecycle state of a match.
type State int

// Match lifecycle states.
const (
	StateStarting State = iota
	StatePlaying
	StateEnding
)

// Kind distinguishes the three match formats.
type Kind int

// Match formats. Exactly one applies to any match.
const (
	KindSolo Kind = iota
	KindTeam
	KindFFA
)

// Match is a read-only view of one running match.
type Match interface {
	State() State
	Kind() Kind

	// Kit returns the kit the match is played with, or nil while the
	// kit is still being assigned.
	Kit() *Kit

	// Roster returns the identities registered in the match, in
	// Bolt's enumeration order. The order is stable for the lifetime
	// of the match and is load-bearing for tie-breaking.
	Roster() []uuid.UUID

	// Participant returns the per-match view of one identity, or nil
	// if the identity is not part of this match.
	Participant(id uuid.UUID) *Participant

	// Team returns the team an identity belongs to, or nil for
	// non-team matches and unknown identities.
	Team(id uuid.UUID) *Team
}

// Participant is a read-only view of one match participant.
type Participant struct {
	ID uuid.UUID

	// Name is the display name of the attached live identity.
	// Meaningless when Online is false.
	Name string

	// Online reports whether a live identity is attached. A
	// participant can outlive its connection (disconnect mid-match).
	Online bool

	Alive  bool
	Points int
}

// Team is a read-only view of one match team.
type Team struct {
	// ID identifies the team within its match. Two Team views with
	// equal IDs describe the same team.
	ID string

	// Members holds the display names of the team's connected
	// members, in roster order.
	Members []string

	AliveCount int
	Points     int
}

// Kit is a read-only snapshot of a kit definition and its rule flags.
type Kit struct {
	Name string

	Enabled           bool
	Ranked            bool
	Build             bool
	ShowHP            bool
	Spleef            bool
	BattleRush        bool
	FireballFight     bool
	PearlFight        bool
	Bridges           bool
	PearlDamage       bool
	NoDrop            bool
	NoRegen           bool
	NoFall            bool
	NoHunger          bool
	BlockRemoval      bool
	RespawnMode       bool
	LegacyCombat      bool
	BuildHeightDamage bool
	TopFight          bool
	BedFight          bool
	StickFight        bool
	StickSpawn        bool
	PartyFFA          bool
	PartySplit        bool
	VoidSpawn         bool
	Boxing            bool
	Combo             bool
	Sumo              bool
	LiquidKill        bool
	MlgRush           bool
	CrystalPvP        bool
	CartPvP           bool
	TntSumo           bool
	WindChargeMode    bool
	Oitq              bool
	PreSplash         bool
	BreakMap          bool
	PearlCooldown     bool
	Editable          bool
	FFA               bool
	Portal            bool
}

// registered is the API handle installed by the host, if any.
var registered API

// Register installs the live Bolt handle. The host calls this before
// the expansion's trackers are constructed; calling it later has no
// effect on already-constructed trackers.
func Register(api API) {
	registered = api
}

// Lookup returns the registered Bolt handle.
func Lookup() (API, error) {
	if registered == nil {
		return nil, oops.Code("DEP_ABSENT").
			With("dependency", "bolt").
			Errorf("bolt is not installed on this server")
	}
	return registered, nil
}
