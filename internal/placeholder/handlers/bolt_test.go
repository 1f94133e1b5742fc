// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shedux/extraplaceholders/internal/bolt"
	"github.com/shedux/extraplaceholders/internal/config"
	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/placeholder"
	"github.com/shedux/extraplaceholders/internal/tracker"
)

// fakeMatch is an in-memory bolt.Match.
type fakeMatch struct {
	state        bolt.State
	kind         bolt.Kind
	kit          *bolt.Kit
	roster       []uuid.UUID
	participants map[uuid.UUID]*bolt.Participant
	teams        map[uuid.UUID]*bolt.Team
}

func (m *fakeMatch) State() bolt.State   { return m.state }
func (m *fakeMatch) Kind() bolt.Kind     { return m.kind }
func (m *fakeMatch) Kit() *bolt.Kit      { return m.kit }
func (m *fakeMatch) Roster() []uuid.UUID { return m.roster }
func (m *fakeMatch) Participant(id uuid.UUID) *bolt.Participant {
	return m.participants[id]
}
func (m *fakeMatch) Team(id uuid.UUID) *bolt.Team { return m.teams[id] }

// fakeBoltAPI implements bolt.API and both of its services.
type fakeBoltAPI struct {
	match    *fakeMatch
	matchErr error
	kits     map[string]*bolt.Kit
	kitErr   error

	matchCalls int
	kitCalls   int
}

func (f *fakeBoltAPI) Matches() bolt.MatchService { return f }
func (f *fakeBoltAPI) Kits() bolt.KitService      { return f }

func (f *fakeBoltAPI) ByPlayer(uuid.UUID) (bolt.Match, error) {
	f.matchCalls++
	if f.matchErr != nil {
		return nil, f.matchErr
	}
	if f.match == nil {
		return nil, nil
	}
	return f.match, nil
}

func (f *fakeBoltAPI) ByName(name string) (*bolt.Kit, error) {
	f.kitCalls++
	if f.kitErr != nil {
		return nil, f.kitErr
	}
	return f.kits[name], nil
}

// testConfig uses plain-text messages so expected outputs stay free
// of color escapes.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Messages.BoltNotAvailable = "bolt-unavailable"
	cfg.Messages.PhoenixNotAvailable = "phoenix-unavailable"
	cfg.Messages.Unavailable = "unavailable"
	cfg.Messages.KitOutOfMatch = "out-of-match"
	cfg.Messages.KitLoading = "loading"
	cfg.Messages.KitInvalid = "invalid-kit"
	cfg.Messages.KitDefault = "-"
	cfg.Messages.InvalidLocale = "invalid-locale"
	cfg.Phoenix.DefaultStatus = "default"
	cfg.Phoenix.PermanentRank = "permanent"
	cfg.Phoenix.NoTimeRemaining = "0s"
	return cfg
}

func snapshotOf(cfg config.Config) func() *config.Config {
	return func() *config.Config { return &cfg }
}

func availableBolt(api bolt.API) *tracker.Bolt {
	return tracker.Track("bolt", func() (bolt.API, error) { return api, nil }, nil)
}

func absentBolt() *tracker.Bolt {
	return tracker.Track("bolt", func() (bolt.API, error) {
		return nil, errors.New("not installed")
	}, nil)
}

func newBoltHandler(dep *tracker.Bolt, cfg config.Config) *BoltHandler {
	return NewBoltHandler(dep, snapshotOf(cfg), format.NewColorizer("1.16.5"), KitRules(), nil)
}

func onlinePlayer() placeholder.Player {
	return placeholder.Player{ID: uuid.New(), Name: "Steve", Connected: true}
}

func TestBoltHandlerUnavailable(t *testing.T) {
	// The fake is reachable through the package registration points in
	// production; here the locator fails, so no subsystem call may
	// happen at all.
	api := &fakeBoltAPI{}
	h := newBoltHandler(absentBolt(), testConfig())
	player := onlinePlayer()

	for _, params := range [][]string{
		{"kit"},
		{"kit", "rule", "sumo"},
		{"kit", "Gapple", "rule", "sumo"},
		{"match", "winner"},
		{"match", "loser"},
	} {
		out, handled := h.Handle(context.Background(), player, params)
		assert.True(t, handled)
		assert.Equal(t, "bolt-unavailable", out)
	}
	assert.Zero(t, api.matchCalls)
	assert.Zero(t, api.kitCalls)
}

func TestBoltHandlerKitName(t *testing.T) {
	player := onlinePlayer()

	tests := []struct {
		name  string
		match *fakeMatch
		want  string
	}{
		{"out of match", nil, "out-of-match"},
		{"kit loading", &fakeMatch{}, "loading"},
		{"unnamed kit", &fakeMatch{kit: &bolt.Kit{}}, "-"},
		{"named kit", &fakeMatch{kit: &bolt.Kit{Name: "Gapple"}}, "Gapple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBoltHandler(availableBolt(&fakeBoltAPI{match: tt.match}), testConfig())
			out, handled := h.Handle(context.Background(), player, []string{"kit"})
			require.True(t, handled)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBoltHandlerKitRules(t *testing.T) {
	player := onlinePlayer()
	kit := &bolt.Kit{Name: "Sumo", Sumo: true}

	t.Run("current kit rule", func(t *testing.T) {
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: &fakeMatch{kit: kit}}), testConfig())

		out, handled := h.Handle(context.Background(), player, []string{"kit", "rule", "sumo"})
		require.True(t, handled)
		assert.Equal(t, "true", out)

		out, _ = h.Handle(context.Background(), player, []string{"kit", "rule", "build"})
		assert.Equal(t, "false", out)
	})

	t.Run("unknown rule name reads false", func(t *testing.T) {
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: &fakeMatch{kit: kit}}), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"kit", "rule", "levitation"})
		require.True(t, handled)
		assert.Equal(t, "false", out)
	})

	t.Run("rule without a match reads out of match", func(t *testing.T) {
		h := newBoltHandler(availableBolt(&fakeBoltAPI{}), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"kit", "rule", "sumo"})
		require.True(t, handled)
		assert.Equal(t, "out-of-match", out)
	})

	t.Run("rule before kit assignment reads loading", func(t *testing.T) {
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: &fakeMatch{}}), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"kit", "rule", "sumo"})
		require.True(t, handled)
		assert.Equal(t, "loading", out)
	})

	t.Run("named kit rule", func(t *testing.T) {
		api := &fakeBoltAPI{
			match: &fakeMatch{kit: kit},
			kits:  map[string]*bolt.Kit{"NoDebuff": {Name: "NoDebuff", Build: true}},
		}
		h := newBoltHandler(availableBolt(api), testConfig())

		out, handled := h.Handle(context.Background(), player, []string{"kit", "NoDebuff", "rule", "build"})
		require.True(t, handled)
		assert.Equal(t, "true", out)

		// Kit names are literal and case-sensitive.
		out, _ = h.Handle(context.Background(), player, []string{"kit", "nodebuff", "rule", "build"})
		assert.Equal(t, "invalid-kit", out)
	})

	t.Run("named kit rule without a match reads out of match", func(t *testing.T) {
		api := &fakeBoltAPI{kits: map[string]*bolt.Kit{"Sumo": kit}}
		h := newBoltHandler(availableBolt(api), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"kit", "Sumo", "rule", "sumo"})
		require.True(t, handled)
		assert.Equal(t, "out-of-match", out)
		assert.Zero(t, api.kitCalls)
	})

	t.Run("failing kit lookup reads invalid", func(t *testing.T) {
		api := &fakeBoltAPI{match: &fakeMatch{kit: kit}, kitErr: errors.New("backend down")}
		h := newBoltHandler(availableBolt(api), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"kit", "Sumo", "rule", "sumo"})
		require.True(t, handled)
		assert.Equal(t, "invalid-kit", out)
	})
}

func TestBoltHandlerKitOfflineViewer(t *testing.T) {
	// A disconnected viewer has no match to anchor kit context to, so
	// every kit form reads the kit-default message without touching the
	// subsystem.
	api := &fakeBoltAPI{match: &fakeMatch{kit: &bolt.Kit{Name: "Sumo", Sumo: true}}}
	h := newBoltHandler(availableBolt(api), testConfig())
	offline := placeholder.Player{ID: uuid.New(), Name: "Steve"}

	for _, args := range [][]string{
		{"kit"},
		{"kit", "rule", "sumo"},
		{"kit", "Sumo", "rule", "sumo"},
	} {
		out, handled := h.Handle(context.Background(), offline, args)
		require.True(t, handled, "args %v", args)
		assert.Equal(t, "-", out, "args %v", args)
	}
	assert.Zero(t, api.matchCalls)
	assert.Zero(t, api.kitCalls)
}

func soloEndingMatch(ids []uuid.UUID, ps map[uuid.UUID]*bolt.Participant) *fakeMatch {
	return &fakeMatch{
		state:        bolt.StateEnding,
		kind:         bolt.KindSolo,
		roster:       ids,
		participants: ps,
	}
}

func TestBoltHandlerMatchResults(t *testing.T) {
	player := onlinePlayer()

	t.Run("requires terminal state", func(t *testing.T) {
		m := &fakeMatch{state: bolt.StatePlaying, kind: bolt.KindSolo}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"match", "winner"})
		require.True(t, handled)
		assert.Equal(t, "unavailable", out)
	})

	t.Run("requires a match", func(t *testing.T) {
		h := newBoltHandler(availableBolt(&fakeBoltAPI{}), testConfig())
		out, handled := h.Handle(context.Background(), player, []string{"match", "loser"})
		require.True(t, handled)
		assert.Equal(t, "unavailable", out)
	})

	t.Run("requires an online viewer", func(t *testing.T) {
		api := &fakeBoltAPI{match: soloEndingMatch(nil, nil)}
		h := newBoltHandler(availableBolt(api), testConfig())
		offline := placeholder.Player{ID: uuid.New(), Name: "Steve"}
		out, handled := h.Handle(context.Background(), offline, []string{"match", "winner"})
		require.True(t, handled)
		assert.Equal(t, "unavailable", out)
		assert.Zero(t, api.matchCalls)
	})

	t.Run("solo falls back to max points in roster order", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		m := soloEndingMatch([]uuid.UUID{a, b, c}, map[uuid.UUID]*bolt.Participant{
			a: {ID: a, Name: "A", Online: true, Points: 5},
			b: {ID: b, Name: "B", Online: true, Points: 9},
			c: {ID: c, Name: "C", Online: true, Points: 3},
		})
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "B", out)

		// Loser is the first non-winner in roster order.
		out, _ = h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "A", out)
	})

	t.Run("solo prefers the first alive participant", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		m := soloEndingMatch([]uuid.UUID{a, b}, map[uuid.UUID]*bolt.Participant{
			a: {ID: a, Name: "A", Online: true, Points: 1},
			b: {ID: b, Name: "B", Online: true, Alive: true, Points: 0},
		})
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "B", out)
	})

	t.Run("team tie favors the second team", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		t1 := &bolt.Team{ID: "t1", Members: []string{"A1", "A2"}, AliveCount: 1, Points: 10}
		t2 := &bolt.Team{ID: "t2", Members: []string{"B1", "B2"}, AliveCount: 1, Points: 10}
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindTeam,
			roster: []uuid.UUID{a, b},
			teams:  map[uuid.UUID]*bolt.Team{a: t1, b: t2},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "B1, B2", out)

		out, _ = h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "A1, A2", out)
	})

	t.Run("team with more alive members wins", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		t1 := &bolt.Team{ID: "t1", Members: []string{"A"}, AliveCount: 2, Points: 0}
		t2 := &bolt.Team{ID: "t2", Members: []string{"B"}, AliveCount: 1, Points: 99}
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindTeam,
			roster: []uuid.UUID{a, b},
			teams:  map[uuid.UUID]*bolt.Team{a: t1, b: t2},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "A", out)
	})

	t.Run("more than two teams keeps roster order", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		t1 := &bolt.Team{ID: "t1", Members: []string{"A"}, AliveCount: 0, Points: 0}
		t2 := &bolt.Team{ID: "t2", Members: []string{"B"}, AliveCount: 3, Points: 50}
		t3 := &bolt.Team{ID: "t3", Members: []string{"C"}, AliveCount: 2, Points: 9}
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindTeam,
			roster: []uuid.UUID{a, b, c},
			teams:  map[uuid.UUID]*bolt.Team{a: t1, b: t2, c: t3},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "A", out)

		out, _ = h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "B", out)
	})

	t.Run("single resolvable team wins with no loser", func(t *testing.T) {
		a := uuid.New()
		t1 := &bolt.Team{ID: "t1", Members: []string{"A"}, AliveCount: 1}
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindTeam,
			roster: []uuid.UUID{a},
			teams:  map[uuid.UUID]*bolt.Team{a: t1},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "A", out)

		out, _ = h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "unavailable", out)
	})

	t.Run("ffa losers join every non-winner", func(t *testing.T) {
		w, x, y := uuid.New(), uuid.New(), uuid.New()
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindFFA,
			roster: []uuid.UUID{w, x, y},
			participants: map[uuid.UUID]*bolt.Participant{
				w: {ID: w, Name: "W", Online: true, Alive: true, Points: 7},
				x: {ID: x, Name: "X", Online: true, Points: 4},
				y: {ID: y, Name: "Y", Online: true, Points: 2},
			},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "W", out)

		out, _ = h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "X, Y", out)
	})

	t.Run("ffa empty loser set is unavailable", func(t *testing.T) {
		w := uuid.New()
		m := &fakeMatch{
			state:  bolt.StateEnding,
			kind:   bolt.KindFFA,
			roster: []uuid.UUID{w},
			participants: map[uuid.UUID]*bolt.Participant{
				w: {ID: w, Name: "W", Online: true, Alive: true},
			},
		}
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "loser"})
		assert.Equal(t, "unavailable", out)
	})

	t.Run("winner without a live identity is unavailable", func(t *testing.T) {
		a := uuid.New()
		m := soloEndingMatch([]uuid.UUID{a}, map[uuid.UUID]*bolt.Participant{
			a: {ID: a, Points: 5},
		})
		h := newBoltHandler(availableBolt(&fakeBoltAPI{match: m}), testConfig())

		out, _ := h.Handle(context.Background(), player, []string{"match", "winner"})
		assert.Equal(t, "unavailable", out)
	})
}

func TestBoltHandlerUnroutable(t *testing.T) {
	h := newBoltHandler(availableBolt(&fakeBoltAPI{}), testConfig())
	player := onlinePlayer()

	for _, args := range [][]string{
		{},
		{"arena"},
		{"match"},
		{"match", "draw"},
		{"kit", "rule"},
		{"kit", "Sumo", "norule", "x"},
	} {
		_, handled := h.Handle(context.Background(), player, args)
		assert.False(t, handled, "args %v", args)
	}
}

func TestBoltHandlerFailingMatchLookup(t *testing.T) {
	api := &fakeBoltAPI{matchErr: errors.New("backend down")}
	h := newBoltHandler(availableBolt(api), testConfig())

	out, handled := h.Handle(context.Background(), onlinePlayer(), []string{"kit"})
	require.True(t, handled)
	assert.Equal(t, "out-of-match", out)
}
