// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package expansion

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shedux/extraplaceholders/internal/tracker"
	"github.com/shedux/extraplaceholders/pkg/expansionsdk"
)

func newService(t *testing.T) *Service {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	}
	svc, err := New(Options{
		PlatformVersion: "1.21.4",
		Version:         "2.0.0",
		Clock:           clock,
	})
	require.NoError(t, err)
	return svc
}

func TestServiceInfo(t *testing.T) {
	svc := newService(t)

	info := svc.Info()
	assert.Equal(t, "extraplaceholders", info.Identifier)
	assert.Equal(t, "shedux", info.Author)
	assert.Equal(t, "2.0.0", info.Version)
	assert.True(t, info.Persist)
}

func TestServiceResolve(t *testing.T) {
	svc := newService(t)
	player := expansionsdk.PlayerRef{Name: "Steve", Connected: true}

	t.Run("date resolves through the default locale", func(t *testing.T) {
		out, handled := svc.Resolve(player, "server_date")
		require.True(t, handled)
		assert.Equal(t, "4 Mart 2026, Çar", out)
	})

	t.Run("absent bolt short-circuits to the unavailable message", func(t *testing.T) {
		require.False(t, svc.Bolt().Present())
		out, handled := svc.Resolve(player, "bolt_kit")
		require.True(t, handled)
		assert.Equal(t, "§cBolt API is not available", out)
	})

	t.Run("unknown namespace stays unresolved", func(t *testing.T) {
		out, handled := svc.Resolve(player, "vault_balance")
		assert.False(t, handled)
		assert.Empty(t, out)
	})

	t.Run("single token stays unresolved", func(t *testing.T) {
		_, handled := svc.Resolve(player, "bolt")
		assert.False(t, handled)
	})
}

func TestServiceMessages(t *testing.T) {
	svc := newService(t)
	strip := svc.Colors().Strip

	t.Run("info lines carry identity and dependency status", func(t *testing.T) {
		lines := svc.InfoLines()
		require.Len(t, lines, 5)
		assert.Contains(t, strip(lines[0]), "ExtraPlaceholders")
		assert.Equal(t, "Version: 2.0.0", strip(lines[1]))
		assert.Equal(t, "Author: shedux", strip(lines[2]))
		assert.Equal(t, "Bolt: Disabled", strip(lines[3]))
		assert.Equal(t, "Phoenix: Disabled", strip(lines[4]))
	})

	t.Run("reload feedback carries elapsed milliseconds", func(t *testing.T) {
		msg := svc.ReloadMessage(1500*time.Millisecond, nil)
		assert.Equal(t, "Configuration successfully reloaded in 1500ms!", strip(msg))

		msg = svc.ReloadMessage(0, errors.New("broken"))
		assert.Equal(t, "An error occurred while reloading the configuration!", strip(msg))
	})

	t.Run("lifecycle announcements", func(t *testing.T) {
		assert.Equal(t, "Plugin successfully enabled! v2.0.0", strip(svc.EnabledMessage()))
		assert.Equal(t, "Plugin disabled.", strip(svc.DisabledMessage()))
	})
}

func TestServiceReload(t *testing.T) {
	svc := newService(t)

	elapsed, err := svc.Reload()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))

	// Trackers survive reloads untouched.
	assert.Equal(t, tracker.StateAbsent, svc.Bolt().State())
	assert.Equal(t, tracker.StateAbsent, svc.Phoenix().State())
}
