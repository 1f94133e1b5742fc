// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package expansion assembles the placeholder expansion: configuration
// store, dependency trackers, namespace handlers, and the router,
// exposed to the host through the expansionsdk contract.
package expansion

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/shedux/extraplaceholders/internal/config"
	"github.com/shedux/extraplaceholders/internal/format"
	"github.com/shedux/extraplaceholders/internal/placeholder"
	"github.com/shedux/extraplaceholders/internal/placeholder/handlers"
	"github.com/shedux/extraplaceholders/internal/tracker"
	"github.com/shedux/extraplaceholders/pkg/expansionsdk"
)

// Identifier is the placeholder prefix the host routes to this
// expansion.
const Identifier = "extraplaceholders"

// Author is reported on the info surface.
const Author = "shedux"

// Options configures New.
type Options struct {
	// ConfigPath is the config.yml location; empty means defaults
	// only.
	ConfigPath string

	// Flags optionally override individual config keys.
	Flags *pflag.FlagSet

	// PlatformVersion is the host platform version string, probed once
	// for hex color support.
	PlatformVersion string

	// Version is the expansion's own version, shown on the info
	// surface.
	Version string

	// Clock overrides the date placeholder's time source; nil uses
	// time.Now.
	Clock func() time.Time

	Log *slog.Logger
}

// Service is the assembled expansion.
type Service struct {
	store   *config.Store
	router  *placeholder.Router
	colors  *format.Colorizer
	bolt    *tracker.Bolt
	phoenix *tracker.Phoenix
	version string
	log     *slog.Logger
}

// New loads configuration, acquires the optional dependencies, and
// registers the namespace handlers. Dependency absence is not an
// error; a broken configuration file is.
func New(opts Options) (*Service, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	store, err := config.Open(opts.ConfigPath, opts.Flags)
	if err != nil {
		return nil, err
	}

	colors := format.NewColorizer(opts.PlatformVersion)
	boltDep := tracker.TrackBolt(log)
	phoenixDep := tracker.TrackPhoenix(log)

	registry := placeholder.NewRegistry()
	for _, h := range []placeholder.Handler{
		handlers.NewBoltHandler(boltDep, store.Snapshot, colors, handlers.KitRules(), log),
		handlers.NewPhoenixHandler(phoenixDep, store.Snapshot, colors, log),
		handlers.NewServerHandler(store.Snapshot, colors, opts.Clock, log),
	} {
		if err := registry.Register(h); err != nil {
			return nil, err
		}
	}

	router, err := placeholder.NewRouter(registry, log)
	if err != nil {
		return nil, err
	}

	return &Service{
		store:   store,
		router:  router,
		colors:  colors,
		bolt:    boltDep,
		phoenix: phoenixDep,
		version: opts.Version,
		log:     log,
	}, nil
}

// Info implements expansionsdk.Expansion. Persist keeps the expansion
// loaded across host placeholder-engine reloads; its state is cheap
// and reconstruction would re-probe the dependency trackers.
func (s *Service) Info() expansionsdk.Info {
	return expansionsdk.Info{
		Identifier: Identifier,
		Author:     Author,
		Version:    s.version,
		Persist:    true,
	}
}

// Resolve implements expansionsdk.Expansion.
func (s *Service) Resolve(player expansionsdk.PlayerRef, params string) (string, bool) {
	p := placeholder.Player{
		ID:        uuid.UUID(player.ID),
		Name:      player.Name,
		Connected: player.Connected,
	}
	return s.router.Resolve(context.Background(), p, params)
}

// Reload implements expansionsdk.Expansion. Message and formatting
// settings reload; tracker state deliberately does not.
func (s *Service) Reload() (time.Duration, error) {
	elapsed, err := s.store.Reload()
	if err != nil {
		s.log.Error("configuration reload failed", "error", err)
		return 0, err
	}
	s.log.Info("configuration reloaded", "elapsed", elapsed)
	return elapsed, nil
}

// ReloadMessage renders the configured feedback line for a reload
// outcome, for the admin surface that triggered it.
func (s *Service) ReloadMessage(elapsed time.Duration, err error) string {
	msgs := s.store.Snapshot().Messages
	if err != nil {
		return s.colors.Colorize(msgs.ReloadError)
	}
	return s.colors.Colorize(strings.ReplaceAll(msgs.ReloadSuccess,
		"<duration>", strconv.FormatInt(elapsed.Milliseconds(), 10)))
}

// InfoLines renders the configured info block: header, identity, and
// one enabled/disabled status line per tracked dependency.
func (s *Service) InfoLines() []string {
	msgs := s.store.Snapshot().Messages
	return s.colors.ColorizeAll([]string{
		msgs.InfoHeader,
		strings.ReplaceAll(msgs.InfoVersion, "<version>", s.version),
		strings.ReplaceAll(msgs.InfoAuthor, "<author>", Author),
		strings.ReplaceAll(msgs.InfoBolt, "<status>", statusLabel(msgs, s.bolt.Present())),
		strings.ReplaceAll(msgs.InfoPhoenix, "<status>", statusLabel(msgs, s.phoenix.Present())),
	})
}

func statusLabel(msgs config.Messages, present bool) string {
	if present {
		return msgs.StatusEnabled
	}
	return msgs.StatusDisabled
}

// EnabledMessage renders the startup announcement.
func (s *Service) EnabledMessage() string {
	msg := s.store.Snapshot().Messages.PluginEnabled
	return s.colors.Colorize(strings.ReplaceAll(msg, "<version>", s.version))
}

// DisabledMessage renders the shutdown announcement.
func (s *Service) DisabledMessage() string {
	return s.colors.Colorize(s.store.Snapshot().Messages.PluginDisabled)
}

// Config returns the active configuration snapshot.
func (s *Service) Config() *config.Config {
	return s.store.Snapshot()
}

// Colors returns the platform-probed colorizer, shared with surfaces
// that need to strip markup for plain output.
func (s *Service) Colors() *format.Colorizer {
	return s.colors
}

// Bolt returns the Bolt dependency tracker for the info surface.
func (s *Service) Bolt() *tracker.Bolt { return s.bolt }

// Phoenix returns the Phoenix dependency tracker for the info surface.
func (s *Service) Phoenix() *tracker.Phoenix { return s.phoenix }
