// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/shedux/extraplaceholders/internal/expansion"
	"github.com/shedux/extraplaceholders/internal/logging"
)

// Global flags available to all subcommands.
var (
	configFile      string
	platformVersion string
	logFormat       string
	verbose         bool
)

// NewRootCmd creates the root command for the expansion CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extraplaceholders",
		Short: "Placeholder expansion for Bolt, Phoenix, and server data",
		Long: `ExtraPlaceholders resolves placeholder tokens like
%extraplaceholders_bolt_match_winner% against the optional Bolt and
Phoenix frameworks, plus locale-aware dates.`,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path")
	pf.StringVar(&platformVersion, "platform-version", "", "host platform version string (gates hex color support)")
	pf.StringVar(&logFormat, "log-format", "json", "log format: json or text")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Individual config key overrides.
	pf.String("default-locale", "", "override the default date locale token")
	pf.String("date-pattern", "", "override the date pattern")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewReloadCmd())

	return cmd
}

// setupLogger builds the process logger from the global flags.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.SetDefault("extraplaceholders", version, logging.Options{
		Format: logFormat,
		Level:  level,
	})
}

// newService assembles the expansion from the global flags.
func newService(cmd *cobra.Command, log *slog.Logger, clock func() time.Time) (*expansion.Service, error) {
	return expansion.New(expansion.Options{
		ConfigPath:      configFile,
		Flags:           cmd.Flags(),
		PlatformVersion: platformVersion,
		Version:         version,
		Clock:           clock,
		Log:             log,
	})
}
