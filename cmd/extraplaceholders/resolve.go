// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shedux/extraplaceholders/pkg/expansionsdk"
)

// NewResolveCmd creates the resolve subcommand.
func NewResolveCmd() *cobra.Command {
	var (
		playerName string
		playerID   string
		offline    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <params>...",
		Short: "Resolve placeholder parameters once and print the result",
		Long: `Resolve runs one placeholder resolution per argument against a
locally assembled expansion, without a host. Useful for checking
config messages and routing:

  extraplaceholders resolve server_date server_date_en-us bolt_kit`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := setupLogger()

			svc, err := newService(cmd, log, nil)
			if err != nil {
				return err
			}

			id := uuid.New()
			if playerID != "" {
				id, err = uuid.Parse(playerID)
				if err != nil {
					return err
				}
			}
			player := expansionsdk.PlayerRef{
				ID:        [16]byte(id),
				Name:      playerName,
				Connected: !offline,
			}

			for _, params := range args {
				out, handled := svc.Resolve(player, params)
				if !handled {
					cmd.Printf("%%%s_%s%%\t(unhandled)\n", svc.Info().Identifier, params)
					continue
				}
				cmd.Printf("%%%s_%s%%\t%q\n", svc.Info().Identifier, params, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player-name", "Steve", "viewer display name")
	cmd.Flags().StringVar(&playerID, "player-id", "", "viewer UUID (random if empty)")
	cmd.Flags().BoolVar(&offline, "offline", false, "resolve for a disconnected viewer")
	return cmd
}
