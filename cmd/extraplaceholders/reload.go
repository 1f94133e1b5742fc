// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewReloadCmd creates the reload subcommand.
func NewReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the configuration and report the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger()

			svc, err := newService(cmd, log, nil)
			if err != nil {
				return err
			}

			elapsed, err := svc.Reload()
			cmd.Println(svc.Colors().Strip(svc.ReloadMessage(elapsed, err)))
			return err
		},
	}
}
