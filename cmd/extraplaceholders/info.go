// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info subcommand.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show expansion identity and dependency status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger()

			svc, err := newService(cmd, log, nil)
			if err != nil {
				return err
			}

			// The configured lines carry chat markup; strip it for the
			// terminal.
			for _, line := range svc.InfoLines() {
				cmd.Println(svc.Colors().Strip(line))
			}
			return nil
		},
	}
}
