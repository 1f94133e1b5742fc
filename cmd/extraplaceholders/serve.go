// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/shedux/extraplaceholders/internal/placeholder"
	"github.com/shedux/extraplaceholders/pkg/expansionsdk"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the expansion to a host placeholder engine",
		Long: `Serve runs the expansion as a go-plugin server. The host launches
this subcommand itself; running it by hand only makes sense for
debugging the handshake.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger()

			svc, err := newService(cmd, log, nil)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				go serveMetrics(metricsAddr, log.With("component", "metrics"))
			}

			log.Info(svc.Colors().Strip(svc.EnabledMessage()),
				"identifier", svc.Info().Identifier,
				"bolt", svc.Bolt().State().String(),
				"phoenix", svc.Phoenix().State().String(),
			)
			expansionsdk.Serve(svc)
			log.Info(svc.Colors().Strip(svc.DisabledMessage()))
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (empty disables)")
	return cmd
}

// serveMetrics exposes the resolution metrics for scraping.
func serveMetrics(addr string, log *slog.Logger) {
	reg := prometheus.NewRegistry()
	placeholder.RegisterMetrics(reg)
	reg.MustRegister(collectors.NewGoCollector())

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("metrics server stopped", "error", err)
	}
}
