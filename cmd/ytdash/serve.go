// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DJBartoli/YouTube-Science-Project/internal/page"
	"github.com/DJBartoli/YouTube-Science-Project/internal/server"
	"github.com/DJBartoli/YouTube-Science-Project/internal/session"
)

// serveCmd runs the dashboard web server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Load the data directory and serve the dashboard pages and the chart API.

Missing or malformed data files do not stop the server; the charts that need
them show an error instead. Run 'ytdash validate' to list such files.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().AddFlagSet(appFlagSet(&app))
	serveCmd.Flags().StringVarP(&app.Listen, "listen", "l", "", "address to listen on (default :8050)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, cleanup, err := buildEnv(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	categories, err := env.Store.Categories()
	if err != nil {
		slog.Warn("category list unavailable", "error", err)
	}
	pages := page.All(page.Options{Categories: categories, Now: env.Now()})

	slog.Info("starting dashboard", "config", describe(cfg))
	srv := server.New(env, pages, session.NewStore(session.DefaultTTL))
	if err := srv.Run(ctx, cfg.Listen); err != nil {
		return exitError(ExitServerFailure, "ytdash: %v", err)
	}
	return nil
}

