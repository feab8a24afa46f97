// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
	"github.com/DJBartoli/YouTube-Science-Project/internal/page"
)

// Render-specific flag values.
var (
	renderOutput string
	renderParams map[string]string
)

// renderCmd writes one page as a standalone HTML file.
var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render a dashboard page to a static HTML file",
	Long: `Render one page with every chart computed into the document. The controls
are disabled, so the file works without a running server.

Selections default to the dashboard defaults; override them with --param:
  ytdash render trends --param country=FR --param date=2024-03-20 -o trends.html
  ytdash render keyword-analysis --param topic=gaming --param year=2016`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().AddFlagSet(appFlagSet(&app))
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
	renderCmd.Flags().StringToStringVar(&renderParams, "param", nil, "selector value as name=value (repeatable)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}

	st, err := renderState(renderParams)
	if err != nil {
		return err
	}

	env, cleanup, err := buildEnv(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	categories, _ := env.Store.Categories()
	pages := page.All(page.Options{Categories: categories, Now: env.Now()})
	p, ok := page.FindSlug(pages, args[0])
	if !ok {
		return exitError(ExitInvalidArgs, "ytdash: unknown page %q (available: %s)",
			args[0], strings.Join(page.Slugs(pages), ", "))
	}

	view := page.NewBuilder(env, pages).Build(cmd.Context(), p, st, true)

	var w io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := cmdFS.Create(renderOutput)
		if err != nil {
			return exitError(ExitInvalidArgs, "ytdash: cannot create output file: %v", err)
		}
		defer f.Close() //nolint:errcheck // best-effort close
		w = f
	}
	if err := page.Render(w, view); err != nil {
		return fmt.Errorf("render %s: %w", p.Slug, err)
	}

	if renderOutput != "" {
		if abs, err := cmdFS.Abs(renderOutput); err == nil {
			slog.Info("wrote page", "page", p.Slug, "path", abs)
		}
	}

	for _, s := range view.Sections {
		for _, c := range s.Charts {
			if c.Error != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: chart %s: %s\n", c.ID, c.Error)
			}
		}
	}
	return nil
}

// renderState applies the --param overrides to the default selection.
func renderState(params map[string]string) (filter.State, error) {
	known := filter.Default().Values()
	q := url.Values{}
	for name, value := range params {
		if _, ok := known[name]; !ok {
			return filter.State{}, exitError(ExitInvalidArgs, "ytdash: unknown --param %q", name)
		}
		q.Set(name, value)
	}
	return filter.Default().Apply(q), nil
}
