// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/DJBartoli/YouTube-Science-Project/internal/report"
)

// Validate-specific flag values.
var (
	validateKeywords     bool
	validateProblemsOnly bool
)

// validateCmd checks the data directory.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the data directory for missing or malformed files",
	Long: `Load the data directory the way 'ytdash serve' does and print the status of
every table: ok, MISSING, or INVALID with the parse error.

Exits with status 2 when any table has a problem.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().AddFlagSet(appFlagSet(&app))
	validateCmd.Flags().BoolVar(&validateKeywords, "keywords", false, "also check every keyword cloud image and frequency table")
	validateCmd.Flags().BoolVar(&validateProblemsOnly, "problems-only", false, "list only files with problems")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}
	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	opts := report.InventoryOptions{ProblemsOnly: validateProblemsOnly}
	tables := store.Inventory()
	if err := report.RenderInventory(cmd.OutOrStdout(), "Tables", tables, opts); err != nil {
		return err
	}
	problems := report.Summarize(tables).Problems()

	if validateKeywords {
		keywords := store.KeywordInventory()
		if err := report.RenderInventory(cmd.OutOrStdout(), "Keyword files", keywords, opts); err != nil {
			return err
		}
		problems += report.Summarize(keywords).Problems()
	}

	if problems > 0 {
		return exitError(ExitAssetFailure, "ytdash: %d data file(s) with problems", problems)
	}
	return nil
}
