// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/DJBartoli/YouTube-Science-Project/internal/config"
)

// configCmd is the parent command for configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect ytdash configuration",
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after layering the defaults, .ytdash.yaml (or
.ytdash.toml) and the command-line flags. The output is a valid .ytdash.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(app)
		if err != nil {
			return err
		}
		return config.Write(cmd.OutOrStdout(), &cfg)
	},
}

func init() {
	configShowCmd.Flags().AddFlagSet(appFlagSet(&app))
	configShowCmd.Flags().StringVarP(&app.Listen, "listen", "l", "", "address to listen on")
	configCmd.AddCommand(configShowCmd)
}
