package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config and the global overrides. The output is valid YAML and can be
saved as a starting point for a custom config.

Config files are searched in this order:
  1. --config <path>
  2. ~/.flap/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
