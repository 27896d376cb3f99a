package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldiagram/config"
)

var rootCmd = &cobra.Command{
	Use:   "lvldiagram",
	Short: "lvldiagram is a hierarchical diagram model",
	Long: `lvldiagram builds diagram models (layers, containers, vertices and edges),
keeps edges under the nearest common ancestor of their terminals and exports
read-only snapshots for renderers.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML settings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the settings file")
}

// loadSettings reads --config (defaults when unset) and applies --log-level.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return s, fmt.Errorf("failed to open settings: %w", err)
		}
		defer f.Close()
		if s, err = config.Load(f); err != nil {
			return s, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		s.LogLevel, _ = cmd.Flags().GetString("log-level")
		if err := s.Validate(); err != nil {
			return s, err
		}
	}

	return s, nil
}
