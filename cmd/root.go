package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tpnguyen/vocadrill/internal/config"
	"github.com/tpnguyen/vocadrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocadrill",
	Short: "Adaptive flashcard drills in the terminal",
	Long:  "Vocadrill runs spaced-repetition vocabulary drills with typo-tolerant grading and per-card mastery tracking.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCADRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then VOCADRILL_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config file named by --config, or the default
// locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
