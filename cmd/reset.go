package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpnguyen/vocadrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress for a library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID, _ := cmd.Flags().GetString("user")
		libraryID, _ := cmd.Flags().GetString("library")
		if libraryID == "" {
			return fmt.Errorf("--library is required")
		}

		if err := st.ResetProgress(cmd.Context(), userID, libraryID); err != nil {
			return err
		}
		fmt.Printf("Progress for %s/%s cleared\n", userID, libraryID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "local", "Learner id to reset")
	resetCmd.Flags().String("library", "", "Library id to reset")
}
