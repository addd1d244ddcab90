package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tpnguyen/vocadrill/internal/cli"
	"github.com/tpnguyen/vocadrill/internal/session"
	"github.com/tpnguyen/vocadrill/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run an interactive review session",
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
			return fmt.Errorf("--library is required (see `vocadrill stats` for imported libraries)")
		}

		svc := session.NewService(st, st, cfg.Policy(), cfg.GatePolicy())
		drill := cli.NewDrill(svc, os.Stdin, os.Stdout)
		return drill.Run(cmd.Context(), userID, libraryID)
	},
}

func init() {
	drillCmd.Flags().String("user", "local", "Learner id progress is tracked under")
	drillCmd.Flags().String("library", "", "Library id to drill")
}
