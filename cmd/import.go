package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpnguyen/vocadrill/internal/deck"
	"github.com/tpnguyen/vocadrill/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <deck.yaml>",
	Short: "Import a YAML deck file as a library",
	Args:  cobra.ExactArgs(1),
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

		d, err := deck.LoadFile(args[0])
		if err != nil {
			return err
		}
		if err := st.ImportDeck(cmd.Context(), d); err != nil {
			return err
		}

		fmt.Printf("Imported %q (%d cards) as library %s\n", d.Name, len(d.Cards), d.ID)
		return nil
	},
}
