package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tpnguyen/vocadrill/internal/learn"
	"github.com/tpnguyen/vocadrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show imported libraries and per-card progress",
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

		libraryID, _ := cmd.Flags().GetString("library")
		if libraryID == "" {
			libs, err := st.ListLibraries(cmd.Context())
			if err != nil {
				return err
			}
			if len(libs) == 0 {
				fmt.Println("No libraries imported yet. Use `vocadrill import`.")
				return nil
			}
			for _, l := range libs {
				fmt.Printf("%s  %s (%d cards)\n", l.ID, l.Name, l.CardCount)
			}
			return nil
		}

		userID, _ := cmd.Flags().GetString("user")
		cards, err := st.LoadLibraryCards(cmd.Context(), libraryID)
		if err != nil {
			return err
		}
		snap, err := st.LoadProgress(cmd.Context(), userID, libraryID)
		if err != nil {
			return err
		}

		states := make(map[string]learn.CardStateData)
		if snap != nil {
			for _, cs := range snap.Cards {
				states[cs.ID] = cs
			}
		}

		for _, c := range cards {
			cs, ok := states[c.ID]
			if !ok {
				fmt.Printf("%-24s  mastery 0/%d  new\n", c.Front, learn.MaxMastery)
				continue
			}
			fmt.Printf("%-24s  mastery %d/%d  seen %d  wrong %d\n",
				c.Front, cs.Mastery, learn.MaxMastery, cs.SeenCount, cs.WrongCount)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "local", "Learner id to show progress for")
	statsCmd.Flags().String("library", "", "Library id (omit to list libraries)")
}
