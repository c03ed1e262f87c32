package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skmehra/nudgelab/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the recorded difficulty ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear the ledger without --yes")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetControlAttempts(cmd.Context()); err != nil {
			return fmt.Errorf("reset ledger: %w", err)
		}
		fmt.Println("Difficulty ledger cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm clearing all recorded attempts")
}
