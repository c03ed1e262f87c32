package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skmehra/nudgelab/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the learned item difficulty ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		accs, err := st.ItemAccuracies(cmd.Context())
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}
		if len(accs) == 0 {
			fmt.Println("No control attempts recorded yet. Run `nudgelab run --arm control` first.")
			return nil
		}

		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(accs))
		for id := range accs {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ITEM\tATTEMPTS\tLEARNED P_OBJ\tAUTHORED P_OBJ")
		for _, id := range ids {
			acc := accs[id]
			authored := "-"
			if item := bank.Find(id); item != nil && item.PObj > 0 {
				authored = fmt.Sprintf("%.2f", item.PObj)
			}
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\n", id, acc.Attempts, acc.Accuracy(), authored)
		}
		return w.Flush()
	},
}

func init() {
	reportCmd.Flags().String("bank", "", "Path to a custom item bank JSON file")
}
