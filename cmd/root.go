package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skmehra/nudgelab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "nudgelab",
	Short: "Behavioral confidence assessment in the terminal",
	Long: "Nudgelab runs short cognitive assessments while watching how you type,\n" +
		"estimates a behavioral confidence index per answer, and nudges you to\n" +
		"take a second look when confidence outruns item difficulty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUDGELAB_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NUDGELAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
