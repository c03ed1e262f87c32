package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skmehra/nudgelab/internal/app"
	"github.com/skmehra/nudgelab/internal/config"
	"github.com/skmehra/nudgelab/internal/confidence"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
	"github.com/skmehra/nudgelab/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		armFlag, _ := cmd.Flags().GetString("arm")
		arms, err := parseArms(armFlag)
		if err != nil {
			return err
		}
		return runApp(cmd, arms)
	},
}

func init() {
	runCmd.Flags().String("arm", "full", "Arm to run: control, experimental, or full")
	runCmd.Flags().String("strategy", "", "Confidence strategy: sigmoid, decay, or decay-exp (overrides config)")
	runCmd.Flags().Int("items", 0, "Limit items per arm (0 = all)")
	runCmd.Flags().String("participant", "", "Participant identifier for ledger rows")
	runCmd.Flags().String("bank", "", "Path to a custom item bank JSON file")
	runCmd.Flags().Bool("no-db", false, "Run without the SQLite ledger (in-memory only)")
}

// runApp resolves config, bank, and ledger, then launches the TUI. A nil
// arms slice starts at the home menu instead of jumping into a run.
func runApp(cmd *cobra.Command, arms []itembank.Arm) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
		cfg.Strategy = confidence.Strategy(strategy)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}

	participant, _ := cmd.Flags().GetString("participant")
	if participant == "" {
		participant = "local"
	}

	itemLimit, _ := cmd.Flags().GetInt("items")

	opts := app.Options{
		Config:        cfg,
		Bank:          bank,
		ParticipantID: participant,
		ItemLimit:     itemLimit,
		Arms:          arms,
	}

	noDB, _ := cmd.Flags().GetBool("no-db")
	if noDB {
		opts.Ledger = ledger.NewMemory()
		return app.Run(opts)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		// The session can run without persistence.
		fmt.Fprintln(os.Stderr, "warning: ledger unavailable:", err)
		opts.Ledger = ledger.NewMemory()
		return app.Run(opts)
	}
	defer st.Close()

	opts.Ledger = ledger.NewSQLite(st)
	return app.Run(opts)
}

// loadBank loads the --bank file when given, otherwise the embedded bank.
func loadBank(cmd *cobra.Command) (*itembank.Bank, error) {
	if path, _ := cmd.Flags().GetString("bank"); path != "" {
		bank, err := itembank.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load item bank: %w", err)
		}
		return bank, nil
	}
	bank, err := itembank.Default()
	if err != nil {
		return nil, fmt.Errorf("load default item bank: %w", err)
	}
	return bank, nil
}

// parseArms maps the --arm flag to an arm sequence.
func parseArms(flag string) ([]itembank.Arm, error) {
	switch flag {
	case "control":
		return []itembank.Arm{itembank.ArmControl}, nil
	case "experimental":
		return []itembank.Arm{itembank.ArmExperimental}, nil
	case "full", "":
		return []itembank.Arm{itembank.ArmControl, itembank.ArmExperimental}, nil
	default:
		return nil, fmt.Errorf("unknown arm %q (want control, experimental, or full)", flag)
	}
}
