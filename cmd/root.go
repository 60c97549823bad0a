package cmd

import (
	"fmt"

	"github.com/abhisek/biascheck/internal/bank"
	"github.com/abhisek/biascheck/internal/config"
	"github.com/abhisek/biascheck/internal/store"
	"github.com/spf13/cobra"
)

// cfg is populated from the environment before any command runs.
var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "biascheck",
	Short: "Cognitive bias and calibration quiz",
	Long: "Biascheck asks questions that test for common reasoning biases, records how\n" +
		"confident you are in each answer and scores your calibration with a Brier score.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database file or postgres:// DSN (overrides BIASCHECK_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "YAML question bank file (overrides BIASCHECK_BANK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BIASCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database location and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadBank reads the bank named by --bank or BIASCHECK_BANK, falling back
// to the built-in bank.
func loadBank(cmd *cobra.Command) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		path = cfg.BankPath
	}
	if path == "" {
		return bank.LoadDefault()
	}
	b, err := bank.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return b, nil
}
