package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/biascheck/internal/app"
	"github.com/spf13/cobra"
)

// runApp loads the bank, opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	b, err := loadBank(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{Bank: b}

	// The quiz works without a database; only notes need one.
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Entry store unavailable:", err)
		fmt.Fprintln(os.Stderr, "Notes will not be saved.")
	} else {
		defer st.Close()
		opts.Entries = st.EntryRepo()
	}

	return app.Run(opts)
}
