package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/biascheck/internal/store"
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage saved notes",
}

var entriesAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Save a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.EntryRepo().Create(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("add entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved", e.ID)
		return nil
	},
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved notes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.EntryRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tTEXT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Text)
		}
		return w.Flush()
	},
}

func init() {
	entriesListCmd.Flags().Int("limit", 20, "Maximum number of entries to show (0 for all)")

	entriesCmd.AddCommand(entriesAddCmd)
	entriesCmd.AddCommand(entriesListCmd)
}
