package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/biascheck/internal/bank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a question bank and print a summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   *bank.Bank
			err error
		)
		if len(args) == 1 {
			b, err = bank.Load(args[0])
		} else {
			b, err = loadBank(cmd)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d questions\n", b.Round(), b.Count())
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(b.Categories(), ", "))
		return nil
	},
}

var bankDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in question bank as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.OutOrStdout().Write(bank.DefaultYAML())
	},
}

func init() {
	bankCmd.AddCommand(bankCheckCmd)
	bankCmd.AddCommand(bankDumpCmd)
}
