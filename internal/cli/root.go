// Package cli provides the interactive command-line surface: the cobra
// root command, the menu loop and the input collector.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "budget",
	Short: "Personal weekly budget tracker",
	Long: `budget records income and expense transactions tagged by day and
category, persists them locally and reports weekly and daily aggregates
against a user-set weekly budget.

All interaction happens through the menu; storage and display options
come from budget.toml or environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSession(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
