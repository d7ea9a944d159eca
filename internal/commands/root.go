// Package commands wires the CLI surface around the import pipeline.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "planfin",
		Short:   "Personal finance statement importer",
		Long:    "Parses bank and wallet statements (Bradesco, Nubank, PicPay, Inter or generic text) into reviewable transactions, flags likely duplicates and tracks income and debts across two pay cycles.",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLearnCommand())

	return rootCmd
}
