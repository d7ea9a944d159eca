package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/config"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/store"
)

func newLearnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <sender> <category>",
		Short: "Teach the classifier a sender-to-category mapping",
		Long: `Records that transactions from the given sender belong to the given
category. Future imports classify matching senders automatically;
learned mappings take precedence over the built-in keyword table.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			st, err := store.Open(cfg.StateFile)
			if err != nil {
				return err
			}
			if err := st.Learn(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Learned: %q -> %s\n", args[0], args[1])
			return nil
		},
	}
}
