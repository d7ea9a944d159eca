package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/config"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/dedup"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/extractor"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/importer"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/logger"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/store"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/writer"
)

func newImportCommand() *cobra.Command {
	var (
		modeFlag   string
		outputFlag string
		commitFlag bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.pdf|file.txt|->",
		Short: "Parse a statement into reviewable transactions",
		Long: `Parses a statement file (or stdin with "-") into transaction
candidates, detects the source format, flags likely duplicates against
the saved state and reports what was found.

With --output the candidates are written to CSV for review. With
--commit the complete candidates are confirmed and persisted; entries
missing a date always require manual completion first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], modeFlag, outputFlag, commitFlag)
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "statement", `input interpretation: "statement" or "free-list"`)
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write candidates to a CSV file")
	cmd.Flags().BoolVar(&commitFlag, "commit", false, "confirm and persist the complete candidates")

	return cmd
}

func runImport(cmd *cobra.Command, input, modeFlag, outputFlag string, commitFlag bool) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	var mode models.ImportMode
	switch modeFlag {
	case "statement":
		mode = models.ModeStatement
	case "free-list":
		mode = models.ModeFreeList
	default:
		return fmt.Errorf("unknown mode %q (use statement or free-list)", modeFlag)
	}

	text, err := readInput(input)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.StateFile)
	if err != nil {
		return err
	}
	existing := dedup.BuildExistingSet(st.ListTransactions(), st.ListDebts())

	imp := importer.New(log, cfg.DefaultCategory, cfg.CycleSplitDay)
	result, err := imp.Process(text, mode, st.Mappings(), existing)
	if err != nil {
		if errors.Is(err, importer.ErrProcessingFailed) {
			return fmt.Errorf("processing failed, nothing was imported")
		}
		return err
	}

	if result.Found == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions found in the input.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", result.Provider)
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d transaction(s), %d likely duplicate(s)\n", result.Found, result.Duplicates)
	if len(result.Incomplete) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d item(s) are missing a date and need manual completion\n", len(result.Incomplete))
	}

	all := append(append([]models.ImportedTransaction(nil), result.Candidates...), result.Incomplete...)

	if outputFlag != "" {
		w := &writer.CSVWriter{IncludeHeader: true}
		if err := w.WriteToFile(outputFlag, all); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Candidates written to %s\n", outputFlag)
	}

	if commitFlag {
		if len(result.Incomplete) > 0 {
			return fmt.Errorf("cannot commit: %d item(s) still need a date", len(result.Incomplete))
		}
		reviewed := make([]models.ImportedTransaction, 0, len(result.Candidates))
		for _, c := range result.Candidates {
			if c.IsDuplicate {
				continue
			}
			reviewed = append(reviewed, c.Reviewed())
		}
		if err := st.Commit(reviewed); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Committed %d transaction(s)\n", len(reviewed))
	}

	return nil
}

func readInput(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return extractor.FromFile(input)
}
