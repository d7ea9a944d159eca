// Package writer exports parsed candidates for review outside the CLI.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// CSVWriter writes import candidates to CSV.
type CSVWriter struct {
	// IncludeHeader adds the column header row.
	IncludeHeader bool
}

// WriteToFile writes candidates to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, candidates []models.ImportedTransaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, candidates)
}

// Write writes candidates in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, candidates []models.ImportedTransaction) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeHeader {
		header := []string{"Date", "Description", "Sender", "Amount", "Type", "Category", "Cycle", "Installments", "Duplicate", "NeedsReview"}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, c := range candidates {
		row := []string{
			c.Date,
			c.Description,
			c.Sender,
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
			string(c.Type),
			c.Category,
			string(c.Cycle),
			formatInstallments(c.Installments),
			strconv.FormatBool(c.IsDuplicate),
			strconv.FormatBool(c.NeedsReview),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatInstallments(inst *models.Installments) string {
	if inst == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", inst.Current, inst.Total)
}
