package parser

import (
	"fmt"
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// ParseSheet consumes a spreadsheet grid (header row first) with at
// least three columns per row: date, description, amount. Dates arrive
// either as numeric serials or as text; amounts as numbers or as
// locale-formatted strings. Rows with a missing description or a
// non-positive/unparseable amount are discarded.
func ParseSheet(rows [][]any, opts Options) []models.ImportedTransaction {
	var out []models.ImportedTransaction

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			continue
		}

		date := sheetDate(row[0])
		description := collapseSpaces(fmt.Sprintf("%v", row[1]))
		if description == "" || description == "<nil>" {
			continue
		}

		amount, ok := sheetAmount(row[2])
		if !ok || amount <= 0 {
			continue
		}

		out = append(out, newCandidate(date, description, ExtractSender(description), amount, models.TypeExpense, opts))
	}

	return out
}

func sheetDate(cell any) string {
	switch v := cell.(type) {
	case float64:
		return locale.FormatDate(locale.FromSerial(v))
	case int:
		return locale.FormatDate(locale.FromSerial(float64(v)))
	case string:
		if t, ok := locale.ParseDate(v); ok {
			return locale.FormatDate(t)
		}
	}
	return ""
}

func sheetAmount(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		amount, err := locale.ParseAmount(s)
		if err != nil {
			return 0, false
		}
		if amount < 0 {
			amount = -amount
		}
		return amount, true
	}
	return 0, false
}
