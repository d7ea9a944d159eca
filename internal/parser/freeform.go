package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// FreeFormParser handles hand-typed or loosely structured lists, one
// record per line:
//
//	20/12 Supermercado 150,00
//	Farmácia São João R$ 89,90
//	15/11/2025 aluguel 1.200
//
// A missing year defaults to the current year. Amounts prefixed with a
// currency marker win over the last plain number on the line. Lists
// carry no income signal, so every candidate comes out as an expense.
type FreeFormParser struct{}

func (p *FreeFormParser) Provider() models.Provider {
	return models.ProviderGeneric
}

var (
	// optional leading date token: dd/mm, dd/mm/yy, dd-mm-yyyy
	freeformDateToken = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?\b`)
	// currency-marked amount anywhere in the line, sign either side
	freeformCurrencyAmount = regexp.MustCompile(`(?i)-?\s*R\$\s*-?\s*\d[\d.]*(?:,\d{1,2})?`)
	// plain number with an optional sign and decimal part
	freeformPlainAmount = regexp.MustCompile(`-?\d[\d.]*(?:,\d{1,2})?`)
	// residual currency words left in the description
	freeformCurrencyWords = regexp.MustCompile(`(?i)\b(?:reais|real)\b|R\$`)
)

func (p *FreeFormParser) Parse(text string, opts Options) []models.ImportedTransaction {
	var out []models.ImportedTransaction

	for _, line := range splitLines(text) {
		if isJunkLine(line) {
			continue
		}
		if t, ok := p.parseLine(line, opts); ok {
			out = append(out, t)
		}
	}

	return out
}

func (p *FreeFormParser) parseLine(line string, opts Options) (models.ImportedTransaction, bool) {
	rest := line

	date := ""
	if m := freeformDateToken.FindStringSubmatch(rest); m != nil {
		date = freeformDate(m)
		rest = strings.TrimSpace(rest[len(m[0]):])
	}

	amountStr, rest := extractBestAmount(rest)
	if amountStr == "" {
		return models.ImportedTransaction{}, false
	}
	amount, err := locale.ParseAmount(amountStr)
	if err != nil || amount <= 0 {
		return models.ImportedTransaction{}, false
	}

	description := collapseSpaces(freeformCurrencyWords.ReplaceAllString(rest, ""))
	description = strings.Trim(description, " -–:")
	if description == "" {
		return models.ImportedTransaction{}, false
	}

	return newCandidate(date, description, "", amount, models.TypeExpense, opts), true
}

// extractBestAmount picks the monetary value out of a line: a
// currency-marked amount wins; otherwise the last plain number is
// taken. The matched substring is removed from the remainder.
func extractBestAmount(s string) (amount, rest string) {
	if loc := freeformCurrencyAmount.FindStringIndex(s); loc != nil {
		return s[loc[0]:loc[1]], s[:loc[0]] + s[loc[1]:]
	}
	locs := freeformPlainAmount.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return "", s
	}
	last := locs[len(locs)-1]
	return s[last[0]:last[1]], s[:last[0]] + s[last[1]:]
}

// freeformDate resolves the captured date token, defaulting a missing
// year to the current year and expanding 2-digit years to 20YY.
// Returns "" when the token is not a real calendar date.
func freeformDate(m []string) string {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := time.Now().Year()
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		year = locale.ExpandYear(y)
	}
	candidate := fmt.Sprintf("%02d/%02d/%04d", day, month, year)
	if _, ok := locale.ParseDate(candidate); !ok {
		return ""
	}
	return candidate
}
