package parser

import (
	"regexp"
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// BradescoParser handles Bradesco account statements (extrato).
//
// The layout is a table anchored on date-prefixed rows:
//
//	Data | Histórico | Docto. | Crédito/Débito (R$) | Saldo (R$)
//
// Example chunk (a row may wrap onto continuation lines):
//
//	06/11/2025 PIX TRANSF MARIA S06/11    123,45    1.876,55
type BradescoParser struct{}

func (p *BradescoParser) Provider() models.Provider {
	return models.ProviderBradesco
}

// A row carries the description plus two money columns: the movement
// value and the running balance. Columns are separated by runs of
// spaces, which PDF extraction does not always preserve evenly.
var bradescoRowPattern = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-?\s*\d[\d.]*,\d{2})\s+(-?\s*\d[\d.]*,\d{2})\s*$`,
)

// Rows that match the table shape but are not transactions.
var bradescoSkipKeywords = []string{
	"saldo anterior", "saldo invest", "saldo do dia", "saldo", "total",
}

var bradescoCreditKeywords = []string{
	"credito", "crédito", "transferencia recebida", "transferência recebida",
	"ted recebida", "pix recebido", "recebido", "deposito", "depósito",
	"rem:", "estorno",
}

func (p *BradescoParser) Parse(text string, opts Options) []models.ImportedTransaction {
	var out []models.ImportedTransaction

	for _, chunk := range splitDateChunks(text) {
		m := matchWrappedRow(chunk)
		if m == nil {
			continue
		}

		date := m[1]
		description := collapseSpaces(m[2])
		if description == "" || containsAnyFold(description, bradescoSkipKeywords) {
			continue
		}

		amount, err := locale.ParseAmount(m[3])
		if err != nil {
			continue
		}
		if amount < 0 {
			amount = -amount
		}

		typ := models.TypeExpense
		if containsAnyFold(description, bradescoCreditKeywords) {
			typ = models.TypeIncome
		}

		out = append(out, newCandidate(date, description, ExtractSender(description), amount, typ, opts))
	}

	return out
}

// splitDateChunks groups lines into chunks anchored at dd/mm/yyyy
// prefixed lines; continuation lines attach to the preceding anchor.
func splitDateChunks(text string) [][]string {
	var chunks [][]string
	var current []string
	for _, line := range splitLines(text) {
		if slashDatePattern.MatchString(line) {
			if current != nil {
				chunks = append(chunks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		chunks = append(chunks, current)
	}
	return chunks
}

// matchWrappedRow rejoins a wrapped table row and applies the row
// pattern. The money columns land at the end of the row but footer
// text may trail inside the same chunk, so progressively longer
// prefixes are tried until one matches.
func matchWrappedRow(chunk []string) []string {
	for end := 1; end <= len(chunk); end++ {
		row := collapseSpaces(strings.Join(chunk[:end], " "))
		if m := bradescoRowPattern.FindStringSubmatch(row); m != nil {
			return m
		}
	}
	return nil
}
