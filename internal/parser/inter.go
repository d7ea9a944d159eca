package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// InterParser handles Banco Inter card-style statements.
//
// The text alternates date markers, section headers and description
// blocks terminated by a bare value line:
//
//	05 Nov 2025
//	Total de entradas
//	Pix recebido - João Pereira
//	850,00
//	Total de saídas
//	Compra aprovada Supermercado Azul
//	231,76
//
// The date marker opens a date context, the section header switches the
// income/expense mode, and each bare value line flushes the buffered
// description as one record.
type InterParser struct{}

func (p *InterParser) Provider() models.Provider {
	return models.ProviderInter
}

// "05 Nov 2025" / "05 NOV 2025": day, Portuguese month abbreviation, year.
var interDateMarker = regexp.MustCompile(`(?i)^(\d{1,2})\s+([a-zà-ú]{3,9})\.?\s+(\d{4})$`)

func (p *InterParser) Parse(text string, opts Options) []models.ImportedTransaction {
	var out []models.ImportedTransaction

	date := ""
	mode := models.TypeExpense
	var desc []string

	for _, line := range splitLines(text) {
		if m := interDateMarker.FindStringSubmatch(line); m != nil {
			if month, ok := locale.MonthFromName(m[2]); ok {
				day, _ := strconv.Atoi(m[1])
				year, _ := strconv.Atoi(m[3])
				date = fmt.Sprintf("%02d/%02d/%04d", day, month, year)
				desc = nil
				continue
			}
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "total de entradas") {
			mode = models.TypeIncome
			desc = nil
			continue
		}
		if strings.Contains(lower, "total de saidas") || strings.Contains(lower, "total de saídas") {
			mode = models.TypeExpense
			desc = nil
			continue
		}

		if bareValueLine.MatchString(line) {
			amount, err := locale.ParseAmount(line)
			if err != nil || len(desc) == 0 {
				desc = nil
				continue
			}
			description := collapseSpaces(strings.Join(desc, " "))
			out = append(out, newCandidate(date, description, ExtractSender(description), amount, mode, opts))
			desc = nil
			continue
		}

		if isJunkLine(line) {
			continue
		}
		desc = append(desc, line)
	}

	return out
}
