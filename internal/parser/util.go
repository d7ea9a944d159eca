package parser

import (
	"regexp"
	"strings"
)

// Shared patterns for pt-BR statement text.
var (
	// dd/mm/yyyy at line start
	slashDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)
	// strict dd-mm-yyyy line
	dashDateLine = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	// strict hh:mm:ss line
	timeLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	// value-only line: digits with separators, sign either side of an
	// optional R$ ("- R$ 1.500,75" and "R$ -320,45" both occur)
	valueLine = regexp.MustCompile(`(?i)^[-+]?\s*(?:R\$\s*)?[-+]?\s*(?:\d{1,3}(?:\.\d{3})*(?:,\d{1,2})?|\d+(?:[.,]\d{1,2})?)$`)
	// bare invoice value line: 1.234,56 (no sign, no currency)
	bareValueLine = regexp.MustCompile(`^(?:\d{1,3}(?:\.\d{3})*|\d+),\d{2}$`)
	// purely numeric internal reference (transfer ids, barcodes)
	numericRefLine = regexp.MustCompile(`^\d{10,}$`)
)

// normalizeText collapses line endings and strips zero-width and
// non-breaking characters that PDF extraction leaves behind.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "​", "")
	text = strings.ReplaceAll(text, " ", " ")
	return text
}

// splitLines returns trimmed lines, keeping empties out.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(normalizeText(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// junkKeywords flag balance/total/footer boilerplate that is never a
// transaction, regardless of position.
var junkKeywords = []string{
	"saldo anterior", "saldo do dia", "saldo disponivel", "saldo disponível",
	"saldo em conta", "saldo final", "saldo",
	"total de entradas", "total de saidas", "total de saídas", "total",
	"extrato de", "extrato", "data lançamento", "data lancamento",
	"fale conosco", "central de atendimento", "sac ", "ouvidoria",
	"pagina ", "página ", "www.", "cnpj", "agencia/conta", "agência/conta",
}

func isJunkLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range junkKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isValueOnlyLine guards against bare integers (page numbers, years)
// being read as amounts: a value line must carry a currency marker, an
// explicit sign or a decimal/thousands separator.
func isValueOnlyLine(line string) bool {
	if !valueLine.MatchString(line) {
		return false
	}
	if strings.Contains(strings.ToLower(line), "r$") {
		return true
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
		return true
	}
	return strings.ContainsAny(line, ",.")
}

// containsAnyFold reports whether text contains any needle, case-insensitively.
func containsAnyFold(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

var incomeKeywords = []string{
	"recebid", "credito", "crédito", "entrada", "deposito", "depósito",
	"rendimento", "estorno", "salario", "salário",
}

var expenseKeywords = []string{
	"pagamento", "pago", "enviad", "debito", "débito", "compra",
	"saque", "tarifa", "boleto",
}

// collapseSpaces folds runs of whitespace into single spaces.
var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
