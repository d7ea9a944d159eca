package parser

import (
	"regexp"
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// GenericParser is the line scanner used when no provider format is
// recognized. It accepts a wider set of date shapes than the dedicated
// parsers and expects each record to end on a signed value-only line:
//
//	12 de março de 2025
//	Pagamento recebido
//	Cliente Fulano
//	+ R$ 320,00
//
// Junk lines (balances, totals, footers) are filtered wherever they
// appear. Direction comes from description keywords, falling back to
// the sign of the value.
type GenericParser struct{}

func (p *GenericParser) Provider() models.Provider {
	return models.ProviderGeneric
}

// Date shapes the scanner recognizes as record anchors.
var genericDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+[a-zà-ú]{3}\.?$`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+[a-zà-ú]{3,9}\.?\s+\d{4}$`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+de\s+[a-zà-ú]{3,9}(?:\s+de\s+\d{4})?$`),
}

type genericState int

const (
	genericIdle genericState = iota
	genericBuffering
)

type genericMachine struct {
	state genericState
	date  string
	desc  []string
	out   []models.ImportedTransaction
}

func (m *genericMachine) feed(line string, opts Options) {
	if isJunkLine(line) {
		return
	}

	if genericDateToken(line) {
		// New anchor always forces a flush of whatever is buffered.
		m.flushPartial(opts)
		if t, ok := locale.ParseDate(normalizeDateToken(line)); ok {
			m.date = locale.FormatDate(t)
		}
		m.state = genericBuffering
		return
	}

	if isValueOnlyLine(line) {
		m.emit(line, opts)
		return
	}

	m.desc = append(m.desc, line)
	m.state = genericBuffering
}

func (m *genericMachine) emit(rawValue string, opts Options) {
	value, err := locale.ParseAmount(rawValue)
	if err != nil {
		return
	}
	if len(m.desc) == 0 {
		m.reset()
		return
	}

	description := collapseSpaces(strings.Join(m.desc, " "))
	typ := genericType(description, value)
	if value < 0 {
		value = -value
	}

	m.out = append(m.out, newCandidate(m.date, description, ExtractSender(description), value, typ, opts))
	// The date context carries over: statements often list several
	// records under one date heading.
	m.desc = nil
	m.state = genericBuffering
}

// flushPartial emits a buffered description that never saw a value line.
func (m *genericMachine) flushPartial(opts Options) {
	if len(m.desc) > 0 && m.date != "" {
		description := collapseSpaces(strings.Join(m.desc, " "))
		m.out = append(m.out, newCandidate(m.date, description, ExtractSender(description), 0, models.TypeExpense, opts))
	}
	m.desc = nil
	m.date = ""
}

func (m *genericMachine) reset() {
	m.state = genericIdle
	m.desc = nil
}

func genericDateToken(line string) bool {
	for _, p := range genericDatePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// normalizeDateToken strips a trailing abbreviation dot ("12 mar.").
func normalizeDateToken(line string) string {
	return strings.TrimSuffix(strings.TrimSpace(line), ".")
}

// genericType infers the direction from description keywords, falling
// back to the sign of the parsed value when ambiguous.
func genericType(description string, value float64) models.TxnType {
	if containsAnyFold(description, incomeKeywords) {
		return models.TypeIncome
	}
	if containsAnyFold(description, expenseKeywords) {
		return models.TypeExpense
	}
	if value < 0 {
		return models.TypeExpense
	}
	return models.TypeIncome
}

func (p *GenericParser) Parse(text string, opts Options) []models.ImportedTransaction {
	m := &genericMachine{}
	for _, line := range splitLines(text) {
		m.feed(line, opts)
	}
	m.flushPartial(opts)
	return m.out
}
