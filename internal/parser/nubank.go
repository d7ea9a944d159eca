package parser

import (
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// NubankParser handles Nubank account statements exported as text.
//
// Each record spans several lines:
//
//	07-11-2025
//	Transferência recebida pelo Pix
//	MARIA DA SILVA
//	12345678901234567890        <- internal reference, not description
//	R$ 1.250,00
//
// A new date line always flushes whatever is buffered; a mid-stream
// flush only emits when date, description and value are all present,
// while end-of-input flushes a best-effort partial record.
type NubankParser struct{}

func (p *NubankParser) Provider() models.Provider {
	return models.ProviderNubank
}

type nubankState int

const (
	nubankIdle nubankState = iota
	nubankAwaitingDescription
	nubankAwaitingValue
)

type nubankMachine struct {
	state    nubankState
	date     string
	desc     []string
	amount   float64
	negative bool
	hasValue bool
	out      []models.ImportedTransaction
}

func (m *nubankMachine) feed(line string, opts Options) {
	if dashDateLine.MatchString(line) {
		m.flush(opts, false)
		m.date = strings.ReplaceAll(line, "-", "/")
		m.state = nubankAwaitingDescription
		return
	}

	if m.state == nubankIdle {
		return
	}

	if v, ok := nubankValue(line); ok {
		m.amount = v
		m.negative = v < 0
		m.hasValue = true
		m.state = nubankAwaitingValue
		return
	}

	if numericRefLine.MatchString(line) || isJunkLine(line) {
		return
	}

	m.desc = append(m.desc, line)
}

// flush emits the buffered record and resets the machine. Mid-stream
// (new anchor) the record must be complete; at end-of-input a partial
// record is still emitted as long as it has a description or a value.
func (m *nubankMachine) flush(opts Options, endOfInput bool) {
	defer func() {
		m.state = nubankIdle
		m.date = ""
		m.desc = nil
		m.amount = 0
		m.negative = false
		m.hasValue = false
	}()

	complete := m.date != "" && len(m.desc) > 0 && m.hasValue
	if !complete && !endOfInput {
		return
	}
	if len(m.desc) == 0 && !m.hasValue {
		return
	}

	description := collapseSpaces(strings.Join(m.desc, " "))
	amount := m.amount
	if amount < 0 {
		amount = -amount
	}

	typ := nubankType(description, m.negative)
	m.out = append(m.out, newCandidate(m.date, description, ExtractSender(description), amount, typ, opts))
}

// nubankValue matches "R$ 1.234,56" lines, optionally negative.
func nubankValue(line string) (float64, bool) {
	if !strings.Contains(strings.ToLower(line), "r$") || !valueLine.MatchString(line) {
		return 0, false
	}
	v, err := locale.ParseAmount(line)
	if err != nil {
		return 0, false
	}
	return v, true
}

func nubankType(description string, negative bool) models.TxnType {
	if negative {
		return models.TypeExpense
	}
	lower := strings.ToLower(description)
	if strings.Contains(lower, "recebid") || strings.Contains(lower, "estorno") {
		return models.TypeIncome
	}
	return models.TypeExpense
}

func (p *NubankParser) Parse(text string, opts Options) []models.ImportedTransaction {
	m := &nubankMachine{}
	for _, line := range splitLines(text) {
		m.feed(line, opts)
	}
	m.flush(opts, true)
	return m.out
}
