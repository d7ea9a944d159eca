package parser

import (
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// PicPayParser handles PicPay wallet statements.
//
// Records are keyed on a strict date line, then a strict time line;
// everything after the time is description until a value line:
//
//	15/03/2025
//	14:27:03
//	Pagamento de conta
//	Enel Distribuição
//	- R$ 184,20
//
// The sign on the value decides expense vs income. Known wallet
// boilerplate replaces the counterparty with a fixed short label.
type PicPayParser struct{}

func (p *PicPayParser) Provider() models.Provider {
	return models.ProviderPicPay
}

// Boilerplate phrases that label the operation rather than a
// counterparty.
var picpayLabels = []struct {
	phrase string
	label  string
}{
	{"pagamento de conta", "Pagamento de conta"},
	{"dinheiro adicionado", "Recarga"},
	{"recarga de celular", "Recarga de celular"},
	{"dinheiro guardado", "Cofrinho"},
}

type picpayState int

const (
	picpayIdle picpayState = iota
	picpayAwaitingTime
	picpayAwaitingValue
)

type picpayMachine struct {
	state picpayState
	date  string
	desc  []string
	out   []models.ImportedTransaction
}

func (m *picpayMachine) feed(line string, opts Options) {
	if slashDatePattern.MatchString(line) && len(line) == 10 {
		// New anchor: whatever is buffered lacks a value, flush it as a
		// partial record before starting over.
		m.flushPartial(opts)
		m.date = line
		m.state = picpayAwaitingTime
		return
	}

	switch m.state {
	case picpayIdle:
		return
	case picpayAwaitingTime:
		if timeLine.MatchString(line) {
			m.state = picpayAwaitingValue
		}
		return
	case picpayAwaitingValue:
		if strings.Contains(strings.ToLower(line), "r$") && valueLine.MatchString(line) {
			v, err := locale.ParseAmount(line)
			if err == nil {
				m.emit(v, opts)
				m.reset()
				return
			}
		}
		if !isJunkLine(line) {
			m.desc = append(m.desc, line)
		}
	}
}

func (m *picpayMachine) emit(value float64, opts Options) {
	if len(m.desc) == 0 && m.date == "" {
		return
	}
	description := collapseSpaces(strings.Join(m.desc, " "))
	typ := models.TypeIncome
	if value < 0 {
		typ = models.TypeExpense
		value = -value
	}
	sender := picpaySender(description)
	m.out = append(m.out, newCandidate(m.date, description, sender, value, typ, opts))
}

// flushPartial emits a buffered record that never saw its value line.
// It goes out with a zero amount so review can complete it, but only
// when there is an actual description to complete.
func (m *picpayMachine) flushPartial(opts Options) {
	if m.state == picpayAwaitingValue && len(m.desc) > 0 {
		description := collapseSpaces(strings.Join(m.desc, " "))
		m.out = append(m.out, newCandidate(m.date, description, picpaySender(description), 0, models.TypeExpense, opts))
	}
	m.reset()
}

func (m *picpayMachine) reset() {
	m.state = picpayIdle
	m.date = ""
	m.desc = nil
}

func picpaySender(description string) string {
	lower := strings.ToLower(description)
	for _, b := range picpayLabels {
		if strings.Contains(lower, b.phrase) {
			return b.label
		}
	}
	return ExtractSender(description)
}

func (p *PicPayParser) Parse(text string, opts Options) []models.ImportedTransaction {
	m := &picpayMachine{}
	for _, line := range splitLines(text) {
		m.feed(line, opts)
	}
	m.flushPartial(opts)
	return m.out
}
