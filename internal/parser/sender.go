package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// Fixed marketing phrases that precede (or replace) the actual
// counterparty in app-style statements. Within each alternative the
// longer form is preferred, so a prefix never shadows a more specific
// match. Matching is done on the original string: lowering a copy for
// the search would shift byte offsets on runes whose case forms differ
// in length.
var senderMarkerPattern = regexp.MustCompile(
	`(?i)transfer[eê]ncia recebida pelo pix( de)?` +
		`|transfer[eê]ncia enviada pelo pix( para)?` +
		`|compra no d[eé]bito( em)?` +
		`|pago via pix` +
		`|pagamento de fatura` +
		`|pagamento`,
)

var senderBoilerplatePattern = regexp.MustCompile(
	`(?i)pix qr code est[aá]tico|pix qr code din[aâ]mico|ref[:.]|docto\.?`,
)

var longDigitRun = regexp.MustCompile(`\d{9,}`)

// ExtractSender derives the counterparty label from a raw description:
// the text following a known marketing phrase when one is present, else
// the description itself stripped of reference noise. Empty when nothing
// usable remains.
func ExtractSender(description string) string {
	loc := senderMarkerPattern.FindStringIndex(description)
	if loc == nil {
		return CleanSender(description)
	}
	rest := strings.TrimLeft(description[loc[1]:], " -–:")
	if cleaned := CleanSender(rest); cleaned != "" {
		return cleaned
	}
	// Marker with nothing after it ("Pagamento de fatura") labels the
	// transaction by the phrase itself.
	return CleanSender(description[loc[0]:loc[1]])
}

// CleanSender strips statement boilerplate and long numeric references.
func CleanSender(s string) string {
	s = senderBoilerplatePattern.ReplaceAllString(s, "")
	s = longDigitRun.ReplaceAllString(s, "")
	return collapseSpaces(s)
}

// Installment plan markers: "Parcela 3/10", "Parc 3 de 10" or a trailing
// "3/10". A trailing pair only counts when current <= total, which also
// rules out most dd/mm dates (20/12 fails, 03/10 is accepted as the
// rare false-positive cost).
var (
	installmentExplicit = regexp.MustCompile(`(?i)\bparc(?:ela)?\.?\s*(\d{1,2})\s*(?:/|de)\s*(\d{1,2})\b`)
	installmentTrailing = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\s*$`)
)

// DetectInstallments finds an installment plan position in a
// description, or nil.
func DetectInstallments(description string) *models.Installments {
	m := installmentExplicit.FindStringSubmatch(description)
	if m == nil {
		m = installmentTrailing.FindStringSubmatch(description)
	}
	if m == nil {
		return nil
	}
	current, _ := strconv.Atoi(m[1])
	total, _ := strconv.Atoi(m[2])
	if current < 1 || total < 2 || current > total || total > 48 {
		return nil
	}
	return &models.Installments{Current: current, Total: total}
}
