// Package dedup flags import candidates that likely match records
// already persisted. Fingerprints are heuristic similarity keys, not
// hashes: rare collisions between unrelated transactions are accepted
// in exchange for catching statement re-imports.
package dedup

import (
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

const labelLen = 15

// Fingerprint builds the similarity key for a candidate: day/month
// (year intentionally dropped so re-imports spanning a year boundary
// still match), the absolute amount at two decimals, and the first 15
// alphanumeric characters of the lowered sender-or-description.
func Fingerprint(t models.ImportedTransaction) string {
	return key(t.Date, t.Amount, t.SenderOrDescription())
}

// Set is the fingerprint index of already-persisted records.
type Set map[string]struct{}

func (s Set) Has(fp string) bool {
	_, ok := s[fp]
	return ok
}

// BuildExistingSet fingerprints every persisted income transaction and
// every debt (by purchase-or-due date, installment amount and name).
func BuildExistingSet(transactions []models.Transaction, debts []models.Debt) Set {
	set := make(Set, len(transactions)+len(debts))
	for _, t := range transactions {
		if t.Type != models.TypeIncome {
			continue
		}
		label := t.Sender
		if strings.TrimSpace(label) == "" {
			label = t.Description
		}
		set[key(t.Date, t.Amount, label)] = struct{}{}
	}
	for _, d := range debts {
		set[key(d.ReferenceDate(), d.InstallmentAmount, d.Name)] = struct{}{}
	}
	return set
}

// MarkDuplicates sets IsDuplicate on every candidate whose fingerprint
// appears in the existing set. Candidates are never removed; flagging
// leaves the decision to the user. The input slice is not mutated.
func MarkDuplicates(candidates []models.ImportedTransaction, existing Set) []models.ImportedTransaction {
	out := make([]models.ImportedTransaction, len(candidates))
	for i, c := range candidates {
		c.IsDuplicate = existing.Has(Fingerprint(c))
		out[i] = c
	}
	return out
}

func key(date string, amount float64, label string) string {
	if amount < 0 {
		amount = -amount
	}
	return dayMonth(date) + "|" + locale.FormatAmount(amount) + "|" + labelPrefix(label)
}

// dayMonth keeps only the dd/mm prefix of a dd/mm/yyyy date.
func dayMonth(date string) string {
	if len(date) >= 5 {
		return date[:5]
	}
	return date
}

// labelPrefix lowers the label, drops every non-alphanumeric rune and
// keeps the first 15 characters.
func labelPrefix(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= labelLen {
				break
			}
		}
	}
	return b.String()
}
