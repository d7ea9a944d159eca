// Package parser turns unstructured statement text from known Brazilian
// providers (and loosely structured pasted lists) into normalized
// transaction candidates. Every parser skips what it cannot read and
// keeps going; candidates always come out flagged for manual review.
package parser

import (
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/category"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// Options carries the read-only classification snapshot into a parse call.
type Options struct {
	Mappings        category.Mappings
	DefaultCategory string
}

// Parser converts raw statement text into transaction candidates.
type Parser interface {
	// Parse never fails: unparseable chunks are skipped.
	Parse(text string, opts Options) []models.ImportedTransaction
	// Provider returns the source format this parser handles.
	Provider() models.Provider
}

// registry maps each detected provider to its dedicated parser. The
// generic scanner doubles as the entry for undetected statements.
var registry = map[models.Provider]Parser{
	models.ProviderBradesco: &BradescoParser{},
	models.ProviderNubank:   &NubankParser{},
	models.ProviderPicPay:   &PicPayParser{},
	models.ProviderInter:    &InterParser{},
	models.ProviderGeneric:  &GenericParser{},
}

// ForProvider returns the parser registered for p, or nil.
func ForProvider(p models.Provider) Parser {
	return registry[p]
}

// newCandidate assembles a candidate with classification applied.
// The sender falls back to the description for classification purposes
// but stays empty on the record itself when nothing better was found.
func newCandidate(date, description, sender string, amount float64, typ models.TxnType, opts Options) models.ImportedTransaction {
	t := models.NewImported()
	t.Date = date
	t.Description = models.ClampDescription(description)
	t.Sender = models.ClampDescription(sender)
	t.Amount = amount
	t.Type = typ
	t.Installments = DetectInstallments(description)
	t.Category = category.Classify(t.SenderOrDescription(), amount, description, opts.Mappings, opts.DefaultCategory)
	return t
}
