// Package store persists the application snapshot: confirmed
// transactions, open debts and the learned category mappings. The core
// only touches it through the narrow interfaces below; the parsing
// pipeline itself never writes.
package store

import (
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/category"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// CategorySource exposes the learned category mappings.
type CategorySource interface {
	// Mappings returns a read-only snapshot of the learned table.
	Mappings() category.Mappings
	// Learn records a sender-to-category pairing.
	Learn(sender, cat string) error
}

// RecordSource lists already-persisted records, used only to build the
// dedup set.
type RecordSource interface {
	ListTransactions() []models.Transaction
	ListDebts() []models.Debt
}

// CommitSink is the only interface that causes persisted state change.
type CommitSink interface {
	// Commit promotes reviewed candidates into persisted records.
	Commit(candidates []models.ImportedTransaction) error
}
