package models

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TxnType marks the direction of a transaction.
type TxnType string

const (
	TypeIncome  TxnType = "income"
	TypeExpense TxnType = "expense"
)

// Cycle identifies which of the two recurring pay periods a transaction
// belongs to.
type Cycle string

const (
	CycleSalary  Cycle = "salario"
	CycleAdvance Cycle = "adiantamento"
)

// Installments holds a detected installment plan position, e.g. 3/10.
type Installments struct {
	Current int `yaml:"current"`
	Total   int `yaml:"total"`
}

// MaxDescriptionLen bounds how much raw line content a candidate carries.
const MaxDescriptionLen = 90

// ImportedTransaction is a parsed statement entry awaiting user review.
// It is created by a parser invocation and either promoted into a
// persisted Transaction (or a debt payment) or discarded at confirmation.
type ImportedTransaction struct {
	ID           string
	Date         string // dd/mm/yyyy; empty when the parser could not resolve one
	Description  string
	Sender       string // cleaned counterparty; empty means "use Description"
	Amount       float64
	Type         TxnType
	Category     string
	Cycle        Cycle
	Installments *Installments
	IsDuplicate  bool
	NeedsReview  bool
	LinkedDebtID string
}

// NewImported builds a candidate with a fresh ID and review pending.
func NewImported() ImportedTransaction {
	return ImportedTransaction{
		ID:          uuid.NewString(),
		NeedsReview: true,
	}
}

// SenderOrDescription returns the label used for classification and
// deduplication: the cleaned sender when present, the raw description
// otherwise.
func (t ImportedTransaction) SenderOrDescription() string {
	if strings.TrimSpace(t.Sender) != "" {
		return t.Sender
	}
	return t.Description
}

// The review step edits candidates through explicit copy-on-write
// transforms rather than free-form field assignment.

// WithDate returns a copy with the date replaced.
func (t ImportedTransaction) WithDate(date string) ImportedTransaction {
	t.Date = date
	return t
}

// WithCategory returns a copy with the category replaced.
func (t ImportedTransaction) WithCategory(category string) ImportedTransaction {
	t.Category = category
	return t
}

// WithCycle returns a copy assigned to another pay cycle.
func (t ImportedTransaction) WithCycle(c Cycle) ImportedTransaction {
	t.Cycle = c
	return t
}

// WithAmount returns a copy with the amount replaced.
func (t ImportedTransaction) WithAmount(amount float64) ImportedTransaction {
	t.Amount = amount
	return t
}

// WithLinkedDebt returns a copy that records a payment against an open
// debt instead of creating a new entry.
func (t ImportedTransaction) WithLinkedDebt(debtID string) ImportedTransaction {
	t.LinkedDebtID = debtID
	return t
}

// Reviewed returns a copy with the manual-review flag cleared.
func (t ImportedTransaction) Reviewed() ImportedTransaction {
	t.NeedsReview = false
	return t
}

// ClampDescription truncates s to the bounded display length, cutting
// on a rune boundary so accented text never ends mid-sequence.
func ClampDescription(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= MaxDescriptionLen {
		return s
	}
	cut := MaxDescriptionLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}

// Transaction is a confirmed, persisted entry.
type Transaction struct {
	ID          string  `yaml:"id"`
	Date        string  `yaml:"date"` // dd/mm/yyyy
	Description string  `yaml:"description"`
	Sender      string  `yaml:"sender,omitempty"`
	Amount      float64 `yaml:"amount"`
	Type        TxnType `yaml:"type"`
	Category    string  `yaml:"category,omitempty"`
	Cycle       Cycle   `yaml:"cycle,omitempty"`
}

// Debt is an open obligation paid off in installments.
type Debt struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	PurchaseDate      string  `yaml:"purchase_date,omitempty"` // dd/mm/yyyy
	DueDate           string  `yaml:"due_date,omitempty"`      // dd/mm/yyyy
	TotalAmount       float64 `yaml:"total_amount"`
	InstallmentAmount float64 `yaml:"installment_amount"`
	TotalInstallments int     `yaml:"total_installments"`
	PaidInstallments  int     `yaml:"paid_installments"`
	Cycle             Cycle   `yaml:"cycle,omitempty"`
	Open              bool    `yaml:"open"`
}

// ReferenceDate returns the date used when fingerprinting the debt:
// the purchase date when known, the due date otherwise.
func (d Debt) ReferenceDate() string {
	if d.PurchaseDate != "" {
		return d.PurchaseDate
	}
	return d.DueDate
}
