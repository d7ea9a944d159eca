package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/category"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// ErrPendingReview blocks a commit containing unreviewed candidates.
var ErrPendingReview = errors.New("candidates pending manual review")

// ErrMissingDate blocks a commit containing candidates without a
// resolvable date.
var ErrMissingDate = errors.New("candidate without a resolvable date")

// snapshot is the on-disk shape of the whole application state.
type snapshot struct {
	Transactions []models.Transaction `yaml:"transactions"`
	Debts        []models.Debt        `yaml:"debts"`
	Mappings     map[string]string    `yaml:"category_mappings"`
}

// FileStore keeps the snapshot in a single YAML file. Commit is the
// single-writer sequential operation; reads work on the loaded copy.
type FileStore struct {
	path string
	snap snapshot
}

// Open loads the snapshot at path, starting empty when the file does
// not exist yet.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, snap: snapshot{Mappings: map[string]string{}}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.snap); err != nil {
		return nil, fmt.Errorf("decoding state file %q: %w", path, err)
	}
	if s.snap.Mappings == nil {
		s.snap.Mappings = map[string]string{}
	}
	return s, nil
}

func (s *FileStore) save() error {
	data, err := yaml.Marshal(s.snap)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file %q: %w", s.path, err)
	}
	return nil
}

// Mappings returns a copy of the learned table so callers cannot
// mutate the store through it.
func (s *FileStore) Mappings() category.Mappings {
	out := make(category.Mappings, len(s.snap.Mappings))
	for k, v := range s.snap.Mappings {
		out[k] = v
	}
	return out
}

// Learn upserts the generic sender mapping and persists.
func (s *FileStore) Learn(sender, cat string) error {
	s.snap.Mappings = category.Learn(s.snap.Mappings, sender, cat)
	return s.save()
}

func (s *FileStore) ListTransactions() []models.Transaction {
	return append([]models.Transaction(nil), s.snap.Transactions...)
}

func (s *FileStore) ListDebts() []models.Debt {
	return append([]models.Debt(nil), s.snap.Debts...)
}

// Commit promotes reviewed candidates into persisted records. Zero
// amounts are discarded, unreviewed or dateless candidates abort the
// whole batch, linked candidates pay down their debt instead of
// creating a new entry, and confirmed categories feed back into the
// mapping table.
func (s *FileStore) Commit(candidates []models.ImportedTransaction) error {
	for _, c := range candidates {
		if c.NeedsReview {
			return fmt.Errorf("%w: %q", ErrPendingReview, c.Description)
		}
		if c.Amount > 0 {
			if _, ok := locale.ParseDate(c.Date); !ok {
				return fmt.Errorf("%w: %q", ErrMissingDate, c.Description)
			}
		}
	}

	for _, c := range candidates {
		if c.Amount <= 0 {
			continue
		}

		if c.LinkedDebtID != "" {
			s.payDebt(c.LinkedDebtID)
		} else {
			s.snap.Transactions = append(s.snap.Transactions, models.Transaction{
				ID:          c.ID,
				Date:        c.Date,
				Description: c.Description,
				Sender:      c.Sender,
				Amount:      c.Amount,
				Type:        c.Type,
				Category:    c.Category,
				Cycle:       c.Cycle,
			})
		}

		if c.Sender != "" && c.Category != "" {
			s.snap.Mappings = category.Learn(s.snap.Mappings, c.Sender, c.Category)
			s.snap.Mappings = category.LearnSpecific(s.snap.Mappings, c.Sender, c.Amount, c.Category)
		}
	}

	return s.save()
}

func (s *FileStore) payDebt(debtID string) {
	for i := range s.snap.Debts {
		d := &s.snap.Debts[i]
		if d.ID != debtID {
			continue
		}
		d.PaidInstallments++
		if d.TotalInstallments > 0 && d.PaidInstallments >= d.TotalInstallments {
			d.Open = false
		}
		return
	}
}
