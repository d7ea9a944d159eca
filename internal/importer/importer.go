// Package importer runs the full import pipeline: provider detection,
// parser selection with fallback, cycle assignment, sorting, manual
// review partitioning and duplicate flagging.
package importer

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/category"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/dedup"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/parser"
)

// ErrProcessingFailed is surfaced when a parser blows up on unexpected
// input. The whole attempt yields zero results: partial state from a
// crashed parser is not trusted.
var ErrProcessingFailed = errors.New("processing failed")

// Importer orchestrates one import attempt at a time. Each call works
// on its own snapshot; nothing is persisted here.
type Importer struct {
	log             zerolog.Logger
	defaultCategory string
	cycleSplitDay   int
}

// New builds an importer. splitDay is the day-of-month boundary between
// the salary cycle and the advance cycle.
func New(log zerolog.Logger, defaultCategory string, splitDay int) *Importer {
	if splitDay < 1 || splitDay > 28 {
		splitDay = 20
	}
	return &Importer{log: log, defaultCategory: defaultCategory, cycleSplitDay: splitDay}
}

// Result is the outcome of one processing attempt.
type Result struct {
	Provider models.Provider
	// Candidates have a resolvable date and are sorted by it ascending.
	Candidates []models.ImportedTransaction
	// Incomplete candidates are missing a date and must be completed
	// manually before confirmation.
	Incomplete []models.ImportedTransaction
	Found      int
	Duplicates int
}

// Process parses a raw text blob according to mode and flags duplicates
// against the given snapshot of existing records.
func (i *Importer) Process(text string, mode models.ImportMode, mappings category.Mappings, existing dedup.Set) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			i.log.Error().Interface("panic", r).Msg("parser crashed, discarding attempt")
			result = nil
			err = fmt.Errorf("%w: %v", ErrProcessingFailed, r)
		}
	}()

	opts := parser.Options{Mappings: mappings, DefaultCategory: i.defaultCategory}

	provider := models.ProviderGeneric
	var candidates []models.ImportedTransaction

	switch mode {
	case models.ModeFreeList:
		candidates = (&parser.FreeFormParser{}).Parse(text, opts)
	default:
		provider = parser.Detect(text)
		if provider != models.ProviderGeneric {
			candidates = parser.ForProvider(provider).Parse(text, opts)
			i.log.Debug().Str("provider", string(provider)).Int("found", len(candidates)).Msg("provider parser ran")
		}
		if len(candidates) == 0 {
			candidates = (&parser.GenericParser{}).Parse(text, opts)
			i.log.Debug().Int("found", len(candidates)).Msg("generic scanner fallback")
		}
		if len(candidates) == 0 {
			candidates = (&parser.FreeFormParser{}).Parse(text, opts)
			i.log.Debug().Int("found", len(candidates)).Msg("free-form fallback")
		}
	}

	return i.finish(provider, candidates, existing), nil
}

// ProcessGrid runs the spreadsheet-row parser over a 2D cell grid and
// applies the same post-processing as Process.
func (i *Importer) ProcessGrid(rows [][]any, mappings category.Mappings, existing dedup.Set) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			i.log.Error().Interface("panic", r).Msg("sheet parser crashed, discarding attempt")
			result = nil
			err = fmt.Errorf("%w: %v", ErrProcessingFailed, r)
		}
	}()

	opts := parser.Options{Mappings: mappings, DefaultCategory: i.defaultCategory}
	candidates := parser.ParseSheet(rows, opts)
	return i.finish(models.ProviderGeneric, candidates, existing), nil
}

func (i *Importer) finish(provider models.Provider, candidates []models.ImportedTransaction, existing dedup.Set) *Result {
	type dated struct {
		t    models.ImportedTransaction
		when time.Time
	}

	var complete []dated
	var incomplete []models.ImportedTransaction

	for _, c := range candidates {
		c.Cycle = i.assignCycle(c.Date)
		if when, ok := locale.ParseDate(c.Date); ok {
			complete = append(complete, dated{t: c, when: when})
		} else {
			c.Date = ""
			incomplete = append(incomplete, c)
		}
	}

	// Ascending by date; ties keep parse order.
	sort.SliceStable(complete, func(a, b int) bool {
		return complete[a].when.Before(complete[b].when)
	})

	sorted := make([]models.ImportedTransaction, len(complete))
	for idx, d := range complete {
		sorted[idx] = d.t
	}

	sorted = dedup.MarkDuplicates(sorted, existing)
	incomplete = dedup.MarkDuplicates(incomplete, existing)

	duplicates := 0
	for _, c := range sorted {
		if c.IsDuplicate {
			duplicates++
		}
	}
	for _, c := range incomplete {
		if c.IsDuplicate {
			duplicates++
		}
	}

	return &Result{
		Provider:   provider,
		Candidates: sorted,
		Incomplete: incomplete,
		Found:      len(sorted) + len(incomplete),
		Duplicates: duplicates,
	}
}

// assignCycle provisionally places a transaction in one of the two pay
// cycles by day of month: before the split day the salary payment is
// the active budget, from the split day on the mid-month advance is.
func (i *Importer) assignCycle(date string) models.Cycle {
	when, ok := locale.ParseDate(date)
	if !ok {
		return models.CycleSalary
	}
	if when.Day() < i.cycleSplitDay {
		return models.CycleSalary
	}
	return models.CycleAdvance
}
