package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewImported(t *testing.T) {
	a := NewImported()
	b := NewImported()

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("IDs must be unique and non-empty, got %q and %q", a.ID, b.ID)
	}
	if !a.NeedsReview {
		t.Error("new candidates must start pending review")
	}
}

func TestSenderOrDescription(t *testing.T) {
	tr := ImportedTransaction{Description: "PIX TRANSF 12345 MARIA", Sender: "MARIA DA SILVA"}
	if got := tr.SenderOrDescription(); got != "MARIA DA SILVA" {
		t.Errorf("got %q, want the sender", got)
	}

	tr.Sender = "   "
	if got := tr.SenderOrDescription(); got != "PIX TRANSF 12345 MARIA" {
		t.Errorf("got %q, want the description", got)
	}
}

func TestTransformsDoNotMutateReceiver(t *testing.T) {
	orig := NewImported()
	orig.Date = "01/01/2025"
	orig.Category = "Outros"

	edited := orig.WithDate("02/01/2025").WithCategory("Mercado").WithCycle(CycleAdvance).Reviewed()

	if orig.Date != "01/01/2025" || orig.Category != "Outros" || !orig.NeedsReview {
		t.Errorf("receiver was mutated: %+v", orig)
	}
	if edited.Date != "02/01/2025" || edited.Category != "Mercado" || edited.Cycle != CycleAdvance || edited.NeedsReview {
		t.Errorf("transforms not applied: %+v", edited)
	}
}

func TestClampDescription(t *testing.T) {
	if got := ClampDescription("  Supermercado  "); got != "Supermercado" {
		t.Errorf("got %q, want trimmed", got)
	}

	long := strings.Repeat("a", MaxDescriptionLen+20)
	if got := ClampDescription(long); len(got) != MaxDescriptionLen {
		t.Errorf("length: got %d, want %d", len(got), MaxDescriptionLen)
	}

	// Multi-byte runes must not be split at the cut point.
	accented := "x" + strings.Repeat("ç", MaxDescriptionLen)
	got := ClampDescription(accented)
	if len(got) > MaxDescriptionLen {
		t.Errorf("length: got %d, want <= %d", len(got), MaxDescriptionLen)
	}
	if !utf8.ValidString(got) {
		t.Errorf("clamped text is not valid UTF-8: %q", got)
	}
}

func TestDebtReferenceDate(t *testing.T) {
	d := Debt{PurchaseDate: "10/10/2025", DueDate: "05/11/2025"}
	if got := d.ReferenceDate(); got != "10/10/2025" {
		t.Errorf("got %q, want the purchase date", got)
	}

	d.PurchaseDate = ""
	if got := d.ReferenceDate(); got != "05/11/2025" {
		t.Errorf("got %q, want the due date", got)
	}
}
