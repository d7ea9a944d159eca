package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

func TestFreeFormParser_Parse(t *testing.T) {
	p := &FreeFormParser{}

	text := `20/12/2025 Supermercado    150,00
Farmácia São João R$ 89,90
15/11/2025 aluguel 1.200
comprei pão
450,00`

	txns := p.Parse(text, Options{})

	if len(txns) != 3 {
		t.Fatalf("transactions: got %d, want 3", len(txns))
	}

	if txns[0].Date != "20/12/2025" {
		t.Errorf("txn[0].Date: got %q, want %q", txns[0].Date, "20/12/2025")
	}
	if txns[0].Description != "Supermercado" {
		t.Errorf("txn[0].Description: got %q, want %q", txns[0].Description, "Supermercado")
	}
	if txns[0].Amount != 150.00 {
		t.Errorf("txn[0].Amount: got %f, want %f", txns[0].Amount, 150.00)
	}
	if txns[0].Type != models.TypeExpense {
		t.Errorf("txn[0].Type: got %q, want expense", txns[0].Type)
	}

	// No date token: the record stays dateless for manual completion.
	if txns[1].Date != "" {
		t.Errorf("txn[1].Date: got %q, want empty", txns[1].Date)
	}
	if txns[1].Description != "Farmácia São João" {
		t.Errorf("txn[1].Description: got %q", txns[1].Description)
	}
	if txns[1].Amount != 89.90 {
		t.Errorf("txn[1].Amount: got %f, want %f", txns[1].Amount, 89.90)
	}

	// "1.200" reads as one thousand two hundred, not 1.2.
	if txns[2].Amount != 1200.00 {
		t.Errorf("txn[2].Amount: got %f, want %f", txns[2].Amount, 1200.00)
	}
}

func TestFreeFormParser_DayMonthDefaultsToCurrentYear(t *testing.T) {
	p := &FreeFormParser{}

	txns := p.Parse("20/12 Supermercado 150,00", Options{})

	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	want := fmt.Sprintf("20/12/%04d", time.Now().Year())
	if txns[0].Date != want {
		t.Errorf("Date: got %q, want %q", txns[0].Date, want)
	}
}

func TestFreeFormParser_CurrencyAmountWins(t *testing.T) {
	p := &FreeFormParser{}

	// Two numbers on the line: the currency-marked one is the value and
	// the other stays in the description.
	txns := p.Parse("Pedido 4412 iFood R$ 67,40", Options{})

	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if txns[0].Amount != 67.40 {
		t.Errorf("Amount: got %f, want %f", txns[0].Amount, 67.40)
	}
	if txns[0].Description != "Pedido 4412 iFood" {
		t.Errorf("Description: got %q", txns[0].Description)
	}
}

func TestFreeFormParser_DropsUnusableLines(t *testing.T) {
	p := &FreeFormParser{}

	for _, line := range []string{
		"comprei pão",   // no amount
		"450,00",        // no description
		"Estorno -5,00", // non-positive amount
	} {
		if txns := p.Parse(line, Options{}); len(txns) != 0 {
			t.Errorf("%q: got %d transaction(s), want 0", line, len(txns))
		}
	}
}
