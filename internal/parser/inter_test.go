package parser

import (
	"testing"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

func TestInterParser_Parse(t *testing.T) {
	p := &InterParser{}

	text := `Banco Inter S.A.
05 Nov 2025
Total de entradas
Pix recebido - João Pereira
850,00
Total de saídas
Compra aprovada Supermercado Azul
231,76`

	txns := p.Parse(text, Options{})

	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	if txns[0].Date != "05/11/2025" {
		t.Errorf("txn[0].Date: got %q, want %q", txns[0].Date, "05/11/2025")
	}
	if txns[0].Amount != 850.00 {
		t.Errorf("txn[0].Amount: got %f, want %f", txns[0].Amount, 850.00)
	}
	if txns[0].Type != models.TypeIncome {
		t.Errorf("txn[0].Type: got %q, want income", txns[0].Type)
	}

	if txns[1].Amount != 231.76 {
		t.Errorf("txn[1].Amount: got %f, want %f", txns[1].Amount, 231.76)
	}
	if txns[1].Type != models.TypeExpense {
		t.Errorf("txn[1].Type: got %q, want expense", txns[1].Type)
	}
}

func TestInterParser_DateMarkerSwitchesContext(t *testing.T) {
	p := &InterParser{}

	text := `05 nov 2025
Total de saídas
Uber Trip
18,90
06 nov 2025
Farmácia São João
54,30`

	txns := p.Parse(text, Options{})

	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}
	if txns[0].Date != "05/11/2025" {
		t.Errorf("txn[0].Date: got %q, want %q", txns[0].Date, "05/11/2025")
	}
	if txns[1].Date != "06/11/2025" {
		t.Errorf("txn[1].Date: got %q, want %q", txns[1].Date, "06/11/2025")
	}
	// Section mode persists across date markers.
	if txns[1].Type != models.TypeExpense {
		t.Errorf("txn[1].Type: got %q, want expense", txns[1].Type)
	}
}

func TestInterParser_ValueWithoutDescriptionSkipped(t *testing.T) {
	p := &InterParser{}

	text := `05 Nov 2025
Total de entradas
850,00`

	if txns := p.Parse(text, Options{}); len(txns) != 0 {
		t.Fatalf("transactions: got %d, want 0", len(txns))
	}
}
