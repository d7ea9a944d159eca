package parser

import (
	"testing"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

func TestGenericParser_Parse(t *testing.T) {
	p := &GenericParser{}

	text := `Extrato geral
12 de março de 2025
Pagamento recebido
Cliente Fulano
+ R$ 320,00
Compra padaria
- R$ 15,50`

	txns := p.Parse(text, Options{})

	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	if txns[0].Date != "12/03/2025" {
		t.Errorf("txn[0].Date: got %q, want %q", txns[0].Date, "12/03/2025")
	}
	if txns[0].Amount != 320.00 {
		t.Errorf("txn[0].Amount: got %f, want %f", txns[0].Amount, 320.00)
	}
	if txns[0].Type != models.TypeIncome {
		t.Errorf("txn[0].Type: got %q, want income", txns[0].Type)
	}

	// The date heading covers every record until the next one.
	if txns[1].Date != "12/03/2025" {
		t.Errorf("txn[1].Date: got %q, want %q", txns[1].Date, "12/03/2025")
	}
	if txns[1].Amount != 15.50 {
		t.Errorf("txn[1].Amount: got %f, want %f", txns[1].Amount, 15.50)
	}
	if txns[1].Type != models.TypeExpense {
		t.Errorf("txn[1].Type: got %q, want expense", txns[1].Type)
	}
}

func TestGenericParser_SignFallback(t *testing.T) {
	p := &GenericParser{}

	// No direction keyword in the description: the sign decides.
	text := `05/04/2025
Cinema
-30,00`

	txns := p.Parse(text, Options{})

	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if txns[0].Type != models.TypeExpense {
		t.Errorf("Type: got %q, want expense", txns[0].Type)
	}
	if txns[0].Amount != 30.00 {
		t.Errorf("Amount: got %f, want %f", txns[0].Amount, 30.00)
	}
}

func TestGenericParser_PartialOnNewDate(t *testing.T) {
	p := &GenericParser{}

	text := `05/04/2025
Assinatura streaming
10/04/2025
Mercado
- R$ 50,00`

	txns := p.Parse(text, Options{})

	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}
	if txns[0].Amount != 0 {
		t.Errorf("txn[0].Amount: got %f, want 0", txns[0].Amount)
	}
	if txns[0].Date != "05/04/2025" {
		t.Errorf("txn[0].Date: got %q, want %q", txns[0].Date, "05/04/2025")
	}
	if txns[1].Amount != 50.00 {
		t.Errorf("txn[1].Amount: got %f, want %f", txns[1].Amount, 50.00)
	}
}

func TestGenericParser_BareIntegersAreNotValues(t *testing.T) {
	p := &GenericParser{}

	// Page numbers and years must not be read as amounts.
	text := `05/04/2025
Mensalidade academia
2025
89,90`

	txns := p.Parse(text, Options{})

	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if txns[0].Amount != 89.90 {
		t.Errorf("Amount: got %f, want %f", txns[0].Amount, 89.90)
	}
	if txns[0].Description != "Mensalidade academia 2025" {
		t.Errorf("Description: got %q", txns[0].Description)
	}
}
