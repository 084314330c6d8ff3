package domain

import (
	"encoding/json"
	"testing"
)

func TestPurchaseUnmarshal_ItemList(t *testing.T) {
	payload := `{
		"fornecedor": "Malharia Sul",
		"formaPagamentoCompra": "Boleto",
		"parcelas": 2,
		"itens": [
			{"codigoInterno": "CJ-01", "custoUnitario": 35.5},
			{"codigoInterno": "CJ-02", "custoUnitario": 14.5}
		]
	}`

	var p Purchase
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(p.Items))
	}
	if p.Total().String() != "50" {
		t.Fatalf("expected total 50, got %s", p.Total())
	}
	if p.PaysImmediately() {
		t.Fatalf("Boleto purchase must not settle immediately")
	}
}

func TestPurchaseUnmarshal_LegacySingleItem(t *testing.T) {
	payload := `{
		"fornecedor": "Malharia Sul",
		"formaPagamentoCompra": "Pix",
		"codigoInterno": "VT-07",
		"produto": "Vestido",
		"cor": "Marinho",
		"custoUnitario": 42
	}`

	var p Purchase
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Items) != 1 {
		t.Fatalf("expected the legacy shape to normalize to 1 item, got %d", len(p.Items))
	}
	item := p.Items[0]
	if item.InternalCode != "VT-07" || item.Product != "Vestido" || item.Color != "Marinho" {
		t.Fatalf("legacy fields not carried over: %+v", item)
	}
	if p.Total().String() != "42" {
		t.Fatalf("expected total 42, got %s", p.Total())
	}
	if !p.PaysImmediately() {
		t.Fatalf("Pix purchase must settle immediately")
	}
}

func TestPurchaseUnmarshal_EmptyStaysEmpty(t *testing.T) {
	var p Purchase
	if err := json.Unmarshal([]byte(`{"fornecedor":"X"}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(p.Items))
	}
	if !p.Total().IsZero() {
		t.Fatalf("expected zero total, got %s", p.Total())
	}
}
