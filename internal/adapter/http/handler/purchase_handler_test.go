package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ateliedalu/caixa/internal/domain"
)

type purchaseServiceStub struct {
	createFn func(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	listFn   func(ctx context.Context) ([]*domain.Purchase, error)
	getFn    func(ctx context.Context, id string) (*domain.Purchase, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *purchaseServiceStub) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	return s.createFn(ctx, purchase)
}

func (s *purchaseServiceStub) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	return s.listFn(ctx)
}

func (s *purchaseServiceStub) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return s.getFn(ctx, id)
}

func (s *purchaseServiceStub) DeletePurchase(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestPurchaseHandler_Create_ItemList(t *testing.T) {
	var captured domain.Purchase
	h := NewPurchaseHandler(&purchaseServiceStub{
		createFn: func(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
			captured = purchase
			return &purchase, nil
		},
	})

	body := []byte(`{
		"fornecedor": "Malharia Sul",
		"formaPagamentoCompra": "Pix",
		"itens": [
			{"codigoInterno": "CJ-01", "custoUnitario": 35.5},
			{"codigoInterno": "CJ-02", "custoUnitario": 14.5}
		]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/compras", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(captured.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(captured.Items))
	}
	if captured.Total().String() != "50" {
		t.Fatalf("expected total 50, got %s", captured.Total())
	}
}

func TestPurchaseHandler_Create_LegacySingleProductBody(t *testing.T) {
	var captured domain.Purchase
	h := NewPurchaseHandler(&purchaseServiceStub{
		createFn: func(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
			captured = purchase
			return &purchase, nil
		},
	})

	body := []byte(`{
		"fornecedor": "Atacado Norte",
		"formaPagamentoCompra": "Dinheiro",
		"codigoInterno": "VT-07",
		"produto": "Vestido",
		"custoUnitario": 42
	}`)
	req := httptest.NewRequest(http.MethodPost, "/compras", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(captured.Items) != 1 {
		t.Fatalf("legacy body must normalize to one item, got %d", len(captured.Items))
	}
	if captured.Items[0].InternalCode != "VT-07" || captured.Items[0].UnitCost.String() != "42" {
		t.Fatalf("unexpected normalized item %+v", captured.Items[0])
	}
}

func TestPurchaseHandler_Get_NotFound(t *testing.T) {
	h := NewPurchaseHandler(&purchaseServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Purchase, error) {
			return nil, domain.ErrPurchaseNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/compras/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
