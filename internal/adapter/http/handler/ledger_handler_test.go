package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ateliedalu/caixa/internal/adapter/http/dto"
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

type ledgerServiceStub struct {
	listFn   func(ctx context.Context, kind domain.LedgerKind) ([]*domain.Entry, error)
	getFn    func(ctx context.Context, kind domain.LedgerKind, id string) (*domain.Entry, error)
	insertFn func(ctx context.Context, kind domain.LedgerKind, input usecase.InsertEntryInput) (*domain.Entry, error)
	updateFn func(ctx context.Context, kind domain.LedgerKind, id string, input usecase.UpdateEntryInput) (*domain.Entry, error)
	deleteFn func(ctx context.Context, kind domain.LedgerKind, id string) error
}

func (s *ledgerServiceStub) ListEntries(ctx context.Context, kind domain.LedgerKind) ([]*domain.Entry, error) {
	return s.listFn(ctx, kind)
}

func (s *ledgerServiceStub) GetEntry(ctx context.Context, kind domain.LedgerKind, id string) (*domain.Entry, error) {
	return s.getFn(ctx, kind, id)
}

func (s *ledgerServiceStub) InsertEntry(ctx context.Context, kind domain.LedgerKind, input usecase.InsertEntryInput) (*domain.Entry, error) {
	return s.insertFn(ctx, kind, input)
}

func (s *ledgerServiceStub) UpdateEntry(ctx context.Context, kind domain.LedgerKind, id string, input usecase.UpdateEntryInput) (*domain.Entry, error) {
	return s.updateFn(ctx, kind, id, input)
}

func (s *ledgerServiceStub) DeleteEntry(ctx context.Context, kind domain.LedgerKind, id string) error {
	return s.deleteFn(ctx, kind, id)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLedgerHandler_Create_Success(t *testing.T) {
	entry := &domain.Entry{
		ID:        "e1",
		Amount:    domain.AmountFromFloat(50),
		Direction: domain.DirectionEntrada,
	}

	var capturedKind domain.LedgerKind
	var captured usecase.InsertEntryInput
	h := NewLedgerHandler(&ledgerServiceStub{
		insertFn: func(ctx context.Context, kind domain.LedgerKind, input usecase.InsertEntryInput) (*domain.Entry, error) {
			capturedKind = kind
			captured = input
			return entry, nil
		},
	}, domain.LedgerCaixa)

	body := []byte(`{"valor": 50, "tipo": "entrada", "descricao": "Venda balcão", "data": "2024-01-15"}`)
	req := httptest.NewRequest(http.MethodPost, "/caixa", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedKind != domain.LedgerCaixa {
		t.Fatalf("expected caixa kind, got %s", capturedKind)
	}
	if captured.Direction != domain.DirectionEntrada || captured.Amount.String() != "50" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "e1" {
		t.Fatalf("expected entry ID e1, got %s", resp.ID)
	}
}

func TestLedgerHandler_Create_InvalidJSON(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		insertFn: func(ctx context.Context, kind domain.LedgerKind, input usecase.InsertEntryInput) (*domain.Entry, error) {
			t.Fatal("InsertEntry should not be called for invalid payload")
			return nil, nil
		},
	}, domain.LedgerCaixa)

	req := httptest.NewRequest(http.MethodPost, "/caixa", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_List_IncludesClosingBalance(t *testing.T) {
	entries := []*domain.Entry{
		{ID: "e1", Amount: domain.AmountFromFloat(100), Direction: domain.DirectionEntrada, Balance: domain.AmountFromFloat(100)},
		{ID: "e2", Amount: domain.AmountFromFloat(30), Direction: domain.DirectionSaida, Balance: domain.AmountFromFloat(70)},
	}

	h := NewLedgerHandler(&ledgerServiceStub{
		listFn: func(ctx context.Context, kind domain.LedgerKind) ([]*domain.Entry, error) {
			return entries, nil
		},
	}, domain.LedgerCaixa)

	req := httptest.NewRequest(http.MethodGet, "/caixa", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListEntriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Balance.String() != "70" {
		t.Fatalf("expected closing balance 70, got %s", resp.Balance)
	}
}

func TestLedgerHandler_Get_NotFound(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		getFn: func(ctx context.Context, kind domain.LedgerKind, id string) (*domain.Entry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}, domain.LedgerCaixa)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/caixa/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLedgerHandler_Update_PatchReachesService(t *testing.T) {
	var captured usecase.UpdateEntryInput
	h := NewLedgerHandler(&ledgerServiceStub{
		updateFn: func(ctx context.Context, kind domain.LedgerKind, id string, input usecase.UpdateEntryInput) (*domain.Entry, error) {
			captured = input
			return &domain.Entry{ID: id}, nil
		},
	}, domain.LedgerInvestimentos)

	body := []byte(`{"tipo": "saida"}`)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/investimentos/e1", bytes.NewReader(body)), "id", "e1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Direction == nil || *captured.Direction != domain.DirectionSaida {
		t.Fatalf("expected direction patch, got %+v", captured)
	}
	if captured.Amount != nil || captured.Date != nil || captured.Description != nil {
		t.Fatalf("absent fields must stay nil, got %+v", captured)
	}
}

func TestLedgerHandler_Delete_Success(t *testing.T) {
	deleted := ""
	h := NewLedgerHandler(&ledgerServiceStub{
		deleteFn: func(ctx context.Context, kind domain.LedgerKind, id string) error {
			deleted = id
			return nil
		},
	}, domain.LedgerCaixa)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/caixa/e1", nil), "id", "e1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "e1" {
		t.Fatalf("expected delete of e1, got %q", deleted)
	}
}
