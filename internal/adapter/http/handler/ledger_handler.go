package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ateliedalu/caixa/internal/adapter/http/dto"
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	ListEntries(ctx context.Context, kind domain.LedgerKind) ([]*domain.Entry, error)
	GetEntry(ctx context.Context, kind domain.LedgerKind, id string) (*domain.Entry, error)
	InsertEntry(ctx context.Context, kind domain.LedgerKind, input usecase.InsertEntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, kind domain.LedgerKind, id string, input usecase.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, kind domain.LedgerKind, id string) error
}

// LedgerHandler serves one ledger's entry CRUD. The same handler type backs
// both the caixa and investimentos routes, bound to its kind at construction.
type LedgerHandler struct {
	ledgerUC LedgerService
	kind     domain.LedgerKind
}

// NewLedgerHandler creates a LedgerHandler bound to one ledger.
func NewLedgerHandler(ledgerUC LedgerService, kind domain.LedgerKind) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, kind: kind}
}

// List returns every entry in chronological order with running balances.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledgerUC.ListEntries(r.Context(), h.kind)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Balance: domain.NewAmount(domain.LedgerBalance(entries)),
	})
}

// Get retrieves one entry by ID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.ledgerUC.GetEntry(r.Context(), h.kind, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Create inserts a new entry and recomputes the ledger.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.InsertEntry(r.Context(), h.kind, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to insert entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Update patches an entry and recomputes the ledger.
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.ledgerUC.UpdateEntry(r.Context(), h.kind, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes an entry and recomputes the ledger.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.ledgerUC.DeleteEntry(r.Context(), h.kind, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
