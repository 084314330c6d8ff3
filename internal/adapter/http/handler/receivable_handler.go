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

// ReceivableService defines the behavior needed by ReceivableHandler.
type ReceivableService interface {
	CreateReceivable(ctx context.Context, input usecase.CreateReceivableInput) (*domain.Receivable, error)
	ListReceivables(ctx context.Context) ([]*domain.Receivable, error)
	GetReceivable(ctx context.Context, id string) (*domain.Receivable, error)
	UpdateReceivable(ctx context.Context, id string, input usecase.UpdateReceivableInput) (*domain.Receivable, error)
	DeleteReceivable(ctx context.Context, id string) error
}

// ReceivableHandler handles accounts-receivable HTTP requests.
type ReceivableHandler struct {
	receivableUC ReceivableService
}

// NewReceivableHandler creates a new ReceivableHandler.
func NewReceivableHandler(receivableUC ReceivableService) *ReceivableHandler {
	return &ReceivableHandler{receivableUC: receivableUC}
}

// Create records a receivable. It always starts open regardless of the body.
func (h *ReceivableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receivable, err := h.receivableUC.CreateReceivable(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create receivable", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, receivable)
}

// List lists receivables.
func (h *ReceivableHandler) List(w http.ResponseWriter, r *http.Request) {
	receivables, err := h.receivableUC.ListReceivables(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list receivables", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, receivables)
}

// Get retrieves a receivable by ID.
func (h *ReceivableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receivable ID", "")
		return
	}

	receivable, err := h.receivableUC.GetReceivable(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get receivable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, receivable)
}

// Update patches a receivable. Marking it received with a positive received
// amount settles it and posts the inflow.
func (h *ReceivableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receivable ID", "")
		return
	}

	var req dto.UpdateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receivable, err := h.receivableUC.UpdateReceivable(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update receivable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, receivable)
}

// Delete removes a receivable.
func (h *ReceivableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receivable ID", "")
		return
	}

	if err := h.receivableUC.DeleteReceivable(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete receivable", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
