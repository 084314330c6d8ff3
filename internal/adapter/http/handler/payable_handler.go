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

// PayableService defines the behavior needed by PayableHandler.
type PayableService interface {
	CreatePayable(ctx context.Context, input usecase.CreatePayableInput) (*domain.Payable, error)
	ListPayables(ctx context.Context) ([]*domain.Payable, error)
	GetPayable(ctx context.Context, id string) (*domain.Payable, error)
	UpdatePayable(ctx context.Context, id string, input usecase.UpdatePayableInput) (*domain.Payable, error)
	DeletePayable(ctx context.Context, id string) error
}

// PayableHandler handles accounts-payable HTTP requests.
type PayableHandler struct {
	payableUC PayableService
}

// NewPayableHandler creates a new PayableHandler.
func NewPayableHandler(payableUC PayableService) *PayableHandler {
	return &PayableHandler{payableUC: payableUC}
}

// Create records a payable.
func (h *PayableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payable, err := h.payableUC.CreatePayable(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create payable", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, payable)
}

// List lists payables.
func (h *PayableHandler) List(w http.ResponseWriter, r *http.Request) {
	payables, err := h.payableUC.ListPayables(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payables", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, payables)
}

// Get retrieves a payable by ID.
func (h *PayableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payable ID", "")
		return
	}

	payable, err := h.payableUC.GetPayable(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, payable)
}

// Update patches a payable. Marking it paid with a positive paid amount
// settles it and posts the outflow.
func (h *PayableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payable ID", "")
		return
	}

	var req dto.UpdatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payable, err := h.payableUC.UpdatePayable(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update payable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, payable)
}

// Delete removes a payable.
func (h *PayableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payable ID", "")
		return
	}

	if err := h.payableUC.DeletePayable(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete payable", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
