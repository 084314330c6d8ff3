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

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	CreateSale(ctx context.Context, input usecase.CreateSaleInput) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
}

// SaleHandler handles sale-related HTTP requests.
type SaleHandler struct {
	saleUC SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleUC SaleService) *SaleHandler {
	return &SaleHandler{saleUC: saleUC}
}

// Create records a sale; Notinha items become receivables and the rest posts
// to the cash ledger.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.saleUC.CreateSale(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create sale", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sale)
}

// List lists sales.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.saleUC.ListSales(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sales)
}

// Get retrieves a sale by ID.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing sale ID", "")
		return
	}

	sale, err := h.saleUC.GetSale(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sale)
}

// Delete removes a sale record; postings and receivables it generated stay.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing sale ID", "")
		return
	}

	if err := h.saleUC.DeleteSale(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete sale", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
