package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ateliedalu/caixa/internal/domain"
)

// PurchaseService defines the behavior needed by PurchaseHandler.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]*domain.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

// PurchaseHandler handles purchase-related HTTP requests. The request body
// decodes straight into domain.Purchase so the legacy one-product shape is
// accepted on the wire exactly like in stored files.
type PurchaseHandler struct {
	purchaseUC PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseUC PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// Create records a purchase; immediate payment methods post to the cash
// ledger, deferred ones become a payable installment schedule.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var purchase domain.Purchase
	if err := json.NewDecoder(r.Body).Decode(&purchase); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.purchaseUC.CreatePurchase(r.Context(), purchase)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List lists purchases.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseUC.ListPurchases(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list purchases", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, purchases)
}

// Get retrieves a purchase by ID.
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing purchase ID", "")
		return
	}

	purchase, err := h.purchaseUC.GetPurchase(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, purchase)
}

// Delete removes a purchase record; payables and postings it generated stay.
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing purchase ID", "")
		return
	}

	if err := h.purchaseUC.DeletePurchase(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete purchase", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
