package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ateliedalu/caixa/internal/adapter/http/dto"
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

// InvestmentService defines the behavior needed by InvestmentHandler.
type InvestmentService interface {
	RecordMovement(ctx context.Context, input usecase.RecordMovementInput) (*domain.Entry, error)
}

// InvestmentHandler handles investment movement requests. Reads, updates and
// deletes of investment entries go through the investimentos ledger routes;
// this handler only covers the movement that mirrors into caixa.
type InvestmentHandler struct {
	investmentUC InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentUC InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentUC: investmentUC}
}

// Create records a movement in the investimentos ledger and its mirrored
// caixa posting.
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.investmentUC.RecordMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(movement))
}
