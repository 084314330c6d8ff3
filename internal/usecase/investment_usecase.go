package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// InvestmentUseCase records investment movements. A movement is an entry in
// the investimentos ledger plus, when its amount is non-zero, a mirrored
// posting in caixa with the same direction, both written in one critical
// section. Updates and deletes of an
// investment entry touch only the investimentos ledger and go through
// LedgerUseCase.
type InvestmentUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewInvestmentUseCase creates a new InvestmentUseCase.
func NewInvestmentUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *InvestmentUseCase {
	return &InvestmentUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// RecordMovementInput represents input for recording an investment movement.
type RecordMovementInput struct {
	Date        domain.Date
	Amount      domain.Amount
	Direction   domain.Direction
	Description string
}

// RecordMovement inserts the movement into the investimentos ledger and
// mirrors it into caixa, recomputing both balance columns.
func (uc *InvestmentUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*domain.Entry, error) {
	if !input.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}

	now := domain.NewDate(uc.now().UTC())
	movement := &domain.Entry{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Amount:      input.Amount,
		Direction:   input.Direction,
		Description: input.Description,
		RecordedAt:  now,
		UpdatedAt:   now,
	}

	description := input.Description
	if description == "" {
		description = "Sem descrição"
	}

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		appendPosting(doc, domain.LedgerInvestimentos, movement, uc.metrics)

		// A zero-amount movement gets no mirror: derived postings never
		// carry a zero amount.
		if input.Amount.IsPositive() {
			appendPosting(doc, domain.LedgerCaixa, &domain.Entry{
				ID:          uc.idGen.Generate(),
				Date:        input.Date,
				Amount:      input.Amount,
				Direction:   input.Direction,
				Description: fmt.Sprintf("Investimento: %s", description),
				Origin:      domain.OriginInvestimento,
				OriginID:    movement.ID,
				RecordedAt:  now,
				UpdatedAt:   now,
			}, uc.metrics)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesInserted.WithLabelValues(string(domain.LedgerInvestimentos)).Inc()
	}

	return movement, nil
}
