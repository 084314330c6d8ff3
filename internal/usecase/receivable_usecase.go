package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// ReceivableUseCase manages accounts receivable. Receivables are always
// created open; only the settlement transition posts to the cash ledger.
type ReceivableUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewReceivableUseCase creates a new ReceivableUseCase.
func NewReceivableUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *ReceivableUseCase {
	return &ReceivableUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// ListReceivables returns every receivable.
func (uc *ReceivableUseCase) ListReceivables(ctx context.Context) ([]*domain.Receivable, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.ContasAReceber, nil
}

// GetReceivable returns one receivable by ID.
func (uc *ReceivableUseCase) GetReceivable(ctx context.Context, id string) (*domain.Receivable, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range doc.ContasAReceber {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrReceivableNotFound
}

// CreateReceivableInput represents input for creating a receivable.
type CreateReceivableInput struct {
	SaleDate      domain.Date
	DueDate       domain.Date
	Customer      string
	SaleID        string
	Amount        domain.Amount
	PaymentMethod string
}

// CreateReceivable records a new, still-open receivable.
func (uc *ReceivableUseCase) CreateReceivable(ctx context.Context, input CreateReceivableInput) (*domain.Receivable, error) {
	now := domain.NewDate(uc.now().UTC())
	receivable := &domain.Receivable{
		ID:            uc.idGen.Generate(),
		SaleDate:      input.SaleDate,
		DueDate:       input.DueDate,
		Customer:      input.Customer,
		SaleID:        input.SaleID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Received:      false,
		RecordedAt:    now,
		UpdatedAt:     now,
	}

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		doc.ContasAReceber = append(doc.ContasAReceber, receivable)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receivable, nil
}

// UpdateReceivableInput represents a partial update of a receivable. Nil
// fields keep their current value.
type UpdateReceivableInput struct {
	DueDate        *domain.Date
	Customer       *string
	Amount         *domain.Amount
	PaymentMethod  *string
	Received       *bool
	ReceivedAmount *domain.Amount
	ReceiptDate    *domain.Date
}

// UpdateReceivable merges the patch onto the receivable. The
// unreceived-to-received transition with a positive received amount posts
// exactly one inflow to the cash ledger.
func (uc *ReceivableUseCase) UpdateReceivable(ctx context.Context, id string, input UpdateReceivableInput) (*domain.Receivable, error) {
	now := domain.NewDate(uc.now().UTC())

	var updated *domain.Receivable
	settled := false
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		settled = false
		var receivable *domain.Receivable
		for _, r := range doc.ContasAReceber {
			if r.ID == id {
				receivable = r
				break
			}
		}
		if receivable == nil {
			return domain.ErrReceivableNotFound
		}

		wasReceived := receivable.Received

		if input.DueDate != nil {
			receivable.DueDate = *input.DueDate
		}
		if input.Customer != nil {
			receivable.Customer = *input.Customer
		}
		if input.Amount != nil {
			receivable.Amount = *input.Amount
		}
		if input.PaymentMethod != nil {
			receivable.PaymentMethod = *input.PaymentMethod
		}
		if input.Received != nil {
			receivable.Received = *input.Received
		}
		if input.ReceivedAmount != nil {
			receivable.ReceivedAmount = *input.ReceivedAmount
		}
		if input.ReceiptDate != nil {
			receivable.ReceiptDate = *input.ReceiptDate
		}
		receivable.UpdatedAt = now

		if receivable.Settled() && !wasReceived {
			uc.postSettlement(doc, receivable, now)
			settled = true
		}

		updated = receivable
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled && uc.metrics != nil {
		uc.metrics.ReceivablesSettled.Inc()
	}

	return updated, nil
}

// DeleteReceivable removes a receivable. Postings already made for it stay
// in the ledger.
func (uc *ReceivableUseCase) DeleteReceivable(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(doc *domain.Document) error {
		for i, r := range doc.ContasAReceber {
			if r.ID == id {
				doc.ContasAReceber = append(doc.ContasAReceber[:i], doc.ContasAReceber[i+1:]...)
				return nil
			}
		}
		return domain.ErrReceivableNotFound
	})
}

func (uc *ReceivableUseCase) postSettlement(doc *domain.Document, receivable *domain.Receivable, now domain.Date) {
	customer := receivable.Customer
	if customer == "" {
		customer = "Cliente não informado"
	}

	appendPosting(doc, domain.LedgerCaixa, &domain.Entry{
		ID:          uc.idGen.Generate(),
		Date:        orNow(receivable.ReceiptDate, now),
		Amount:      receivable.ReceivedAmount,
		Direction:   domain.DirectionEntrada,
		Description: fmt.Sprintf("Recebimento: %s - %s", customer, receivable.SaleID),
		Origin:      domain.OriginContasAReceber,
		OriginID:    receivable.ID,
		RecordedAt:  now,
		UpdatedAt:   now,
	}, uc.metrics)
}
