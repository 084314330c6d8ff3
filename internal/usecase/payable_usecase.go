package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// PayableUseCase manages accounts payable. Settling a payable is what posts
// to the cash ledger; the payable itself never carries a running balance.
type PayableUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewPayableUseCase creates a new PayableUseCase.
func NewPayableUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *PayableUseCase {
	return &PayableUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// ListPayables returns every payable.
func (uc *PayableUseCase) ListPayables(ctx context.Context) ([]*domain.Payable, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.ContasAPagar, nil
}

// GetPayable returns one payable by ID.
func (uc *PayableUseCase) GetPayable(ctx context.Context, id string) (*domain.Payable, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range doc.ContasAPagar {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPayableNotFound
}

// CreatePayableInput represents input for creating a payable.
type CreatePayableInput struct {
	PurchaseDate  domain.Date
	DueDate       domain.Date
	Supplier      string
	PurchaseID    string
	Description   string
	Amount        domain.Amount
	PaymentMethod string
	Installment   int
	Installments  int
	Paid          bool
	PaidAmount    domain.Amount
	PaymentDate   domain.Date
}

// CreatePayable records a payable. A payable created already paid with a
// positive paid amount posts its settlement to the cash ledger immediately.
func (uc *PayableUseCase) CreatePayable(ctx context.Context, input CreatePayableInput) (*domain.Payable, error) {
	now := domain.NewDate(uc.now().UTC())
	payable := &domain.Payable{
		ID:            uc.idGen.Generate(),
		PurchaseDate:  input.PurchaseDate,
		DueDate:       input.DueDate,
		Supplier:      input.Supplier,
		PurchaseID:    input.PurchaseID,
		Description:   input.Description,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Installment:   input.Installment,
		Installments:  input.Installments,
		Paid:          input.Paid,
		PaidAmount:    input.PaidAmount,
		PaymentDate:   input.PaymentDate,
		RecordedAt:    now,
		UpdatedAt:     now,
	}

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		doc.ContasAPagar = append(doc.ContasAPagar, payable)
		if payable.Settled() {
			uc.postSettlement(doc, payable, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payable, nil
}

// UpdatePayableInput represents a partial update of a payable. Nil fields
// keep their current value.
type UpdatePayableInput struct {
	DueDate       *domain.Date
	Supplier      *string
	Description   *string
	Amount        *domain.Amount
	PaymentMethod *string
	Paid          *bool
	PaidAmount    *domain.Amount
	PaymentDate   *domain.Date
}

// UpdatePayable merges the patch onto the payable. The unpaid-to-paid
// transition with a positive paid amount posts exactly one outflow to the
// cash ledger; updating an already-paid payable never posts again.
func (uc *PayableUseCase) UpdatePayable(ctx context.Context, id string, input UpdatePayableInput) (*domain.Payable, error) {
	now := domain.NewDate(uc.now().UTC())

	var updated *domain.Payable
	settled := false
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		settled = false
		var payable *domain.Payable
		for _, p := range doc.ContasAPagar {
			if p.ID == id {
				payable = p
				break
			}
		}
		if payable == nil {
			return domain.ErrPayableNotFound
		}

		wasPaid := payable.Paid

		if input.DueDate != nil {
			payable.DueDate = *input.DueDate
		}
		if input.Supplier != nil {
			payable.Supplier = *input.Supplier
		}
		if input.Description != nil {
			payable.Description = *input.Description
		}
		if input.Amount != nil {
			payable.Amount = *input.Amount
		}
		if input.PaymentMethod != nil {
			payable.PaymentMethod = *input.PaymentMethod
		}
		if input.Paid != nil {
			payable.Paid = *input.Paid
		}
		if input.PaidAmount != nil {
			payable.PaidAmount = *input.PaidAmount
		}
		if input.PaymentDate != nil {
			payable.PaymentDate = *input.PaymentDate
		}
		payable.UpdatedAt = now

		if payable.Settled() && !wasPaid {
			uc.postSettlement(doc, payable, now)
			settled = true
		}

		updated = payable
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled && uc.metrics != nil {
		uc.metrics.PayablesSettled.Inc()
	}

	return updated, nil
}

// DeletePayable removes a payable. Postings already made for it stay in the
// ledger.
func (uc *PayableUseCase) DeletePayable(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(doc *domain.Document) error {
		for i, p := range doc.ContasAPagar {
			if p.ID == id {
				doc.ContasAPagar = append(doc.ContasAPagar[:i], doc.ContasAPagar[i+1:]...)
				return nil
			}
		}
		return domain.ErrPayableNotFound
	})
}

func (uc *PayableUseCase) postSettlement(doc *domain.Document, payable *domain.Payable, now domain.Date) {
	supplier := payable.Supplier
	if supplier == "" {
		supplier = "Fornecedor"
	}
	description := payable.Description
	if description == "" {
		description = "Conta a pagar"
	}

	appendPosting(doc, domain.LedgerCaixa, &domain.Entry{
		ID:          uc.idGen.Generate(),
		Date:        orNow(payable.PaymentDate, now),
		Amount:      payable.PaidAmount,
		Direction:   domain.DirectionSaida,
		Description: fmt.Sprintf("Pagamento: %s - %s", supplier, description),
		Origin:      domain.OriginContasAPagar,
		OriginID:    payable.ID,
		RecordedAt:  now,
		UpdatedAt:   now,
	}, uc.metrics)
}
