package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// PurchaseUseCase records supplier purchases. Pix and Dinheiro purchases
// settle through the cash ledger at creation; other payment methods become a
// payable installment schedule instead.
type PurchaseUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewPurchaseUseCase creates a new PurchaseUseCase.
func NewPurchaseUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *PurchaseUseCase {
	return &PurchaseUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// ListPurchases returns every purchase.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Compras, nil
}

// GetPurchase returns one purchase by ID.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range doc.Compras {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPurchaseNotFound
}

// CreatePurchase records the purchase and generates its financial side:
// one cash outflow for immediate payment methods (skipped when the total is
// zero), or an even installment schedule in accounts payable, one payable
// per installment due 30 days apart.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	now := domain.NewDate(uc.now().UTC())
	purchase.ID = uc.idGen.Generate()
	purchase.RecordedAt = now
	purchase.UpdatedAt = now
	purchaseDate := orNow(purchase.Date, now)

	installments := 0
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		installments = 0
		stored := purchase
		doc.Compras = append(doc.Compras, &stored)

		if purchase.PaymentMethod == "" {
			return nil
		}

		total := purchase.Total()
		supplier := purchase.Supplier
		if supplier == "" {
			supplier = "Fornecedor"
		}

		if purchase.PaysImmediately() {
			if !total.IsPositive() {
				return nil
			}
			appendPosting(doc, domain.LedgerCaixa, &domain.Entry{
				ID:          uc.idGen.Generate(),
				Date:        purchaseDate,
				Amount:      domain.NewAmount(total),
				Direction:   domain.DirectionSaida,
				Description: fmt.Sprintf("Compra: %s - %s", supplier, purchase.PaymentMethod),
				Origin:      domain.OriginCompra,
				OriginID:    purchase.ID,
				RecordedAt:  now,
				UpdatedAt:   now,
			}, uc.metrics)
			return nil
		}

		n := purchase.Installments
		if n < 1 {
			n = 1
		}
		share := total.DivRound(decimal.NewFromInt(int64(n)), 2)

		for i := 1; i <= n; i++ {
			due := purchaseDate.AddDate(0, 0, i*30)
			doc.ContasAPagar = append(doc.ContasAPagar, &domain.Payable{
				ID:            uc.idGen.Generate(),
				PurchaseDate:  purchaseDate,
				DueDate:       domain.NewDate(due),
				Supplier:      purchase.Supplier,
				PurchaseID:    purchase.ID,
				Description:   fmt.Sprintf("Compra %s - Parcela %d/%d", supplier, i, n),
				Amount:        domain.NewAmount(share),
				PaymentMethod: purchase.PaymentMethod,
				Installment:   i,
				Installments:  n,
				Paid:          false,
				RecordedAt:    now,
				UpdatedAt:     now,
			})
			installments++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PurchasesRecorded.Inc()
		uc.metrics.InstallmentsCreated.Add(float64(installments))
	}

	return &purchase, nil
}

// DeletePurchase removes a purchase record. Payables and postings it
// generated stay; they are corrected through their own operations.
func (uc *PurchaseUseCase) DeletePurchase(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(doc *domain.Document) error {
		for i, p := range doc.Compras {
			if p.ID == id {
				doc.Compras = append(doc.Compras[:i], doc.Compras[i+1:]...)
				return nil
			}
		}
		return domain.ErrPurchaseNotFound
	})
}
