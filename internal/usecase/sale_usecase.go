package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// SaleUseCase records sales and generates their side effects: a receivable
// for every item sold on Notinha terms and one cash inflow for the rest.
type SaleUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewSaleUseCase creates a new SaleUseCase.
func NewSaleUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *SaleUseCase {
	return &SaleUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// ListSales returns every sale.
func (uc *SaleUseCase) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Vendas, nil
}

// GetSale returns one sale by ID.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range doc.Vendas {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

// CreateSaleInput represents input for recording a sale.
type CreateSaleInput struct {
	Date     domain.Date
	Customer string
	Items    []domain.SaleItem
}

// CreateSale records the sale, opens a receivable per Notinha item (due 30,
// 60 or 90 days out by installment count) and posts the non-deferred total
// to the cash ledger. A sale with only Notinha items posts nothing.
func (uc *SaleUseCase) CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error) {
	now := domain.NewDate(uc.now().UTC())
	sale := &domain.Sale{
		ID:         uc.idGen.Generate(),
		Date:       input.Date,
		Customer:   input.Customer,
		Items:      input.Items,
		RecordedAt: now,
		UpdatedAt:  now,
	}
	saleDate := orNow(sale.Date, now)

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		doc.Vendas = append(doc.Vendas, sale)

		for _, item := range sale.DeferredItems() {
			due := saleDate.AddDate(0, 0, domain.DeferredDueDays(item.Installments))
			doc.ContasAReceber = append(doc.ContasAReceber, &domain.Receivable{
				ID:            uc.idGen.Generate(),
				SaleDate:      saleDate,
				DueDate:       domain.NewDate(due),
				Customer:      sale.Customer,
				SaleID:        sale.ID,
				Amount:        domain.NewAmount(item.Net()),
				PaymentMethod: domain.PaymentPix,
				Received:      false,
				RecordedAt:    now,
				UpdatedAt:     now,
			})
		}

		if cash := sale.CashTotal(); cash.IsPositive() {
			customer := sale.Customer
			if customer == "" {
				customer = "Cliente não informado"
			}
			appendPosting(doc, domain.LedgerCaixa, &domain.Entry{
				ID:          uc.idGen.Generate(),
				Date:        saleDate,
				Amount:      domain.NewAmount(cash),
				Direction:   domain.DirectionEntrada,
				Description: fmt.Sprintf("Venda: %s", customer),
				Origin:      domain.OriginVenda,
				OriginID:    sale.ID,
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
		uc.metrics.SalesRecorded.Inc()
	}

	return sale, nil
}

// DeleteSale removes a sale record. Receivables and postings it generated
// stay; they are corrected through their own operations.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(doc *domain.Document) error {
		for i, s := range doc.Vendas {
			if s.ID == id {
				doc.Vendas = append(doc.Vendas[:i], doc.Vendas[i+1:]...)
				return nil
			}
		}
		return domain.ErrSaleNotFound
	})
}
