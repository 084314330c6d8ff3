package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
)

func newSaleUC(store *fakeStore) *SaleUseCase {
	uc := NewSaleUseCase(store, &seqIDGenerator{}, nil)
	uc.now = fixedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return uc
}

func TestSaleUseCase_MixedItemsSplitCashAndReceivable(t *testing.T) {
	store := newFakeStore()
	uc := newSaleUC(store)

	sale, err := uc.CreateSale(context.Background(), CreateSaleInput{
		Date:     mustDate("2024-05-10"),
		Customer: "Ana",
		Items: []domain.SaleItem{
			{Value: domain.AmountFromFloat(50), PaymentMethod: domain.PaymentPix},
			{Value: domain.AmountFromFloat(30), PaymentMethod: domain.PaymentNotinha, Installments: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.doc.Caixa) != 1 {
		t.Fatalf("expected 1 cash posting, got %d", len(store.doc.Caixa))
	}
	posting := store.doc.Caixa[0]
	if posting.Amount.String() != "50" || posting.Direction != domain.DirectionEntrada {
		t.Fatalf("expected inflow of 50, got %s %s", posting.Direction, posting.Amount)
	}
	if posting.Origin != domain.OriginVenda || posting.OriginID != sale.ID {
		t.Fatalf("expected posting to reference the sale, got %+v", posting)
	}

	if len(store.doc.ContasAReceber) != 1 {
		t.Fatalf("expected 1 receivable, got %d", len(store.doc.ContasAReceber))
	}
	receivable := store.doc.ContasAReceber[0]
	if receivable.Amount.String() != "30" || receivable.Received {
		t.Fatalf("expected open receivable of 30, got %+v", receivable)
	}
	wantDue := mustDate("2024-05-10").AddDate(0, 0, 30)
	if !receivable.DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %s, got %s", wantDue, receivable.DueDate)
	}
	if receivable.PaymentMethod != domain.PaymentPix {
		t.Fatalf("deferred items settle as Pix, got %s", receivable.PaymentMethod)
	}
}

func TestSaleUseCase_AllDeferredPostsNothing(t *testing.T) {
	store := newFakeStore()
	uc := newSaleUC(store)

	_, err := uc.CreateSale(context.Background(), CreateSaleInput{
		Customer: "Bia",
		Items: []domain.SaleItem{
			{Value: domain.AmountFromFloat(30), PaymentMethod: domain.PaymentNotinha, Installments: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.doc.Caixa) != 0 {
		t.Fatalf("a fully deferred sale must not post to caixa, got %d entries", len(store.doc.Caixa))
	}
	if len(store.doc.ContasAReceber) != 1 {
		t.Fatalf("expected 1 receivable, got %d", len(store.doc.ContasAReceber))
	}
}

func TestSaleUseCase_DiscountReducesCashPosting(t *testing.T) {
	store := newFakeStore()
	uc := newSaleUC(store)

	_, err := uc.CreateSale(context.Background(), CreateSaleInput{
		Customer: "Carla",
		Items: []domain.SaleItem{
			{Value: domain.AmountFromFloat(100), Discount: domain.AmountFromFloat(15), PaymentMethod: domain.PaymentDinheiro},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.doc.Caixa[0].Amount.String() != "85" {
		t.Fatalf("expected posting of 85, got %s", store.doc.Caixa[0].Amount)
	}
}

func TestSaleUseCase_InstallmentsStretchDueDates(t *testing.T) {
	store := newFakeStore()
	uc := newSaleUC(store)

	_, err := uc.CreateSale(context.Background(), CreateSaleInput{
		Date:     mustDate("2024-05-01"),
		Customer: "Dora",
		Items: []domain.SaleItem{
			{Value: domain.AmountFromFloat(10), PaymentMethod: domain.PaymentNotinha, Installments: 2},
			{Value: domain.AmountFromFloat(20), PaymentMethod: domain.PaymentNotinha, Installments: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.doc.ContasAReceber) != 2 {
		t.Fatalf("expected 2 receivables, got %d", len(store.doc.ContasAReceber))
	}
	first := store.doc.ContasAReceber[0]
	second := store.doc.ContasAReceber[1]
	if !first.DueDate.Equal(mustDate("2024-05-01").AddDate(0, 0, 60)) {
		t.Fatalf("2x item must be due in 60 days, got %s", first.DueDate)
	}
	if !second.DueDate.Equal(mustDate("2024-05-01").AddDate(0, 0, 90)) {
		t.Fatalf("3x item must be due in 90 days, got %s", second.DueDate)
	}
}

func TestSaleUseCase_DeleteSale(t *testing.T) {
	store := newFakeStore()
	uc := newSaleUC(store)
	ctx := context.Background()

	sale, err := uc.CreateSale(ctx, CreateSaleInput{
		Customer: "Eva",
		Items:    []domain.SaleItem{{Value: domain.AmountFromFloat(10), PaymentMethod: domain.PaymentPix}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.doc.Vendas) != 0 {
		t.Fatalf("expected sale to be removed")
	}
	// The cash posting is not rolled back by deleting the sale record.
	if len(store.doc.Caixa) != 1 {
		t.Fatalf("expected the posting to remain, got %d", len(store.doc.Caixa))
	}
}
