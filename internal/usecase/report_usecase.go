package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ateliedalu/caixa/internal/domain"
)

// ReportUseCase derives summary figures from the persisted state.
type ReportUseCase struct {
	store DocumentStore
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(store DocumentStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// Summary holds the headline figures of the business.
type Summary struct {
	CaixaBalance         decimal.Decimal
	InvestimentosBalance decimal.Decimal
	OpenPayables         decimal.Decimal
	OpenPayablesCount    int
	OpenReceivables      decimal.Decimal
	OpenReceivablesCount int
}

// Summarize computes current balances and the open payable/receivable
// totals. Settled records are excluded; an open record counts its remaining
// face value.
func (uc *ReportUseCase) Summarize(ctx context.Context) (*Summary, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		CaixaBalance:         domain.LedgerBalance(doc.Caixa),
		InvestimentosBalance: domain.LedgerBalance(doc.Investimentos),
		OpenPayables:         decimal.Zero,
		OpenReceivables:      decimal.Zero,
	}

	for _, p := range doc.ContasAPagar {
		if !p.Paid {
			s.OpenPayables = s.OpenPayables.Add(p.Amount.Decimal)
			s.OpenPayablesCount++
		}
	}
	for _, r := range doc.ContasAReceber {
		if !r.Received {
			s.OpenReceivables = s.OpenReceivables.Add(r.Amount.Decimal)
			s.OpenReceivablesCount++
		}
	}

	return s, nil
}
