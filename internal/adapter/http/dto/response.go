package dto

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// EntryResponse represents a ledger entry in API responses. Saldo is the
// running balance after this entry in chronological order.
type EntryResponse struct {
	ID          string        `json:"id"`
	Date        domain.Date   `json:"data"`
	Amount      domain.Amount `json:"valor"`
	Direction   string        `json:"tipo"`
	Description string        `json:"descricao"`
	Origin      string        `json:"origem,omitempty"`
	OriginID    string        `json:"origemId,omitempty"`
	Balance     domain.Amount `json:"saldo"`
	RecordedAt  domain.Date   `json:"dataCadastro"`
	UpdatedAt   domain.Date   `json:"ultimaAtualizacao"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Amount:      e.Amount,
		Direction:   string(e.Direction),
		Description: e.Description,
		Origin:      e.Origin,
		OriginID:    e.OriginID,
		Balance:     e.Balance,
		RecordedAt:  e.RecordedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a ledger listing with its closing balance.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"lancamentos"`
	Balance domain.Amount    `json:"saldo"`
}

// SummaryResponse represents the business summary report. Each figure comes
// both as a raw decimal and formatted in BRL for direct display.
type SummaryResponse struct {
	CaixaBalance                domain.Amount `json:"saldoCaixa"`
	CaixaBalanceDisplay         string        `json:"saldoCaixaFormatado"`
	InvestimentosBalance        domain.Amount `json:"saldoInvestimentos"`
	InvestimentosBalanceDisplay string        `json:"saldoInvestimentosFormatado"`
	OpenPayables                domain.Amount `json:"contasAPagarAbertas"`
	OpenPayablesDisplay         string        `json:"contasAPagarAbertasFormatado"`
	OpenPayablesCount           int           `json:"contasAPagarQuantidade"`
	OpenReceivables             domain.Amount `json:"contasAReceberAbertas"`
	OpenReceivablesDisplay      string        `json:"contasAReceberAbertasFormatado"`
	OpenReceivablesCount        int           `json:"contasAReceberQuantidade"`
}

// SummaryFromUseCase converts a summary to a response.
func SummaryFromUseCase(s *usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		CaixaBalance:                domain.NewAmount(s.CaixaBalance),
		CaixaBalanceDisplay:         FormatBRL(s.CaixaBalance),
		InvestimentosBalance:        domain.NewAmount(s.InvestimentosBalance),
		InvestimentosBalanceDisplay: FormatBRL(s.InvestimentosBalance),
		OpenPayables:                domain.NewAmount(s.OpenPayables),
		OpenPayablesDisplay:         FormatBRL(s.OpenPayables),
		OpenPayablesCount:           s.OpenPayablesCount,
		OpenReceivables:             domain.NewAmount(s.OpenReceivables),
		OpenReceivablesDisplay:      FormatBRL(s.OpenReceivables),
		OpenReceivablesCount:        s.OpenReceivablesCount,
	}
}

// FormatBRL renders a decimal amount as Brazilian reais, e.g. "R$1.234,50".
func FormatBRL(d decimal.Decimal) string {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.BRL).Display()
}
