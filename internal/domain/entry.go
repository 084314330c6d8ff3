package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerKind identifies one of the two independent running-balance ledgers.
type LedgerKind string

const (
	LedgerCaixa         LedgerKind = "caixa"
	LedgerInvestimentos LedgerKind = "investimentos"
)

// Valid reports whether the kind names a known ledger.
func (k LedgerKind) Valid() bool {
	return k == LedgerCaixa || k == LedgerInvestimentos
}

// Direction tells whether an entry adds to or subtracts from the running
// balance.
type Direction string

const (
	DirectionEntrada Direction = "entrada"
	DirectionSaida   Direction = "saida"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionEntrada || d == DirectionSaida
}

// Origin tags for derived postings. Manually created entries carry no origin.
const (
	OriginVenda          = "venda"
	OriginCompra         = "compra"
	OriginContasAPagar   = "contas_a_pagar"
	OriginContasAReceber = "contas_a_receber"
	OriginInvestimento   = "investimento"
)

// Entry is a single dated movement in a ledger. Saldo is derived: it is fully
// recomputed after every mutation and ignored on input.
type Entry struct {
	ID          string          `json:"id"`
	Date        Date            `json:"data"`
	Amount      Amount          `json:"valor"`
	Direction   Direction       `json:"tipo"`
	Description string          `json:"descricao"`
	Origin      string          `json:"origem,omitempty"`
	OriginID    string          `json:"origemId,omitempty"`
	Balance     Amount          `json:"saldo"`
	RecordedAt  Date            `json:"dataCadastro"`
	UpdatedAt   Date            `json:"ultimaAtualizacao"`
}

// Signed returns the entry's contribution to the running balance: positive
// for entrada, negative otherwise.
func (e *Entry) Signed() decimal.Decimal {
	if e.Direction == DirectionEntrada {
		return e.Amount.Decimal
	}
	return e.Amount.Decimal.Neg()
}
