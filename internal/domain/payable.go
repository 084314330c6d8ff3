package domain

// Payable is one scheduled payment owed to a supplier. Installment payables
// carry their position in the schedule; settling one creates an outflow in
// the cash ledger, the payable itself never carries a running balance.
type Payable struct {
	ID            string `json:"id"`
	PurchaseDate  Date   `json:"dataCompra"`
	DueDate       Date   `json:"dataVencimento"`
	Supplier      string `json:"fornecedor"`
	PurchaseID    string `json:"codigoCompra,omitempty"`
	Description   string `json:"descricao"`
	Amount        Amount `json:"valor"`
	PaymentMethod string `json:"formaPagamento"`
	Installment   int    `json:"parcela,omitempty"`
	Installments  int    `json:"totalParcelas,omitempty"`
	Paid          bool   `json:"pago"`
	PaidAmount    Amount `json:"valorPago"`
	PaymentDate   Date   `json:"dataPagamento"`
	RecordedAt    Date   `json:"dataCadastro"`
	UpdatedAt     Date   `json:"ultimaAtualizacao"`
}

// Settled reports whether the payable should post to the cash ledger: it is
// marked paid with a positive paid amount.
func (p *Payable) Settled() bool {
	return p.Paid && p.PaidAmount.IsPositive()
}
