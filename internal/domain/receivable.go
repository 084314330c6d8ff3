package domain

// Receivable is one amount owed by a customer, usually created by a sale's
// Notinha items. Settling one creates an inflow in the cash ledger.
type Receivable struct {
	ID             string `json:"id"`
	SaleDate       Date   `json:"dataVenda"`
	DueDate        Date   `json:"dataVencimento"`
	Customer       string `json:"cliente"`
	SaleID         string `json:"codigoVenda,omitempty"`
	Amount         Amount `json:"valor"`
	PaymentMethod  string `json:"formaPagamento"`
	Received       bool   `json:"recebido"`
	ReceivedAmount Amount `json:"valorRecebido"`
	ReceiptDate    Date   `json:"dataRecebimento"`
	RecordedAt     Date   `json:"dataCadastro"`
	UpdatedAt      Date   `json:"ultimaAtualizacao"`
}

// Settled reports whether the receivable should post to the cash ledger: it
// is marked received with a positive received amount.
func (r *Receivable) Settled() bool {
	return r.Received && r.ReceivedAmount.IsPositive()
}
