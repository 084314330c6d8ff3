package dto

import (
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

// InsertEntryRequest represents a request to insert a ledger entry. Saldo is
// never accepted on input; it is always recomputed.
type InsertEntryRequest struct {
	Date        domain.Date   `json:"data"`
	Amount      domain.Amount `json:"valor"`
	Direction   string        `json:"tipo"`
	Description string        `json:"descricao"`
}

// ToUseCaseInput converts to use case input.
func (r *InsertEntryRequest) ToUseCaseInput() usecase.InsertEntryInput {
	return usecase.InsertEntryInput{
		Date:        r.Date,
		Amount:      r.Amount,
		Direction:   domain.Direction(r.Direction),
		Description: r.Description,
	}
}

// UpdateEntryRequest represents a partial update of a ledger entry. Absent
// fields keep their stored value.
type UpdateEntryRequest struct {
	Date        *domain.Date   `json:"data"`
	Amount      *domain.Amount `json:"valor"`
	Direction   *string        `json:"tipo"`
	Description *string        `json:"descricao"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateEntryRequest) ToUseCaseInput() usecase.UpdateEntryInput {
	input := usecase.UpdateEntryInput{
		Date:        r.Date,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if r.Direction != nil {
		d := domain.Direction(*r.Direction)
		input.Direction = &d
	}
	return input
}

// CreateSaleRequest represents a request to record a sale.
type CreateSaleRequest struct {
	Date     domain.Date       `json:"dataVenda"`
	Customer string            `json:"cliente"`
	Items    []domain.SaleItem `json:"itens"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSaleRequest) ToUseCaseInput() usecase.CreateSaleInput {
	return usecase.CreateSaleInput{
		Date:     r.Date,
		Customer: r.Customer,
		Items:    r.Items,
	}
}

// CreatePayableRequest represents a request to create a payable.
type CreatePayableRequest struct {
	PurchaseDate  domain.Date   `json:"dataCompra"`
	DueDate       domain.Date   `json:"dataVencimento"`
	Supplier      string        `json:"fornecedor"`
	PurchaseID    string        `json:"codigoCompra"`
	Description   string        `json:"descricao"`
	Amount        domain.Amount `json:"valor"`
	PaymentMethod string        `json:"formaPagamento"`
	Installment   int           `json:"parcela"`
	Installments  int           `json:"totalParcelas"`
	Paid          bool          `json:"pago"`
	PaidAmount    domain.Amount `json:"valorPago"`
	PaymentDate   domain.Date   `json:"dataPagamento"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePayableRequest) ToUseCaseInput() usecase.CreatePayableInput {
	return usecase.CreatePayableInput{
		PurchaseDate:  r.PurchaseDate,
		DueDate:       r.DueDate,
		Supplier:      r.Supplier,
		PurchaseID:    r.PurchaseID,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Installment:   r.Installment,
		Installments:  r.Installments,
		Paid:          r.Paid,
		PaidAmount:    r.PaidAmount,
		PaymentDate:   r.PaymentDate,
	}
}

// UpdatePayableRequest represents a partial update of a payable.
type UpdatePayableRequest struct {
	DueDate       *domain.Date   `json:"dataVencimento"`
	Supplier      *string        `json:"fornecedor"`
	Description   *string        `json:"descricao"`
	Amount        *domain.Amount `json:"valor"`
	PaymentMethod *string        `json:"formaPagamento"`
	Paid          *bool          `json:"pago"`
	PaidAmount    *domain.Amount `json:"valorPago"`
	PaymentDate   *domain.Date   `json:"dataPagamento"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePayableRequest) ToUseCaseInput() usecase.UpdatePayableInput {
	return usecase.UpdatePayableInput{
		DueDate:       r.DueDate,
		Supplier:      r.Supplier,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Paid:          r.Paid,
		PaidAmount:    r.PaidAmount,
		PaymentDate:   r.PaymentDate,
	}
}

// CreateReceivableRequest represents a request to create a receivable.
// Receivables are always created open; settlement goes through update.
type CreateReceivableRequest struct {
	SaleDate      domain.Date   `json:"dataVenda"`
	DueDate       domain.Date   `json:"dataVencimento"`
	Customer      string        `json:"cliente"`
	SaleID        string        `json:"codigoVenda"`
	Amount        domain.Amount `json:"valor"`
	PaymentMethod string        `json:"formaPagamento"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateReceivableRequest) ToUseCaseInput() usecase.CreateReceivableInput {
	return usecase.CreateReceivableInput{
		SaleDate:      r.SaleDate,
		DueDate:       r.DueDate,
		Customer:      r.Customer,
		SaleID:        r.SaleID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
	}
}

// UpdateReceivableRequest represents a partial update of a receivable.
type UpdateReceivableRequest struct {
	DueDate        *domain.Date   `json:"dataVencimento"`
	Customer       *string        `json:"cliente"`
	Amount         *domain.Amount `json:"valor"`
	PaymentMethod  *string        `json:"formaPagamento"`
	Received       *bool          `json:"recebido"`
	ReceivedAmount *domain.Amount `json:"valorRecebido"`
	ReceiptDate    *domain.Date   `json:"dataRecebimento"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateReceivableRequest) ToUseCaseInput() usecase.UpdateReceivableInput {
	return usecase.UpdateReceivableInput{
		DueDate:        r.DueDate,
		Customer:       r.Customer,
		Amount:         r.Amount,
		PaymentMethod:  r.PaymentMethod,
		Received:       r.Received,
		ReceivedAmount: r.ReceivedAmount,
		ReceiptDate:    r.ReceiptDate,
	}
}

// RecordInvestmentRequest represents a request to record an investment
// movement.
type RecordInvestmentRequest struct {
	Date        domain.Date   `json:"data"`
	Amount      domain.Amount `json:"valor"`
	Direction   string        `json:"tipo"`
	Description string        `json:"descricao"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordInvestmentRequest) ToUseCaseInput() usecase.RecordMovementInput {
	return usecase.RecordMovementInput{
		Date:        r.Date,
		Amount:      r.Amount,
		Direction:   domain.Direction(r.Direction),
		Description: r.Description,
	}
}
