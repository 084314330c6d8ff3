package domain

import (
	"github.com/shopspring/decimal"
)

// Payment methods used by sales and purchases.
const (
	PaymentPix      = "Pix"
	PaymentDinheiro = "Dinheiro"
	PaymentNotinha  = "Notinha"
)

// SaleItem is one sold product with its own payment terms.
type SaleItem struct {
	Code          string `json:"codigo,omitempty"`
	Value         Amount `json:"valor"`
	Discount      Amount `json:"desconto"`
	PaymentMethod string `json:"formaPagamento"`
	Installments  int    `json:"parcelas,omitempty"`
}

// Net is the item value after discount.
func (i SaleItem) Net() decimal.Decimal {
	return i.Value.Decimal.Sub(i.Discount.Decimal)
}

// Deferred reports whether the item was sold on IOU ("Notinha") terms and is
// collected later through a receivable rather than through the cash ledger.
func (i SaleItem) Deferred() bool {
	return i.PaymentMethod == PaymentNotinha
}

// Sale records one sale with its items.
type Sale struct {
	ID         string     `json:"id"`
	Date       Date       `json:"dataVenda"`
	Customer   string     `json:"cliente"`
	Items      []SaleItem `json:"itens"`
	RecordedAt Date       `json:"dataCadastro"`
	UpdatedAt  Date       `json:"ultimaAtualizacao"`
}

// CashTotal sums the net value of the items not sold on deferred terms.
func (s *Sale) CashTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if !item.Deferred() {
			total = total.Add(item.Net())
		}
	}
	return total
}

// DeferredItems returns the items sold on Notinha terms.
func (s *Sale) DeferredItems() []SaleItem {
	var items []SaleItem
	for _, item := range s.Items {
		if item.Deferred() {
			items = append(items, item)
		}
	}
	return items
}

// DeferredDueDays maps a Notinha item's installment count to its due window:
// 30 days for 1x, 60 for 2x, 90 otherwise.
func DeferredDueDays(installments int) int {
	switch installments {
	case 1:
		return 30
	case 2:
		return 60
	default:
		return 90
	}
}
