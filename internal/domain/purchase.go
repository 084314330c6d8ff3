package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one product bought from a supplier.
type PurchaseItem struct {
	InternalCode     string `json:"codigoInterno,omitempty"`
	Kind             string `json:"tipo,omitempty"`
	Product          string `json:"produto,omitempty"`
	Color            string `json:"cor,omitempty"`
	Size             string `json:"tamanho,omitempty"`
	UnitCost         Amount `json:"custoUnitario"`
	CashPrice        Amount `json:"precoVendaVista"`
	InstallmentPrice Amount `json:"precoVenda3x"`
	Returned         bool   `json:"devolvido,omitempty"`
}

// Purchase records one supplier purchase with its items.
type Purchase struct {
	ID            string         `json:"id"`
	Date          Date           `json:"dataCompra"`
	Supplier      string         `json:"fornecedor"`
	PaymentMethod string         `json:"formaPagamentoCompra"`
	Installments  int            `json:"parcelas,omitempty"`
	Items         []PurchaseItem `json:"itens"`
	RecordedAt    Date           `json:"dataCadastro"`
	UpdatedAt     Date           `json:"ultimaAtualizacao"`
}

// UnmarshalJSON accepts both the current shape (itens array) and the legacy
// one-product-per-purchase shape, folding the latter into a single-item list
// so the rest of the code never branches on record shape.
func (p *Purchase) UnmarshalJSON(data []byte) error {
	type alias Purchase
	aux := struct {
		*alias
		LegacyCode     string `json:"codigoInterno"`
		LegacyKind     string `json:"tipo"`
		LegacyProduct  string `json:"produto"`
		LegacyColor    string `json:"cor"`
		LegacySize     string `json:"tamanho"`
		LegacyCost     Amount `json:"custoUnitario"`
		LegacyReturned bool   `json:"devolvido"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(p.Items) == 0 && (aux.LegacyCode != "" || !aux.LegacyCost.IsZero()) {
		p.Items = []PurchaseItem{{
			InternalCode: aux.LegacyCode,
			Kind:         aux.LegacyKind,
			Product:      aux.LegacyProduct,
			Color:        aux.LegacyColor,
			Size:         aux.LegacySize,
			UnitCost:     aux.LegacyCost,
			Returned:     aux.LegacyReturned,
		}}
	}

	return nil
}

// Total sums the unit costs of every item.
func (p *Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.UnitCost.Decimal)
	}
	return total
}

// PaysImmediately reports whether the purchase settles through the cash
// ledger at creation instead of through payable installments.
func (p *Purchase) PaysImmediately() bool {
	return p.PaymentMethod == PaymentPix || p.PaymentMethod == PaymentDinheiro
}
