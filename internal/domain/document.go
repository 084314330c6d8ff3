package domain

// Document is the whole persisted state: every collection lives in one flat
// JSON file, read and written as a unit. Version counts successful writes and
// exists to detect concurrent writers to the same file.
type Document struct {
	Version        int64         `json:"versao"`
	Caixa          []*Entry      `json:"caixa"`
	Investimentos  []*Entry      `json:"investimentos"`
	ContasAPagar   []*Payable    `json:"contasAPagar"`
	ContasAReceber []*Receivable `json:"contasAReceber"`
	Vendas         []*Sale       `json:"vendas"`
	Compras        []*Purchase   `json:"compras"`
}

// NewDocument returns an empty document with every collection allocated.
func NewDocument() *Document {
	doc := &Document{}
	doc.Normalize()
	return doc
}

// Normalize allocates any collection missing from an older file.
func (d *Document) Normalize() {
	if d.Caixa == nil {
		d.Caixa = []*Entry{}
	}
	if d.Investimentos == nil {
		d.Investimentos = []*Entry{}
	}
	if d.ContasAPagar == nil {
		d.ContasAPagar = []*Payable{}
	}
	if d.ContasAReceber == nil {
		d.ContasAReceber = []*Receivable{}
	}
	if d.Vendas == nil {
		d.Vendas = []*Sale{}
	}
	if d.Compras == nil {
		d.Compras = []*Purchase{}
	}
}

// Ledger returns the entry collection for the given kind.
func (d *Document) Ledger(kind LedgerKind) []*Entry {
	if kind == LedgerInvestimentos {
		return d.Investimentos
	}
	return d.Caixa
}

// SetLedger replaces the entry collection for the given kind.
func (d *Document) SetLedger(kind LedgerKind, entries []*Entry) {
	if kind == LedgerInvestimentos {
		d.Investimentos = entries
		return
	}
	d.Caixa = entries
}
