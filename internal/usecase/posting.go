package usecase

import (
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// appendPosting adds a derived entry to a ledger inside an open document
// mutation and recomputes that ledger's balances. Generators never write the
// saldo field themselves.
func appendPosting(doc *domain.Document, kind domain.LedgerKind, entry *domain.Entry, m *metrics.Metrics) {
	entries := append(doc.Ledger(kind), entry)
	domain.Recalculate(entries)
	doc.SetLedger(kind, entries)

	if m != nil {
		if entry.Origin != "" {
			m.PostingsGenerated.WithLabelValues(entry.Origin).Inc()
		}
		balance, _ := domain.LedgerBalance(entries).Float64()
		m.LedgerBalance.WithLabelValues(string(kind)).Set(balance)
	}
}

// orNow returns d, or the fallback when d is zero. Settlement postings are
// dated by the settlement date when the caller provided one.
func orNow(d domain.Date, fallback domain.Date) domain.Date {
	if d.IsZero() {
		return fallback
	}
	return d
}
