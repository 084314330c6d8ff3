package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// chronologicalLess orders entries by (Date, RecordedAt) ascending. A zero
// Date sorts before every dated entry.
func chronologicalLess(a, b *Entry) bool {
	if !a.Date.Equal(b.Date.Time) {
		return a.Date.Before(b.Date.Time)
	}
	return a.RecordedAt.Before(b.RecordedAt.Time)
}

// Recalculate sorts entries chronologically and rewrites every running
// balance: starting from zero, each entry's saldo is the previous saldo plus
// its signed amount. Entries sharing both Date and RecordedAt keep their
// stored order (stable sort), so a pass over already-sorted entries is a
// no-op. The function reads only Date, RecordedAt, Amount and Direction and
// keeps no state between calls.
func Recalculate(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return chronologicalLess(entries[i], entries[j])
	})

	running := decimal.Zero
	for _, e := range entries {
		running = running.Add(e.Signed())
		e.Balance = NewAmount(running)
	}
}

// LedgerBalance returns the balance after the last entry in chronological
// order, or zero for an empty ledger. It assumes Recalculate has run.
func LedgerBalance(entries []*Entry) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	last := entries[0]
	for _, e := range entries[1:] {
		if !chronologicalLess(e, last) {
			last = e
		}
	}
	return last.Balance.Decimal
}
