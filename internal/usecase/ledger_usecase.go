package usecase

import (
	"context"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// LedgerUseCase provides the mutation operations over a running-balance
// ledger. Every mutation is one critical section against the document store:
// load the latest state, mutate, recalculate every balance, persist the whole
// collection.
type LedgerUseCase struct {
	store   DocumentStore
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(store DocumentStore, idGen IDGenerator, m *metrics.Metrics) *LedgerUseCase {
	return &LedgerUseCase{
		store:   store,
		idGen:   idGen,
		metrics: m,
		now:     time.Now,
	}
}

// ListEntries returns every entry of the given ledger in stored
// (chronological) order.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, kind domain.LedgerKind) ([]*domain.Entry, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownLedger
	}

	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Ledger(kind), nil
}

// GetEntry returns one entry by ID.
func (uc *LedgerUseCase) GetEntry(ctx context.Context, kind domain.LedgerKind, id string) (*domain.Entry, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownLedger
	}

	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Ledger(kind) {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

// InsertEntryInput represents input for inserting a ledger entry.
type InsertEntryInput struct {
	Date        domain.Date
	Amount      domain.Amount
	Direction   domain.Direction
	Description string
	Origin      string
	OriginID    string
}

// InsertEntry appends a new entry to the ledger and recomputes every balance.
func (uc *LedgerUseCase) InsertEntry(ctx context.Context, kind domain.LedgerKind, input InsertEntryInput) (*domain.Entry, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownLedger
	}
	if !input.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}

	now := domain.NewDate(uc.now().UTC())
	entry := &domain.Entry{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Amount:      input.Amount,
		Direction:   input.Direction,
		Description: input.Description,
		Origin:      input.Origin,
		OriginID:    input.OriginID,
		RecordedAt:  now,
		UpdatedAt:   now,
	}

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		uc.recalculate(doc, kind, append(doc.Ledger(kind), entry))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesInserted.WithLabelValues(string(kind)).Inc()
	}

	return entry, nil
}

// UpdateEntryInput represents a partial update of an entry. Nil fields keep
// their current value; the ID is never touched.
type UpdateEntryInput struct {
	Date        *domain.Date
	Amount      *domain.Amount
	Direction   *domain.Direction
	Description *string
}

// UpdateEntry merges the patch onto the entry and recomputes every balance.
func (uc *LedgerUseCase) UpdateEntry(ctx context.Context, kind domain.LedgerKind, id string, input UpdateEntryInput) (*domain.Entry, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownLedger
	}
	if input.Direction != nil && !input.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}

	var updated *domain.Entry
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		entries := doc.Ledger(kind)
		entry := findEntry(entries, id)
		if entry == nil {
			return domain.ErrEntryNotFound
		}

		if input.Date != nil {
			entry.Date = *input.Date
		}
		if input.Amount != nil {
			entry.Amount = *input.Amount
		}
		if input.Direction != nil {
			entry.Direction = *input.Direction
		}
		if input.Description != nil {
			entry.Description = *input.Description
		}
		entry.UpdatedAt = domain.NewDate(uc.now().UTC())

		uc.recalculate(doc, kind, entries)
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesUpdated.WithLabelValues(string(kind)).Inc()
	}

	return updated, nil
}

// DeleteEntry removes the entry and recomputes the balances of everything
// that remains.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, kind domain.LedgerKind, id string) error {
	if !kind.Valid() {
		return domain.ErrUnknownLedger
	}

	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		entries := doc.Ledger(kind)
		idx := -1
		for i, e := range entries {
			if e.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrEntryNotFound
		}

		uc.recalculate(doc, kind, append(entries[:idx], entries[idx+1:]...))
		return nil
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.WithLabelValues(string(kind)).Inc()
	}

	return nil
}

// recalculate runs the engine over the collection, stores it back on the
// document and refreshes the balance gauge.
func (uc *LedgerUseCase) recalculate(doc *domain.Document, kind domain.LedgerKind, entries []*domain.Entry) {
	start := time.Now()
	domain.Recalculate(entries)
	doc.SetLedger(kind, entries)

	if uc.metrics != nil {
		uc.metrics.RecalcDuration.Observe(time.Since(start).Seconds())
		balance, _ := domain.LedgerBalance(entries).Float64()
		uc.metrics.LedgerBalance.WithLabelValues(string(kind)).Set(balance)
	}
}

func findEntry(entries []*domain.Entry, id string) *domain.Entry {
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}
