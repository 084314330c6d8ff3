package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
)

// fakeStore keeps the document in memory and serializes updates like the
// real store does.
type fakeStore struct {
	mu  sync.Mutex
	doc *domain.Document
	err error
}

func newFakeStore() *fakeStore {
	return &fakeStore{doc: domain.NewDocument()}
}

func (s *fakeStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func (s *fakeStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	return fn(s.doc)
}

// seqIDGenerator yields id-1, id-2, ... for deterministic assertions.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fixedClock returns strictly increasing instants so RecordedAt tie-breaks
// are deterministic in tests.
func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func mustDate(s string) domain.Date {
	d := domain.ParseDate(s)
	if d.IsZero() {
		panic("bad test date: " + s)
	}
	return d
}
