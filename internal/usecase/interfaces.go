package usecase

import (
	"context"

	"github.com/ateliedalu/caixa/internal/domain"
)

// DocumentStore is the persistence collaborator: whole-document reads plus
// serialized read-modify-write updates.
type DocumentStore interface {
	// Load returns the latest persisted document.
	Load(ctx context.Context) (*domain.Document, error)

	// Update runs fn against the latest persisted document inside the
	// store's critical section and persists the result as one atomic write.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}
