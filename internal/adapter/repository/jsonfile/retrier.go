package jsonfile

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/ateliedalu/caixa/internal/domain"
)

// RetryingStore wraps a Store and retries updates that lost a version race
// with exponential backoff. Every other error is permanent.
type RetryingStore struct {
	store           *Store
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetryingStore creates a retrying wrapper with default backoff settings.
func NewRetryingStore(store *Store, logger zerolog.Logger) *RetryingStore {
	return &RetryingStore{
		store:           store,
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          logger.With().Str("component", "jsonfile-retrier").Logger(),
	}
}

// Load reads the current document.
func (r *RetryingStore) Load(ctx context.Context) (*domain.Document, error) {
	return r.store.Load(ctx)
}

// Update applies fn through the underlying store, retrying on
// ErrVersionConflict. fn may run more than once and must be safe to replay
// against a freshly loaded document.
func (r *RetryingStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := r.store.Update(ctx, fn)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrVersionConflict) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn().
			Err(err).
			Int("retry", retryCount).
			Msg("version conflict, retrying update")

		return err
	}, backoff.WithContext(b, ctx))
}
