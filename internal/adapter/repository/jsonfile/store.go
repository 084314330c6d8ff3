package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
)

// ErrVersionConflict is returned when the file on disk changed between
// loading the document and writing it back, meaning another process saved in
// the meantime.
var ErrVersionConflict = errors.New("jsonfile: document version conflict")

// Store persists the whole document as one JSON file. Mutations are
// serialized by an in-process mutex and written atomically through a rename,
// so a crash mid-write never leaves a truncated file behind. A version
// counter in the document detects writes from other processes.
type Store struct {
	path    string
	mu      sync.Mutex
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewStore creates a store backed by the file at path. The file does not
// need to exist yet; a missing file reads as an empty document.
func NewStore(path string, logger zerolog.Logger, m *metrics.Metrics) *Store {
	return &Store{
		path:    path,
		logger:  logger.With().Str("component", "jsonfile").Logger(),
		metrics: m,
	}
}

// Load reads the current document. A missing file yields a fresh empty
// document; it is not created on disk until the first Update.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Update applies fn to the current document and writes the result back
// atomically. The version counter is checked right before the write; if the
// file was saved by someone else since the read, Update returns
// ErrVersionConflict and fn's changes are discarded.
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	loaded := doc.Version

	if err := fn(doc); err != nil {
		return err
	}

	current, err := s.readVersion()
	if err != nil {
		return err
	}
	if current != loaded {
		if s.metrics != nil {
			s.metrics.StoreConflicts.Inc()
		}
		s.logger.Warn().
			Int64("loaded", loaded).
			Int64("current", current).
			Msg("document changed on disk, discarding update")
		return ErrVersionConflict
	}

	doc.Version = loaded + 1
	if err := s.write(doc); err != nil {
		if s.metrics != nil {
			s.metrics.StoreErrors.Inc()
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.StoreSaves.Inc()
	}
	return nil
}

func (s *Store) read() (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	doc.Normalize()
	return doc, nil
}

// readVersion decodes only the version counter, skipping the collections.
func (s *Store) readVersion() (int64, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	var v struct {
		Version int64 `json:"versao"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return v.Version, nil
}

// write serializes doc to a temp file in the same directory and renames it
// over the target.
func (s *Store) write(doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
