package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ateliedalu/caixa/internal/domain"
)

// HealthStore is the minimal store surface the readiness probe needs.
type HealthStore interface {
	Load(ctx context.Context) (*domain.Document, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	store HealthStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store HealthStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the data file is readable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.store.Load(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "data file unreadable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"store":  "ok",
	})
}
