package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/storefront/server/internal/logger"
)

// Pinger checks that the underlying storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports server and storage liveness.
type Health struct {
	db          Pinger
	pingTimeout time.Duration
	logger      *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, pingTimeout time.Duration, logger *logger.Logger) *Health {
	return &Health{
		db:          db,
		pingTimeout: pingTimeout,
		logger:      logger,
	}
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.pingTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", DB: "ok"}
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		resp.DB = "error"
	}

	writeJSON(w, http.StatusOK, resp)
}
