package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Counter reports how many entities a collection holds
type Counter interface {
	Len() int
}

// HealthHandler reports liveness along with the size of each collection
type HealthHandler struct {
	logger  *slog.Logger
	version string
	started time.Time
	dishes  Counter
	orders  Counter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, version string, dishes, orders Counter) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
		started: time.Now(),
		dishes:  dishes,
		orders:  orders,
	}
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Dishes        int       `json:"dishes"`
	Orders        int       `json:"orders"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		Timestamp:     now.UTC(),
		UptimeSeconds: int64(now.Sub(h.started).Seconds()),
		Dishes:        h.dishes.Len(),
		Orders:        h.orders.Len(),
	}, h.logger)
}
