package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/grubdash/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries what NewRouter needs beyond the handlers
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter registers every endpoint and the shared middleware stack
func NewRouter(cfg RouterConfig, health *HealthHandler, dishes *DishHandler, orders *OrderHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Path not found: %s", req.URL.Path), log)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s.", req.Method, req.URL.Path), log)
	})

	r.Get("/health", health.ServeHTTP)
	r.Route("/dishes", dishes.Routes)
	r.Route("/orders", orders.Routes)

	return r
}
