package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// DishHandler handles dish-related HTTP requests
type DishHandler struct {
	service *service.DishService
	logger  *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.DishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger,
	}
}

// Routes mounts the dish endpoints on r
func (h *DishHandler) Routes(r chi.Router) {
	r.Get("/", h.ListDishes)
	r.Post("/", h.CreateDish)
	r.Get("/{dishId}", h.GetDish)
	r.Put("/{dishId}", h.UpdateDish)
}

// ListDishes handles GET /dishes
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	WriteResult(w, r, result, err, h.logger)
}

// GetDish handles GET /dishes/{dishId}
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Read(r.Context(), chi.URLParam(r, "dishId"))
	WriteResult(w, r, result, err, h.logger)
}

// CreateDish handles POST /dishes
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	var payload models.DishPayload
	if err := decodeData(r, &payload); err != nil {
		h.logger.Warn("failed to decode dish request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.service.Create(r.Context(), payload)
	WriteResult(w, r, result, err, h.logger)
	if err == nil {
		h.logger.Info("dish created", "status", result.Status)
	}
}

// UpdateDish handles PUT /dishes/{dishId}
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	var payload models.DishPayload
	if err := decodeData(r, &payload); err != nil {
		h.logger.Warn("failed to decode dish request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.service.Update(r.Context(), chi.URLParam(r, "dishId"), payload)
	WriteResult(w, r, result, err, h.logger)
}
