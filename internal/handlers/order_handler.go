package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// Routes mounts the order endpoints on r
func (h *OrderHandler) Routes(r chi.Router) {
	r.Get("/", h.ListOrders)
	r.Post("/", h.CreateOrder)
	r.Get("/{orderId}", h.GetOrder)
	r.Put("/{orderId}", h.UpdateOrder)
	r.Delete("/{orderId}", h.DeleteOrder)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.List(r.Context())
	WriteResult(w, r, result, err, h.log)
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.Read(r.Context(), chi.URLParam(r, "orderId"))
	WriteResult(w, r, result, err, h.log)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload models.OrderPayload
	if err := decodeData(r, &payload); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.orderService.Create(r.Context(), payload)
	WriteResult(w, r, result, err, h.log)
	if err == nil {
		h.log.Info("order created successfully", "items_count", len(payload.Dishes))
	}
}

// UpdateOrder handles PUT /orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var payload models.OrderPayload
	if err := decodeData(r, &payload); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.orderService.Update(r.Context(), chi.URLParam(r, "orderId"), payload)
	WriteResult(w, r, result, err, h.log)
}

// DeleteOrder handles DELETE /orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.Delete(r.Context(), chi.URLParam(r, "orderId"))
	WriteResult(w, r, result, err, h.log)
}
