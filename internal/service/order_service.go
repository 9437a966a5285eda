package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
)

// OrderRequest carries one order request through its pipeline
type OrderRequest struct {
	RouteID string
	Payload models.OrderPayload

	// Order is set by the existence check
	Order models.Order
}

// OrderService handles order business logic and the status lifecycle
type OrderService struct {
	store *repository.OrderStore

	list    *pipeline.Pipeline[OrderRequest]
	read    *pipeline.Pipeline[OrderRequest]
	create  *pipeline.Pipeline[OrderRequest]
	update  *pipeline.Pipeline[OrderRequest]
	destroy *pipeline.Pipeline[OrderRequest]
}

// NewOrderService creates a new order service
func NewOrderService(store *repository.OrderStore) *OrderService {
	s := &OrderService{store: store}

	s.list = pipeline.New[OrderRequest]("orders.list", s.listOrders)
	s.read = pipeline.New[OrderRequest]("orders.read", s.readOrder,
		s.orderExists,
	)
	s.create = pipeline.New[OrderRequest]("orders.create", s.createOrder,
		orderDishesExist,
		orderDishesNotEmpty,
		orderDeliverToExists,
		orderMobileNumberExists,
		orderQuantitiesValid,
		orderStatusValidIfSet,
	)
	s.update = pipeline.New[OrderRequest]("orders.update", s.updateOrder,
		s.orderExists,
		storedOrderNotDelivered,
		orderIDMatchesRoute,
		orderDishesExist,
		orderDishesNotEmpty,
		orderDeliverToExists,
		orderMobileNumberExists,
		orderStatusExists,
		orderStatusValid,
		orderStatusNotDelivered,
		orderQuantitiesValid,
	)
	s.destroy = pipeline.New[OrderRequest]("orders.delete", s.deleteOrder,
		s.orderExists,
		storedOrderPending,
	)

	return s
}

// List returns every order
func (s *OrderService) List(ctx context.Context) (pipeline.Result, error) {
	return s.list.Run(ctx, &OrderRequest{})
}

// Read returns the order with the given id
func (s *OrderService) Read(ctx context.Context, orderID string) (pipeline.Result, error) {
	return s.read.Run(ctx, &OrderRequest{RouteID: orderID})
}

// Create validates the payload and stores a new order.
// A missing status defaults to pending.
func (s *OrderService) Create(ctx context.Context, payload models.OrderPayload) (pipeline.Result, error) {
	return s.create.Run(ctx, &OrderRequest{Payload: payload})
}

// Update validates the payload against the stored order and replaces its fields
func (s *OrderService) Update(ctx context.Context, orderID string, payload models.OrderPayload) (pipeline.Result, error) {
	return s.update.Run(ctx, &OrderRequest{RouteID: orderID, Payload: payload})
}

// Delete removes a pending order
func (s *OrderService) Delete(ctx context.Context, orderID string) (pipeline.Result, error) {
	return s.destroy.Run(ctx, &OrderRequest{RouteID: orderID})
}

func (s *OrderService) listOrders(ctx context.Context, _ *OrderRequest) (pipeline.Result, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("list orders: %w", err)
	}
	return pipeline.OK(orders), nil
}

func (s *OrderService) readOrder(_ context.Context, r *OrderRequest) (pipeline.Result, error) {
	return pipeline.OK(r.Order), nil
}

func (s *OrderService) createOrder(ctx context.Context, r *OrderRequest) (pipeline.Result, error) {
	status := r.Payload.Status
	if status == "" {
		status = models.StatusPending
	}
	order, err := s.store.Create(ctx, models.Order{
		DeliverTo:    r.Payload.DeliverTo,
		MobileNumber: r.Payload.MobileNumber,
		Status:       status,
		Dishes:       orderDishes(r.Payload.Dishes),
	})
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("create order: %w", err)
	}
	return pipeline.Created(order), nil
}

func (s *OrderService) updateOrder(ctx context.Context, r *OrderRequest) (pipeline.Result, error) {
	order, err := s.store.Update(ctx, r.Order.ID, func(o *models.Order) {
		o.DeliverTo = r.Payload.DeliverTo
		o.MobileNumber = r.Payload.MobileNumber
		o.Status = r.Payload.Status
		o.Dishes = orderDishes(r.Payload.Dishes)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, pipeline.NotFound("Order does not exist: %s.", r.RouteID)
	}
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("update order %s: %w", r.Order.ID, err)
	}
	return pipeline.OK(order), nil
}

func (s *OrderService) deleteOrder(ctx context.Context, r *OrderRequest) (pipeline.Result, error) {
	err := s.store.Delete(ctx, r.Order.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, pipeline.NotFound("Order does not exist: %s.", r.RouteID)
	}
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("delete order %s: %w", r.Order.ID, err)
	}
	return pipeline.NoContent(), nil
}

func orderDishes(lines []models.OrderDishPayload) []models.OrderDish {
	dishes := make([]models.OrderDish, len(lines))
	for i, line := range lines {
		dishes[i] = models.OrderDish{DishID: line.DishID, Quantity: line.Quantity.Value}
	}
	return dishes
}
