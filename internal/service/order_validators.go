package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
)

const statusMessage = "Order must have a status of pending, preparing, out-for-delivery, delivered"

func orderDeliverToExists(_ context.Context, r *OrderRequest) error {
	if r.Payload.DeliverTo == "" {
		return pipeline.Validation("Order must include a deliverTo")
	}
	return nil
}

func orderMobileNumberExists(_ context.Context, r *OrderRequest) error {
	if r.Payload.MobileNumber == "" {
		return pipeline.Validation("Order must include a mobileNumber")
	}
	return nil
}

func orderDishesExist(_ context.Context, r *OrderRequest) error {
	if r.Payload.Dishes == nil {
		return pipeline.Validation("Order must include a dish")
	}
	return nil
}

func orderDishesNotEmpty(_ context.Context, r *OrderRequest) error {
	if len(r.Payload.Dishes) == 0 {
		return pipeline.Validation("Order must include at least one dish")
	}
	return nil
}

// orderQuantitiesValid reports the lowest index whose quantity is missing,
// fractional, non-numeric or below one. It expects dishes to be non-empty.
func orderQuantitiesValid(_ context.Context, r *OrderRequest) error {
	for i, line := range r.Payload.Dishes {
		if !line.Quantity.Positive() {
			return pipeline.Validation("Dish %d must have a quantity that is an integer greater than 0.", i)
		}
	}
	return nil
}

func orderStatusExists(_ context.Context, r *OrderRequest) error {
	if r.Payload.Status == "" {
		return pipeline.Validation(statusMessage)
	}
	return nil
}

func orderStatusValid(_ context.Context, r *OrderRequest) error {
	if !r.Payload.Status.Valid() {
		return pipeline.Validation(statusMessage)
	}
	return nil
}

// orderStatusValidIfSet lets create omit the status
func orderStatusValidIfSet(ctx context.Context, r *OrderRequest) error {
	if r.Payload.Status == "" {
		return nil
	}
	return orderStatusValid(ctx, r)
}

func orderStatusNotDelivered(_ context.Context, r *OrderRequest) error {
	if r.Payload.Status == models.StatusDelivered {
		return pipeline.StateConflict("A delivered order cannot be changed")
	}
	return nil
}

// orderIDMatchesRoute passes when the body carries no id. An id that is not
// a string never matches.
func orderIDMatchesRoute(_ context.Context, r *OrderRequest) error {
	id := r.Payload.ID
	if id.Empty() {
		return nil
	}
	if !id.Valid || id.Value != r.RouteID {
		return pipeline.Validation("Order id does not match route id. Order: %s, Route: %s", id, r.RouteID)
	}
	return nil
}

// storedOrderNotDelivered runs before any payload check so that a delivered
// order rejects every update regardless of what was sent.
func storedOrderNotDelivered(_ context.Context, r *OrderRequest) error {
	if r.Order.Status == models.StatusDelivered {
		return pipeline.StateConflict("A delivered order cannot be changed")
	}
	return nil
}

func storedOrderPending(_ context.Context, r *OrderRequest) error {
	if r.Order.Status != models.StatusPending {
		return pipeline.StateConflict("An order cannot be deleted unless it is pending")
	}
	return nil
}

// orderExists resolves the route id and stores the order on the request
func (s *OrderService) orderExists(ctx context.Context, r *OrderRequest) error {
	order, err := s.store.Find(ctx, r.RouteID)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.NotFound("Order does not exist: %s.", r.RouteID)
	}
	if err != nil {
		return fmt.Errorf("find order %s: %w", r.RouteID, err)
	}
	r.Order = order
	return nil
}
