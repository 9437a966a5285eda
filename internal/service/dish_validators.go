package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
)

func dishNameExists(_ context.Context, r *DishRequest) error {
	if r.Payload.Name == "" {
		return pipeline.Validation("Dish must include a name")
	}
	return nil
}

func dishDescriptionExists(_ context.Context, r *DishRequest) error {
	if r.Payload.Description == "" {
		return pipeline.Validation("Dish must include a description")
	}
	return nil
}

// dishPriceValid requires a whole number greater than zero
func dishPriceValid(_ context.Context, r *DishRequest) error {
	if !r.Payload.Price.Positive() {
		return pipeline.Validation("Dish must include a price")
	}
	return nil
}

func dishImageExists(_ context.Context, r *DishRequest) error {
	if r.Payload.ImageURL == "" {
		return pipeline.Validation("Dish must include a image_url")
	}
	return nil
}

// dishIDMatchesRoute passes when the body carries no id
func dishIDMatchesRoute(_ context.Context, r *DishRequest) error {
	id := r.Payload.ID
	if id.Empty() {
		return nil
	}
	if !id.Valid || id.Value != r.RouteID {
		return pipeline.Validation("Dish id does not match route id. Dish: %s, Route: %s", id, r.RouteID)
	}
	return nil
}

// dishExists resolves the route id and stores the dish on the request
func (s *DishService) dishExists(ctx context.Context, r *DishRequest) error {
	dish, err := s.store.Find(ctx, r.RouteID)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.NotFound("Dish does not exist: %s.", r.RouteID)
	}
	if err != nil {
		return fmt.Errorf("find dish %s: %w", r.RouteID, err)
	}
	r.Dish = dish
	return nil
}
