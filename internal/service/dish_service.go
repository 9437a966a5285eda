package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
)

// DishRequest carries one dish request through its pipeline
type DishRequest struct {
	RouteID string
	Payload models.DishPayload

	// Dish is set by the existence check
	Dish models.Dish
}

// DishService handles business logic for dishes
type DishService struct {
	store *repository.DishStore

	list   *pipeline.Pipeline[DishRequest]
	read   *pipeline.Pipeline[DishRequest]
	create *pipeline.Pipeline[DishRequest]
	update *pipeline.Pipeline[DishRequest]
}

// NewDishService creates a new dish service
func NewDishService(store *repository.DishStore) *DishService {
	s := &DishService{store: store}

	s.list = pipeline.New[DishRequest]("dishes.list", s.listDishes)
	s.read = pipeline.New[DishRequest]("dishes.read", s.readDish,
		s.dishExists,
	)
	s.create = pipeline.New[DishRequest]("dishes.create", s.createDish,
		dishNameExists,
		dishDescriptionExists,
		dishPriceValid,
		dishImageExists,
	)
	s.update = pipeline.New[DishRequest]("dishes.update", s.updateDish,
		s.dishExists,
		dishIDMatchesRoute,
		dishNameExists,
		dishDescriptionExists,
		dishPriceValid,
		dishImageExists,
	)

	return s
}

// List returns every dish
func (s *DishService) List(ctx context.Context) (pipeline.Result, error) {
	return s.list.Run(ctx, &DishRequest{})
}

// Read returns the dish with the given id
func (s *DishService) Read(ctx context.Context, dishID string) (pipeline.Result, error) {
	return s.read.Run(ctx, &DishRequest{RouteID: dishID})
}

// Create validates the payload and stores a new dish
func (s *DishService) Create(ctx context.Context, payload models.DishPayload) (pipeline.Result, error) {
	return s.create.Run(ctx, &DishRequest{Payload: payload})
}

// Update validates the payload and replaces the dish's fields
func (s *DishService) Update(ctx context.Context, dishID string, payload models.DishPayload) (pipeline.Result, error) {
	return s.update.Run(ctx, &DishRequest{RouteID: dishID, Payload: payload})
}

func (s *DishService) listDishes(ctx context.Context, _ *DishRequest) (pipeline.Result, error) {
	dishes, err := s.store.List(ctx)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("list dishes: %w", err)
	}
	return pipeline.OK(dishes), nil
}

func (s *DishService) readDish(_ context.Context, r *DishRequest) (pipeline.Result, error) {
	return pipeline.OK(r.Dish), nil
}

func (s *DishService) createDish(ctx context.Context, r *DishRequest) (pipeline.Result, error) {
	dish, err := s.store.Create(ctx, models.Dish{
		Name:        r.Payload.Name,
		Description: r.Payload.Description,
		Price:       r.Payload.Price.Value,
		ImageURL:    r.Payload.ImageURL,
	})
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("create dish: %w", err)
	}
	return pipeline.Created(dish), nil
}

func (s *DishService) updateDish(ctx context.Context, r *DishRequest) (pipeline.Result, error) {
	dish, err := s.store.Update(ctx, r.Dish.ID, func(d *models.Dish) {
		d.Name = r.Payload.Name
		d.Description = r.Payload.Description
		d.Price = r.Payload.Price.Value
		d.ImageURL = r.Payload.ImageURL
	})
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, pipeline.NotFound("Dish does not exist: %s.", r.RouteID)
	}
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("update dish %s: %w", r.Dish.ID, err)
	}
	return pipeline.OK(dish), nil
}
