package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
	"github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"
	"github.com/Lixing-Zhang/grubdash/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDishService(t *testing.T) (*DishService, *repository.DishStore) {
	t.Helper()
	store := repository.NewDishStore(repository.NewSequenceGenerator(1))
	store.Seed(models.Dish{ID: "existing", Name: "Soup", Description: "Hot", Price: 5, ImageURL: "http://x/soup.png"})
	return NewDishService(store), store
}

func validDishPayload() models.DishPayload {
	return models.DishPayload{
		Name:        "Taco",
		Description: "Spicy",
		Price:       models.NewInt(8),
		ImageURL:    "http://x/img.png",
	}
}

func requirePipelineError(t *testing.T, err error, kind pipeline.Kind, message string) {
	t.Helper()
	pe, ok := pipeline.AsError(err)
	require.True(t, ok, "expected pipeline error, got %v", err)
	assert.Equal(t, kind, pe.Kind)
	assert.Equal(t, message, pe.Message)
}

func TestDishService_Create(t *testing.T) {
	svc, store := newDishService(t)

	result, err := svc.Create(context.Background(), validDishPayload())
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, result.Status)
	dish, ok := result.Data.(models.Dish)
	require.True(t, ok)
	assert.Equal(t, "1", dish.ID)
	assert.Equal(t, "Taco", dish.Name)
	assert.Equal(t, "Spicy", dish.Description)
	assert.EqualValues(t, 8, dish.Price)
	assert.Equal(t, "http://x/img.png", dish.ImageURL)
	assert.Equal(t, 2, store.Len())
}

func TestDishService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.DishPayload)
		message string
	}{
		{name: "missing name", mutate: func(p *models.DishPayload) { p.Name = "" }, message: "Dish must include a name"},
		{name: "missing description", mutate: func(p *models.DishPayload) { p.Description = "" }, message: "Dish must include a description"},
		{name: "missing price", mutate: func(p *models.DishPayload) { p.Price = models.Int{} }, message: "Dish must include a price"},
		{name: "zero price", mutate: func(p *models.DishPayload) { p.Price = models.NewInt(0) }, message: "Dish must include a price"},
		{name: "negative price", mutate: func(p *models.DishPayload) { p.Price = models.NewInt(-1) }, message: "Dish must include a price"},
		{name: "non-integer price", mutate: func(p *models.DishPayload) { p.Price = models.Int{Present: true} }, message: "Dish must include a price"},
		{name: "missing image", mutate: func(p *models.DishPayload) { p.ImageURL = "" }, message: "Dish must include a image_url"},
		{
			name: "first failure wins",
			mutate: func(p *models.DishPayload) {
				p.Description = ""
				p.ImageURL = ""
			},
			message: "Dish must include a description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newDishService(t)
			payload := validDishPayload()
			tt.mutate(&payload)

			_, err := svc.Create(context.Background(), payload)
			requirePipelineError(t, err, pipeline.KindValidation, tt.message)
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestDishService_Read(t *testing.T) {
	svc, _ := newDishService(t)

	result, err := svc.Read(context.Background(), "existing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "Soup", result.Data.(models.Dish).Name)

	_, err = svc.Read(context.Background(), "nope")
	requirePipelineError(t, err, pipeline.KindNotFound, "Dish does not exist: nope.")
}

func TestDishService_List(t *testing.T) {
	svc, _ := newDishService(t)
	_, err := svc.Create(context.Background(), validDishPayload())
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	dishes := result.Data.([]models.Dish)
	require.Len(t, dishes, 2)
	assert.Equal(t, "existing", dishes[0].ID)
}

func TestDishService_Update(t *testing.T) {
	svc, store := newDishService(t)
	payload := validDishPayload()
	payload.ID = models.NewText("existing")

	result, err := svc.Update(context.Background(), "existing", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)

	dish := result.Data.(models.Dish)
	assert.Equal(t, "existing", dish.ID)
	assert.Equal(t, "Taco", dish.Name)

	stored, err := store.Find(context.Background(), "existing")
	require.NoError(t, err)
	assert.Equal(t, dish, stored)
}

func TestDishService_UpdateWithoutPayloadID(t *testing.T) {
	svc, _ := newDishService(t)

	result, err := svc.Update(context.Background(), "existing", validDishPayload())
	require.NoError(t, err)
	assert.Equal(t, "existing", result.Data.(models.Dish).ID)
}

func TestDishService_UpdateFailures(t *testing.T) {
	tests := []struct {
		name    string
		routeID string
		mutate  func(p *models.DishPayload)
		kind    pipeline.Kind
		message string
	}{
		{
			name:    "unknown dish",
			routeID: "nope",
			mutate:  func(p *models.DishPayload) { p.Name = "" },
			kind:    pipeline.KindNotFound,
			message: "Dish does not exist: nope.",
		},
		{
			name:    "id mismatch",
			routeID: "existing",
			mutate: func(p *models.DishPayload) {
				p.ID = models.NewText("other")
				p.Name = ""
			},
			kind:    pipeline.KindValidation,
			message: "Dish id does not match route id. Dish: other, Route: existing",
		},
		{
			name:    "invalid price",
			routeID: "existing",
			mutate:  func(p *models.DishPayload) { p.Price = models.Int{Present: true} },
			kind:    pipeline.KindValidation,
			message: "Dish must include a price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newDishService(t)
			payload := validDishPayload()
			tt.mutate(&payload)

			_, err := svc.Update(context.Background(), tt.routeID, payload)
			requirePipelineError(t, err, tt.kind, tt.message)

			stored, err := store.Find(context.Background(), "existing")
			require.NoError(t, err)
			assert.Equal(t, "Soup", stored.Name)
			assert.EqualValues(t, 5, stored.Price)
		})
	}
}
