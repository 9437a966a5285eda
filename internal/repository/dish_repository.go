package repository

import (
	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
)

// DishStore is the in-memory dish collection
type DishStore = Store[models.Dish]

// NewDishStore creates an empty dish store
func NewDishStore(ids IDGenerator) *DishStore {
	return NewStore(ids,
		func(d *models.Dish) string { return d.ID },
		func(d *models.Dish, id string) { d.ID = id },
	)
}

// SeedDishes returns the demo menu loaded when SEED_DATA is enabled
func SeedDishes() []models.Dish {
	return []models.Dish{
		{
			ID:          "3c637d011d844ebab1205fef8a7e36ea",
			Name:        "Broccoli and red pepper pizza",
			Description: "Homemade pizza with broccoli and red pepper",
			Price:       15,
			ImageURL:    "https://images.pexels.com/photos/11314128/pexels-photo-11314128.jpeg?h=530&w=350",
		},
		{
			ID:          "d351db2b49b69679504652ea1cf38241",
			Name:        "Dolcelatte and chickpea spaghetti",
			Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
			Price:       19,
			ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?h=530&w=350",
		},
		{
			ID:          "90c3d873684bf381dfab29034b5bba73",
			Name:        "Falafel and tahini bagel",
			Description: "A warm bagel filled with falafel and tahini",
			Price:       6,
			ImageURL:    "https://images.pexels.com/photos/4560606/pexels-photo-4560606.jpeg?h=530&w=350",
		},
	}
}
