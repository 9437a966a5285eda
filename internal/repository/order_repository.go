package repository

import (
	"slices"

	"github.com/Lixing-Zhang/grubdash/backend/internal/models"
)

// OrderStore is the in-memory order collection
type OrderStore = Store[models.Order]

// NewOrderStore creates an empty order store
func NewOrderStore(ids IDGenerator) *OrderStore {
	return NewStore(ids,
		func(o *models.Order) string { return o.ID },
		func(o *models.Order, id string) { o.ID = id },
	).WithClone(cloneOrder)
}

func cloneOrder(o models.Order) models.Order {
	o.Dishes = slices.Clone(o.Dishes)
	return o
}

// SeedOrders returns the demo orders loaded when SEED_DATA is enabled
func SeedOrders() []models.Order {
	return []models.Order{
		{
			ID:           "f6069a542257054114138301947672ba",
			DeliverTo:    "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			MobileNumber: "(202) 456-1111",
			Status:       models.StatusOutForDelivery,
			Dishes: []models.OrderDish{
				{DishID: "90c3d873684bf381dfab29034b5bba73", Quantity: 2},
			},
		},
		{
			ID:           "5a887d326e83d3c5bdcbee398ea32aff",
			DeliverTo:    "308 Negra Arroyo Lane, Albuquerque, NM",
			MobileNumber: "(505) 143-3369",
			Status:       models.StatusDelivered,
			Dishes: []models.OrderDish{
				{DishID: "d351db2b49b69679504652ea1cf38241", Quantity: 2},
			},
		},
	}
}
