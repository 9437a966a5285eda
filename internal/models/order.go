package models

import (
	"bytes"
	"encoding/json"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists the accepted statuses in lifecycle order
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order represents a customer order
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

// OrderDish is a single line of an order
type OrderDish struct {
	DishID   string `json:"dishId"`
	Quantity int64  `json:"quantity"`
}

// OrderPayload is the body of a create or update order request.
// A nil Dishes slice means the field was absent or null; an empty one means
// it was [] or not an array at all.
type OrderPayload struct {
	ID           Text               `json:"id"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       OrderStatus        `json:"status"`
	Dishes       []OrderDishPayload `json:"dishes"`
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on field types:
// a status that is not a string keeps its raw JSON, which matches no known
// status.
func (p *OrderPayload) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	status := textField(fields, "status")
	*p = OrderPayload{
		ID:           textField(fields, "id"),
		DeliverTo:    stringField(fields, "deliverTo"),
		MobileNumber: stringField(fields, "mobileNumber"),
		Status:       OrderStatus(status.String()),
		Dishes:       orderLines(fields["dishes"]),
	}
	return nil
}

func orderLines(raw json.RawMessage) []OrderDishPayload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []OrderDishPayload{}
	}
	lines := make([]OrderDishPayload, len(items))
	for i, item := range items {
		_ = lines[i].UnmarshalJSON(item)
	}
	return lines
}

// OrderDishPayload is a single order line as received
type OrderDishPayload struct {
	DishID   string `json:"dishId"`
	Quantity Int    `json:"quantity"`
}

// UnmarshalJSON implements json.Unmarshaler. A line that is not an object
// decodes with no dish id and no quantity.
func (l *OrderDishPayload) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*l = OrderDishPayload{
		DishID:   stringField(fields, "dishId"),
		Quantity: intField(fields, "quantity"),
	}
	return nil
}
