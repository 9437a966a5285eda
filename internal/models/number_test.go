package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Int
	}{
		{name: "integer", body: `{"quantity": 2}`, expected: Int{Value: 2, Present: true, Valid: true}},
		{name: "whole float", body: `{"quantity": 3.0}`, expected: Int{Value: 3, Present: true, Valid: true}},
		{name: "zero", body: `{"quantity": 0}`, expected: Int{Value: 0, Present: true, Valid: true}},
		{name: "negative", body: `{"quantity": -4}`, expected: Int{Value: -4, Present: true, Valid: true}},
		{name: "fraction", body: `{"quantity": 1.5}`, expected: Int{Present: true}},
		{name: "string", body: `{"quantity": "2"}`, expected: Int{Present: true}},
		{name: "bool", body: `{"quantity": true}`, expected: Int{Present: true}},
		{name: "object", body: `{"quantity": {}}`, expected: Int{Present: true}},
		{name: "null", body: `{"quantity": null}`, expected: Int{}},
		{name: "max int64", body: `{"quantity": 9223372036854775807}`, expected: NewInt(math.MaxInt64)},
		{name: "min int64", body: `{"quantity": -9223372036854775808}`, expected: NewInt(math.MinInt64)},
		{name: "above 2^53", body: `{"quantity": 9007199254740993}`, expected: NewInt(9007199254740993)},
		{name: "2^63", body: `{"quantity": 9223372036854775808}`, expected: Int{Present: true}},
		{name: "2^63 as float", body: `{"quantity": 9.223372036854775808e18}`, expected: Int{Present: true}},
		{name: "exponent", body: `{"quantity": 1e2}`, expected: NewInt(100)},
		{name: "absent", body: `{}`, expected: Int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var line OrderDishPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &line))
			assert.Equal(t, tt.expected, line.Quantity)
		})
	}
}

func TestInt_Positive(t *testing.T) {
	assert.True(t, NewInt(1).Positive())
	assert.False(t, NewInt(0).Positive())
	assert.False(t, NewInt(-1).Positive())
	assert.False(t, Int{Present: true}.Positive())
	assert.False(t, Int{}.Positive())
}

func TestInt_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(DishPayload{Name: "Taco", Price: NewInt(8)})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":8`)

	out, err = json.Marshal(DishPayload{Name: "Taco"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":null`)
}

func TestOrderPayload_Dishes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []OrderDishPayload
	}{
		{name: "absent", body: `{"deliverTo": "Home"}`},
		{name: "null", body: `{"dishes": null}`},
		{name: "empty", body: `{"dishes": []}`, expected: []OrderDishPayload{}},
		{name: "string", body: `{"dishes": "x"}`, expected: []OrderDishPayload{}},
		{name: "object", body: `{"dishes": {}}`, expected: []OrderDishPayload{}},
		{name: "number line", body: `{"dishes": [1]}`, expected: []OrderDishPayload{{}}},
		{
			name:     "lines",
			body:     `{"dishes": [{"dishId": "a", "quantity": 2}, {"dishId": 7, "quantity": "x"}]}`,
			expected: []OrderDishPayload{{DishID: "a", Quantity: NewInt(2)}, {Quantity: Int{Present: true}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload OrderPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.Equal(t, tt.expected, payload.Dishes)
		})
	}
}

func TestOrderPayload_WrongFieldTypes(t *testing.T) {
	var payload OrderPayload
	body := `{"id": 42, "deliverTo": 1, "mobileNumber": true, "status": 5}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.Equal(t, "42", payload.ID.String())
	assert.False(t, payload.ID.Valid)
	assert.Empty(t, payload.DeliverTo)
	assert.Empty(t, payload.MobileNumber)
	assert.Equal(t, OrderStatus("5"), payload.Status)
	assert.False(t, payload.Status.Valid())

	require.NoError(t, json.Unmarshal([]byte(`"not an object"`), &payload))
	assert.Equal(t, OrderPayload{}, payload)
}

func TestDishPayload_WrongFieldTypes(t *testing.T) {
	var payload DishPayload
	body := `{"id": {"x": 1}, "name": 5, "description": ["a"], "price": "8", "image_url": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.Equal(t, DishPayload{ID: payload.ID, Price: Int{Present: true}}, payload)
	assert.True(t, payload.ID.Present)
	assert.False(t, payload.ID.Valid)
	assert.Equal(t, `{"x": 1}`, payload.ID.String())
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("Pending").Valid())
}
