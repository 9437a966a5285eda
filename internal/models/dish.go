package models

// Dish represents a menu item
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

// DishPayload is the body of a create or update dish request.
// Fields are optional until validated. A string field of another JSON type
// decodes as empty.
type DishPayload struct {
	ID          Text   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on field types.
func (p *DishPayload) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*p = DishPayload{
		ID:          textField(fields, "id"),
		Name:        stringField(fields, "name"),
		Description: stringField(fields, "description"),
		Price:       intField(fields, "price"),
		ImageURL:    stringField(fields, "image_url"),
	}
	return nil
}
