package cart

import "time"

// Item is a cart line joined with its product's display fields.
type Item struct {
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	QuantityUnit string    `json:"quantity_unit"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Price        string    `json:"price"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddItemRequest payload for adding to the cart.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ProductID    string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity     int    `json:"quantity" example:"1"`
	QuantityUnit string `json:"quantity_unit" example:"250g"`
}

// SetQuantityRequest payload for changing a line's quantity.
// swagger:model SetQuantityRequest
type SetQuantityRequest struct {
	Quantity int `json:"quantity" example:"3"`
}
