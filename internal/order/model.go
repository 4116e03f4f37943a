package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ShippingAddress is embedded in the order request and persisted with the
// order. All fields are required; presence is the only check applied.
type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

// Order is the denormalized client-facing view: the order row with its line
// items and each item's product display fields embedded.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Status          Status          `json:"status"`
	TotalAmount     string          `json:"total_amount"` // NUMERIC -> string
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Items           []Item          `json:"order_items"`
}

type Item struct {
	ID           string      `json:"id"`
	Quantity     int         `json:"quantity"`
	QuantityUnit string      `json:"quantity_unit"`
	Price        string      `json:"price"` // unit price captured at purchase time
	Product      ItemProduct `json:"products"`
}

// ItemProduct carries the product display fields joined into the view.
type ItemProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
