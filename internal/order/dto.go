package order

import "github.com/shopspring/decimal"

const DefaultQuantityUnit = "250g"

// CreateOrderItem is one checkout line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity" example:"2"`
	// defaults to "250g" when omitted
	QuantityUnit string           `json:"quantity_unit" example:"500g"`
	UnitPrice    *decimal.Decimal `json:"unit_price" swaggertype:"number" example:"5.00"`
	// legacy storefront alias for unit_price
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
}

// CreateOrderRequest payload for POST /api/orders.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"`
	ShippingAddress *ShippingAddress  `json:"shipping_address"`
	// camelCase alias some storefront builds still send
	ShippingAddressAlias *ShippingAddress `json:"shippingAddress"`
	// computed from the items when omitted
	TotalAmount *decimal.Decimal `json:"total_amount" swaggertype:"number" example:"10.00"`
}

// UpdateStatusRequest payload for PATCH /api/orders/:id.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status Status `json:"status" example:"shipped"`
}
