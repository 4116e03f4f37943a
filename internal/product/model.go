package product

import "time"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListResponse represents the paginated catalog response.
// swagger:model
type ListResponse struct {
	// search query applied
	Q string `json:"q,omitempty"`
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int       `json:"offset"`
	Items  []Product `json:"items"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string `json:"name"        example:"Masala Murukku"`
	Description string `json:"description" example:"Crunchy rice spirals"`
	Image       string `json:"image"       example:"https://cdn.example.com/murukku.jpg"`
	Price       string `json:"price"       example:"120.00"`
	Stock       int    `json:"stock"       example:"40"`
	IsAvailable bool   `json:"is_available" example:"true"`
}

// UpdateProductRequest payload of partial update.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Stock       *int   `json:"stock"`
	IsAvailable *bool  `json:"is_available"`
}
