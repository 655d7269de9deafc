package products

import "time"

// Product is a catalog document. Category is a free-text label expected to
// match a Category name for display grouping; it is not a foreign key.
// Stock is advisory only and is never decremented by checkout.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"` // shareable drive link, normalized for display
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct carries the fields an admin submits to create or update a product.
type NewProduct struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// Category is a display grouping label.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
