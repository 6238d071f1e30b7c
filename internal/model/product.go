package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for products.
type ProductStore interface {
	Create(ctx context.Context, params CreateProductParams) (Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Product represents a stored product.
type Product struct {
	ID         uuid.UUID `json:"id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateProductParams contains parameters to create a product.
type CreateProductParams struct {
	SKU        string
	Name       string
	PriceCents int64
}

// UpdateProductParams contains parameters for a partial product update.
// Nil fields are left unchanged.
type UpdateProductParams struct {
	SKU        *string
	Name       *string
	PriceCents *int64
}
