package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStore defines persistence operations for orders.
type OrderStore interface {
	Create(ctx context.Context, params CreateOrderParams) (Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateOrderParams) (Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Order represents a stored order.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OrderStatus enumerates order states.
type OrderStatus string

const (
	// OrderStatusPending is a newly placed, unpaid order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid is a paid order awaiting shipment.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusShipped is an order handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusCompleted is a delivered order.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is a cancelled order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CreateOrderParams contains parameters to create an order.
type CreateOrderParams struct {
	UserID     uuid.UUID
	Status     OrderStatus
	TotalCents int64
}

// UpdateOrderParams contains parameters for a partial order update.
// Nil fields are left unchanged.
type UpdateOrderParams struct {
	Status     *OrderStatus
	TotalCents *int64
}
