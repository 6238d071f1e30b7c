package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// Order implements order use cases. It depends on the user store as
// well: creating an order confirms the referenced user exists so the
// caller gets a diagnosable validation error instead of a bare
// foreign-key verdict.
type Order struct {
	orderStore model.OrderStore
	userStore  model.UserStore
	logger     *logger.Logger
}

// NewOrder creates a new Order service.
func NewOrder(orderStore model.OrderStore, userStore model.UserStore, logger *logger.Logger) *Order {
	return &Order{
		orderStore: orderStore,
		userStore:  userStore,
		logger:     logger,
	}
}

func validateStatus(status model.OrderStatus) error {
	if status == "" {
		return model.NewValidation("status", "must not be empty")
	}
	if !status.Valid() {
		return model.NewValidation("status", fmt.Sprintf("unknown status %q", status))
	}
	return nil
}

func (s *Order) Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	if params.UserID == uuid.Nil {
		return model.Order{}, model.NewValidation("user_id", "must not be empty")
	}
	if err := validateStatus(params.Status); err != nil {
		return model.Order{}, err
	}
	if params.TotalCents < 0 {
		return model.Order{}, model.NewValidation("total_cents", "must not be negative")
	}

	_, err := s.userStore.GetByID(ctx, params.UserID)
	if model.KindOf(err) == model.KindNotFound {
		return model.Order{}, model.NewValidation("user_id", "user does not exist")
	}
	if err != nil {
		logStorageFailure(s.logger, "create order", err)
		return model.Order{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// The existence check is not transactional with the insert. If a
	// concurrent delete removes the user in between, the foreign key
	// rejects the insert and the adapter reports a conflict.
	order, err := s.orderStore.Create(ctx, params)
	if err != nil {
		logStorageFailure(s.logger, "create order", err)
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (s *Order) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := s.orderStore.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.logger, "get order", err)
		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderStore.List(ctx)
	if err != nil {
		logStorageFailure(s.logger, "list orders", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *Order) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error) {
	if params.Status == nil && params.TotalCents == nil {
		return model.Order{}, model.NewValidation("", "no fields to update")
	}
	if params.Status != nil {
		if err := validateStatus(*params.Status); err != nil {
			return model.Order{}, err
		}
	}
	if params.TotalCents != nil && *params.TotalCents < 0 {
		return model.Order{}, model.NewValidation("total_cents", "must not be negative")
	}

	order, err := s.orderStore.Update(ctx, id, params)
	if err != nil {
		logStorageFailure(s.logger, "update order", err)
		return model.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

func (s *Order) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderStore.Delete(ctx, id); err != nil {
		logStorageFailure(s.logger, "delete order", err)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
