package inmemory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[params.UserID]; !ok {
		return model.Order{}, model.NewConflict("referenced user no longer exists")
	}

	now := time.Now()
	order := model.Order{
		ID:         uuid.New(),
		UserID:     params.UserID,
		Status:     params.Status,
		TotalCents: params.TotalCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.orders[order.ID] = order
	s.orderIDs = append(s.orderIDs, order.ID)

	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return model.Order{}, model.NewNotFound("order", id.String())
	}

	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		orders = append(orders, s.orders[id])
	}

	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return model.Order{}, model.NewNotFound("order", id.String())
	}

	if params.Status != nil {
		order.Status = *params.Status
	}
	if params.TotalCents != nil {
		order.TotalCents = *params.TotalCents
	}
	order.UpdatedAt = touch(order.UpdatedAt)
	s.orders[id] = order

	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return model.NewNotFound("order", id.String())
	}

	delete(s.orders, id)
	s.orderIDs = removeID(s.orderIDs, id)

	return nil
}
