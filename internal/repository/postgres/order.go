package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/storefront/server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	query := `INSERT INTO orders (user_id, status, total_cents)
			  VALUES ($1, $2, $3)
			  RETURNING id, user_id, status, total_cents, created_at, updated_at`

	var order model.Order
	err := r.db.QueryRow(ctx, query, params.UserID, string(params.Status), params.TotalCents).Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalCents, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Lost the race with a concurrent user delete:
			// the service already confirmed the user existed.
			return model.Order{}, model.NewConflict("referenced user no longer exists")
		}
		return model.Order{}, fmt.Errorf("failed to create order: %w", classify(err))
	}

	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	query := `SELECT id, user_id, status, total_cents, created_at, updated_at
			  FROM orders WHERE id = $1`

	var order model.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalCents, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, model.NewNotFound("order", id.String())
		}
		return model.Order{}, fmt.Errorf("failed to get order by id: %w", classify(err))
	}

	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT id, user_id, status, total_cents, created_at, updated_at
			  FROM orders ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", classify(err))
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.TotalCents, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", classify(err))
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", classify(err))
	}

	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error) {
	query := `UPDATE orders
			  SET status = COALESCE($2, status),
			      total_cents = COALESCE($3, total_cents),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, user_id, status, total_cents, created_at, updated_at`

	var order model.Order
	err := r.db.QueryRow(ctx, query, id, (*string)(params.Status), params.TotalCents).Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalCents, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, model.NewNotFound("order", id.String())
		}
		return model.Order{}, fmt.Errorf("failed to update order: %w", classify(err))
	}

	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return model.NewNotFound("order", id.String())
	}

	return nil
}
