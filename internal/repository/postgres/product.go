package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/storefront/server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	query := `INSERT INTO products (sku, name, price_cents)
			  VALUES ($1, $2, $3)
			  RETURNING id, sku, name, price_cents, created_at, updated_at`

	var product model.Product
	err := r.db.QueryRow(ctx, query, params.SKU, params.Name, params.PriceCents).Scan(
		&product.ID, &product.SKU, &product.Name, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Product{}, model.NewConflict("sku already exists")
		}
		return model.Product{}, fmt.Errorf("failed to create product: %w", classify(err))
	}

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	query := `SELECT id, sku, name, price_cents, created_at, updated_at
			  FROM products WHERE id = $1`

	var product model.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.SKU, &product.Name, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.NewNotFound("product", id.String())
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", classify(err))
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, sku, name, price_cents, created_at, updated_at
			  FROM products ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", classify(err))
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", classify(err))
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", classify(err))
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (model.Product, error) {
	query := `UPDATE products
			  SET sku = COALESCE($2, sku),
			      name = COALESCE($3, name),
			      price_cents = COALESCE($4, price_cents),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, sku, name, price_cents, created_at, updated_at`

	var product model.Product
	err := r.db.QueryRow(ctx, query, id, params.SKU, params.Name, params.PriceCents).Scan(
		&product.ID, &product.SKU, &product.Name, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.NewNotFound("product", id.String())
		}
		if isUniqueViolation(err) {
			return model.Product{}, model.NewConflict("sku already exists")
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", classify(err))
	}

	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return model.NewNotFound("product", id.String())
	}

	return nil
}
