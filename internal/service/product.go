package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// Product implements product use cases on top of a ProductStore.
type Product struct {
	productStore model.ProductStore
	logger       *logger.Logger
}

// NewProduct creates a new Product service.
func NewProduct(productStore model.ProductStore, logger *logger.Logger) *Product {
	return &Product{
		productStore: productStore,
		logger:       logger,
	}
}

func (s *Product) Create(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	if params.SKU == "" {
		return model.Product{}, model.NewValidation("sku", "must not be empty")
	}
	if params.Name == "" {
		return model.Product{}, model.NewValidation("name", "must not be empty")
	}
	if params.PriceCents < 0 {
		return model.Product{}, model.NewValidation("price_cents", "must not be negative")
	}

	product, err := s.productStore.Create(ctx, params)
	if err != nil {
		logStorageFailure(s.logger, "create product", err)
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *Product) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.logger, "get product", err)
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (s *Product) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productStore.List(ctx)
	if err != nil {
		logStorageFailure(s.logger, "list products", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *Product) Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (model.Product, error) {
	if params.SKU == nil && params.Name == nil && params.PriceCents == nil {
		return model.Product{}, model.NewValidation("", "no fields to update")
	}
	if params.SKU != nil && *params.SKU == "" {
		return model.Product{}, model.NewValidation("sku", "must not be empty")
	}
	if params.Name != nil && *params.Name == "" {
		return model.Product{}, model.NewValidation("name", "must not be empty")
	}
	if params.PriceCents != nil && *params.PriceCents < 0 {
		return model.Product{}, model.NewValidation("price_cents", "must not be negative")
	}

	product, err := s.productStore.Update(ctx, id, params)
	if err != nil {
		logStorageFailure(s.logger, "update product", err)
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *Product) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productStore.Delete(ctx, id); err != nil {
		logStorageFailure(s.logger, "delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
