package inmemory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Create(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.SKU == params.SKU {
			return model.Product{}, model.NewConflict("sku already exists")
		}
	}

	now := time.Now()
	product := model.Product{
		ID:         uuid.New(),
		SKU:        params.SKU,
		Name:       params.Name,
		PriceCents: params.PriceCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.products[product.ID] = product
	s.productIDs = append(s.productIDs, product.ID)

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return model.Product{}, model.NewNotFound("product", id.String())
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		products = append(products, s.products[id])
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return model.Product{}, model.NewNotFound("product", id.String())
	}

	if params.SKU != nil {
		for otherID, p := range s.products {
			if otherID != id && p.SKU == *params.SKU {
				return model.Product{}, model.NewConflict("sku already exists")
			}
		}
		product.SKU = *params.SKU
	}
	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.PriceCents != nil {
		product.PriceCents = *params.PriceCents
	}
	product.UpdatedAt = touch(product.UpdatedAt)
	s.products[id] = product

	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return model.NewNotFound("product", id.String())
	}

	delete(s.products, id)
	s.productIDs = removeID(s.productIDs, id)

	return nil
}
