package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// ProductService defines business operations for product management.
type ProductService interface {
	Create(ctx context.Context, params model.CreateProductParams) (model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Product handles HTTP endpoints for products.
type Product struct {
	productService ProductService
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		logger:         logger,
	}
}

type createProductRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

type updateProductRequest struct {
	SKU        *string `json:"sku"`
	Name       *string `json:"name"`
	PriceCents *int64  `json:"price_cents"`
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	product, err := h.productService.Create(r.Context(), model.CreateProductParams{
		SKU:        req.SKU,
		Name:       req.Name,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	product, err := h.productService.Update(r.Context(), id, model.UpdateProductParams{
		SKU:        req.SKU,
		Name:       req.Name,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
