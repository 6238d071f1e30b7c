package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// OrderService defines business operations for order management.
type OrderService interface {
	Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Order handles HTTP endpoints for orders.
type Order struct {
	orderService OrderService
	logger       *logger.Logger
}

// NewOrder creates a new Order handler.
func NewOrder(orderService OrderService, logger *logger.Logger) *Order {
	return &Order{
		orderService: orderService,
		logger:       logger,
	}
}

type createOrderRequest struct {
	UserID     uuid.UUID `json:"user_id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
}

type updateOrderRequest struct {
	Status     *string `json:"status"`
	TotalCents *int64  `json:"total_cents"`
}

func (h *Order) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	order, err := h.orderService.Create(r.Context(), model.CreateOrderParams{
		UserID:     req.UserID,
		Status:     model.OrderStatus(req.Status),
		TotalCents: req.TotalCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Order) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Order) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidation("", "invalid json body"))
		return
	}

	params := model.UpdateOrderParams{TotalCents: req.TotalCents}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		params.Status = &status
	}

	order, err := h.orderService.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Order) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
