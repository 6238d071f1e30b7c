package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/server/internal/model"
	"github.com/storefront/server/internal/testutil"
)

func newOrderMux(svc OrderService) *chi.Mux {
	h := NewOrder(svc, testutil.MakeNoopLogger())
	r := chi.NewRouter()
	r.Post("/orders", h.Create)
	r.Get("/orders", h.List)
	r.Get("/orders/{id}", h.Get)
	r.Put("/orders/{id}", h.Update)
	r.Delete("/orders/{id}", h.Delete)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*MockOrderService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"user_id":"` + userID.String() + `","status":"pending","total_cents":500}`,
			mockSetup: func(svc *MockOrderService) {
				svc.On("Create", mock.Anything, model.CreateOrderParams{
					UserID:     userID,
					Status:     model.OrderStatusPending,
					TotalCents: 500,
				}).Return(model.Order{ID: uuid.New(), UserID: userID, Status: model.OrderStatusPending, TotalCents: 500}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown user is validation",
			body: `{"user_id":"` + userID.String() + `","status":"pending","total_cents":500}`,
			mockSetup: func(svc *MockOrderService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(model.Order{}, model.NewValidation("user_id", "user does not exist"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed user id in body",
			body:       `{"user_id":"nope","status":"pending","total_cents":500}`,
			mockSetup:  func(svc *MockOrderService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockOrderService{}
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newOrderMux(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()
	paid := model.OrderStatusPaid

	svc := &MockOrderService{}
	svc.On("Update", mock.Anything, id, model.UpdateOrderParams{Status: &paid}).
		Return(model.Order{ID: id, Status: paid}, nil)

	req := httptest.NewRequest(http.MethodPut, "/orders/"+id.String(), strings.NewReader(`{"status":"paid"}`))
	rec := httptest.NewRecorder()

	newOrderMux(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandler_Delete(t *testing.T) {
	id := uuid.New()

	svc := &MockOrderService{}
	svc.On("Delete", mock.Anything, id).
		Return(model.NewNotFound("order", id.String()))

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	newOrderMux(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}
