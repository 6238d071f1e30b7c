package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/server/internal/model"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderService mocks the OrderService interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
