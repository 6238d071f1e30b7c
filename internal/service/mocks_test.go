package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/server/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductStore mocks the ProductStore interface
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (model.Product, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderStore mocks the OrderStore interface
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderStore) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderStore) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateOrderParams) (model.Order, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
