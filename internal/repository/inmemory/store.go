// Package inmemory provides map-backed implementations of the model
// store interfaces with the same failure taxonomy as the Postgres
// adapters. It backs service tests and runs the server without a
// database.
package inmemory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/model"
)

// Store holds all entities behind a single mutex so uniqueness and
// referential checks observe a consistent view.
type Store struct {
	mu         sync.Mutex
	users      map[uuid.UUID]model.User
	userIDs    []uuid.UUID
	products   map[uuid.UUID]model.Product
	productIDs []uuid.UUID
	orders     map[uuid.UUID]model.Order
	orderIDs   []uuid.UUID
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:    map[uuid.UUID]model.User{},
		products: map[uuid.UUID]model.Product{},
		orders:   map[uuid.UUID]model.Order{},
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

// Products returns the product repository view of the store.
func (s *Store) Products() *ProductRepository {
	return &ProductRepository{store: s}
}

// Orders returns the order repository view of the store.
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

// touch returns a timestamp strictly after prev, so a successful update
// always advances updated_at even within clock resolution.
func touch(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
