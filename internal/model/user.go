package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Email string
	Name  string
}

// UpdateUserParams contains parameters for a partial user update.
// Nil fields are left unchanged.
type UpdateUserParams struct {
	Email *string
	Name  *string
}
