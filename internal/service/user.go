package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// User implements user use cases on top of a UserStore.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func validateEmail(email string) error {
	if email == "" {
		return model.NewValidation("email", "must not be empty")
	}
	if !strings.Contains(email, "@") {
		return model.NewValidation("email", "must be a valid email address")
	}
	return nil
}

func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if err := validateEmail(params.Email); err != nil {
		return model.User{}, err
	}
	if params.Name == "" {
		return model.User{}, model.NewValidation("name", "must not be empty")
	}

	user, err := s.userStore.Create(ctx, params)
	if err != nil {
		logStorageFailure(s.logger, "create user", err)
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.logger, "get user", err)
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		logStorageFailure(s.logger, "list users", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *User) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	if params.Email == nil && params.Name == nil {
		return model.User{}, model.NewValidation("", "no fields to update")
	}
	if params.Email != nil {
		if err := validateEmail(*params.Email); err != nil {
			return model.User{}, err
		}
	}
	if params.Name != nil && *params.Name == "" {
		return model.User{}, model.NewValidation("name", "must not be empty")
	}

	user, err := s.userStore.Update(ctx, id, params)
	if err != nil {
		logStorageFailure(s.logger, "update user", err)
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		logStorageFailure(s.logger, "delete user", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
