package inmemory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == params.Email {
			return model.User{}, model.NewConflict("email already exists")
		}
	}

	now := time.Now()
	user := model.User{
		ID:        uuid.New(),
		Email:     params.Email,
		Name:      params.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.userIDs = append(s.userIDs, user.ID)

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.NewNotFound("user", id.String())
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		users = append(users, s.users[id])
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.NewNotFound("user", id.String())
	}

	if params.Email != nil {
		for otherID, u := range s.users {
			if otherID != id && u.Email == *params.Email {
				return model.User{}, model.NewConflict("email already exists")
			}
		}
		user.Email = *params.Email
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	user.UpdatedAt = touch(user.UpdatedAt)
	s.users[id] = user

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return model.NewNotFound("user", id.String())
	}

	for _, o := range s.orders {
		if o.UserID == id {
			return model.NewConflict("user is still referenced by orders")
		}
	}

	delete(s.users, id)
	s.userIDs = removeID(s.userIDs, id)

	return nil
}
