package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/storefront/server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	query := `INSERT INTO users (email, name)
			  VALUES ($1, $2)
			  RETURNING id, email, name, created_at, updated_at`

	var user model.User
	err := r.db.QueryRow(ctx, query, params.Email, params.Name).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.NewConflict("email already exists")
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", classify(err))
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, email, name, created_at, updated_at
			  FROM users WHERE id = $1`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.NewNotFound("user", id.String())
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", classify(err))
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, email, name, created_at, updated_at
			  FROM users ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", classify(err))
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", classify(err))
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", classify(err))
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	query := `UPDATE users
			  SET email = COALESCE($2, email),
			      name = COALESCE($3, name),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, email, name, created_at, updated_at`

	var user model.User
	err := r.db.QueryRow(ctx, query, id, params.Email, params.Name).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.NewNotFound("user", id.String())
		}
		if isUniqueViolation(err) {
			return model.User{}, model.NewConflict("email already exists")
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", classify(err))
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.NewConflict("user is still referenced by orders")
		}
		return fmt.Errorf("failed to delete user: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return model.NewNotFound("user", id.String())
	}

	return nil
}
