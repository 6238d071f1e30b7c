package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storefront/server/internal/model"
)

// Postgres SQLSTATE codes. This file is the only place storage-specific
// error vocabulary may appear; everything above the repositories works
// with the model taxonomy alone.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// classify maps a raw storage error to the failure taxonomy. Call sites
// that can name the violated constraint translate unique and foreign-key
// violations themselves; classify covers the residual cases.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return model.NewConflict("duplicate value violates a unique constraint")
		case codeForeignKeyViolation:
			return model.NewConflict("operation violates a referential constraint")
		}
	}
	return model.NewUnexpected(err)
}
