// Package service holds the use-case layer. Each service validates the
// request shape before touching storage, so repository errors are
// reserved for constraints only storage can enforce.
package service

import (
	"github.com/storefront/server/internal/logger"
	"github.com/storefront/server/internal/model"
)

// logStorageFailure records the cause of unexpected storage errors.
// The other kinds are caller-correctable and carry their own message.
func logStorageFailure(l *logger.Logger, operation string, err error) {
	if model.KindOf(err) == model.KindUnexpected {
		l.Error("storage failure", "operation", operation, "error", err)
	}
}
