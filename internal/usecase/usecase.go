package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-admin-api/internal/delivery/http/middleware"

	"github.com/jackc/pgx/v5/pgconn"
)

// isDuplicateKeyError checks if the error is a unique constraint violation
// on a constraint whose name contains constraintName.
// gorm must run without TranslateError so the constraint name survives.
func isDuplicateKeyError(err error, constraintName string) bool {
	// PostgreSQL error code 23505 = unique_violation
	return isConstraintError(err, "23505", constraintName)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	// PostgreSQL error code 23503 = foreign_key_violation
	return isConstraintError(err, "23503", constraintName)
}

func isConstraintError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
}

// actorFromContext returns the authenticated operator, or nil for anonymous calls
func actorFromContext(ctx context.Context) *uint {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
