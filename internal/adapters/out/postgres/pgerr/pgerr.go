// Package pgerr translates postgres driver errors into domain errors.
package pgerr

import (
	"errors"

	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

// Conflict maps a unique violation to errs.ConflictError and returns any
// other error unchanged.
func Conflict(err error, param, key string) error {
	if IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause(param, key, err)
	}
	return err
}
