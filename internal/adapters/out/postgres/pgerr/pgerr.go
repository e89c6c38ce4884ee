// Package pgerr translates Postgres failures caused by concurrent
// transactions into the domain's ConflictError.
package pgerr

import (
	"errors"

	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes reported as conflicts.
const (
	UniqueViolation      = "23505"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
)

// Translate wraps err in a ConflictError for resource when Postgres reports a
// unique violation, serialization failure, deadlock or lock timeout.
// Any other error, including nil, is returned unchanged.
func Translate(err error, resource string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation, SerializationFailure, DeadlockDetected, LockNotAvailable:
		return errs.NewConflictErrorWithCause(resource, err)
	default:
		return err
	}
}
