package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// rowScanner dipenuhi pgx.Row dan pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally limited to one constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
