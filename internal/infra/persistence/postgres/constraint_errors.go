package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// PostgreSQL error codes, per the SQLSTATE standard.
const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
)

// Helper functions for PostgreSQL error checking. The driver error is
// inspected directly: GORM's TranslateError option is left off because its
// sentinel errors discard the violated constraint's name, which is needed
// to tell an email conflict from a username conflict on the users table.
func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

func isForeignKeyConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// constraintNameContains reports whether the violated constraint mentions
// the given column.
func constraintNameContains(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return strings.Contains(strings.ToLower(pgErr.ConstraintName), column)
}
