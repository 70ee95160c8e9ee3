package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgUniqueViolationCode,
		Message:        `duplicate key value violates unique constraint "` + constraint + `"`,
		ConstraintName: constraint,
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(uniqueViolation("idx_users_email")))
	assert.True(t, isUniqueConstraintViolation(
		errors.Wrap(uniqueViolation("idx_users_email"), "failed to create user"),
	))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolationCode}))
	// A bare sentinel without the driver error carries no constraint info
	// and must not be treated as a recognized violation.
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicated key not allowed")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolationCode}))
	assert.False(t, isForeignKeyConstraintViolation(uniqueViolation("idx_users_email")))
}

// The registration retry loop only works if a username conflict is
// distinguishable from an email conflict on the same table.
func TestConstraintNameContains_TellsUsernameFromEmail(t *testing.T) {
	usernameErr := errors.Wrap(uniqueViolation("idx_users_username"), "failed to create user")
	emailErr := errors.Wrap(uniqueViolation("idx_users_email"), "failed to create user")

	assert.True(t, constraintNameContains(usernameErr, "username"))
	assert.False(t, constraintNameContains(emailErr, "username"))
	assert.False(t, constraintNameContains(errors.New("duplicated key not allowed"), "username"))
	assert.False(t, constraintNameContains(nil, "username"))
}
