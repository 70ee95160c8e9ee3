package postgres

import (
	"testing"
	"time"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Save writes every column, so the mapper must carry the original creation
// time through or updates would reset it to the zero value.
func TestUserMapper_RoundTripKeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	birthdate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice123",
		Email:        "alice@example.com",
		Name:         "Alice",
		Bio:          "hello",
		Birthdate:    &birthdate,
		Locations:    []string{"Lisbon"},
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
		CreatedAt:    createdAt,
	}

	userM := fromUserDomain(user)
	require.NotNil(t, userM)
	assert.Equal(t, createdAt, userM.CreatedAt)

	back := toUserDomain(userM)
	require.NotNil(t, back)
	assert.Equal(t, user.ID, back.ID)
	assert.Equal(t, user.Username, back.Username)
	assert.Equal(t, user.Email, back.Email)
	assert.Equal(t, entity.RoleAdmin, back.Role)
	assert.Equal(t, createdAt, back.CreatedAt)
}

func TestUserMapper_NilSafe(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
