package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// uniqueColumns parses a model the way AutoMigrate does and collects the
// columns covered by a unique index.
func uniqueColumns(t *testing.T, value any) map[string]bool {
	t.Helper()

	parsed, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	columns := make(map[string]bool)
	for _, index := range parsed.ParseIndexes() {
		if index.Class != "UNIQUE" {
			continue
		}
		for _, field := range index.Fields {
			columns[field.DBName] = true
		}
	}

	return columns
}

// The database indexes are the arbiters for uniqueness races, so the models
// must declare them for the migration to create.
func TestUserModel_DeclaresUniqueIndexes(t *testing.T) {
	columns := uniqueColumns(t, &UserModel{})

	assert.True(t, columns["username"])
	assert.True(t, columns["email"])
}

func TestEventModel_DeclaresUniqueCodeIndex(t *testing.T) {
	assert.True(t, uniqueColumns(t, &EventModel{})["code"])
}

func TestReminderModel_DeclaresUniqueCodeIndex(t *testing.T) {
	assert.True(t, uniqueColumns(t, &ReminderModel{})["code"])
}
