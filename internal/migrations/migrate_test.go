package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// No expectations are set, so goose's first statement fails.
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init.sql", entries[0].Name())
}
