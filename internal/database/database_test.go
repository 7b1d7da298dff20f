package database

import (
	"path/filepath"
	"testing"

	"github.com/luizgag/fiap-backend-qualidade/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Type = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	// Migrations should have created every table.
	for _, table := range []string{"users", "sessions", "posts", "comments", "likes"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Type = "oracle"

	_, err := Open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Type = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	// Running the migrations a second time must not fail.
	require.NoError(t, RunMigrations(db, "sqlite"))
}
