// Package testutil provides a migrated throwaway database for package tests.
package testutil

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/migrations"
)

// SQLiteConfig returns a configuration pointing at a fresh sqlite file under t.TempDir().
func SQLiteConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    filepath.Join(t.TempDir(), "blog.db"),
		DBMaxIdleConns: 2,
		DBMaxOpenConns: 4,
		LogLevel:       "silent",
	}
}

// NewSQLiteDB opens a sqlite database with foreign keys on and the schema migrated.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(SQLiteConfig(t), log.New(io.Discard, "", 0))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.Up(sqlDB, "sqlite", nil))
	return db
}
