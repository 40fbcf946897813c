package repositories

import (
	"path/filepath"
	"testing"

	"github.com/anonto42/nano-midea/relations/pkg/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated sqlite database private to the test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenSQL(&config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "relations.db"),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))

	// sqlite allows one writer at a time
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}
