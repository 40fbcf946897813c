package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/populate"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/anonto42/nano-midea/relations/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

type mockPostRepository struct{ mock.Mock }

func (m *mockPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Post)
	return p, args.Error(1)
}

func (m *mockPostRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]models.Post)
	return p, args.Error(1)
}

// newTestResolver resolves users from db and posts from the returned mock
func newTestResolver(t *testing.T, db *gorm.DB, users ...models.User) (*populate.Resolver, *mockPostRepository) {
	t.Helper()
	if len(users) > 0 {
		require.NoError(t, db.Create(&users).Error)
	}
	posts := &mockPostRepository{}
	return populate.NewResolver(repositories.NewPostgresUserRepository(db), posts), posts
}
