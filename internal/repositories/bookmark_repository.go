package repositories

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark operations
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error
	DeleteBookmark(ctx context.Context, userID, itemID string) (models.DeleteResult, error)
	FindBookmark(ctx context.Context, userID, itemID string) (*models.Bookmark, error)
	FindBookmarkedBy(ctx context.Context, userID string) ([]models.Bookmark, error)
	FindBookmarkersOf(ctx context.Context, itemID string) ([]models.Bookmark, error)
	CountBookmarkers(ctx context.Context, itemID string) (int64, error)
	DeleteAllBookmarkedBy(ctx context.Context, userID string) (models.DeleteResult, error)
	DeleteAllBookmarkersOf(ctx context.Context, itemID string) (models.DeleteResult, error)
}

// PostgresBookmarkRepository implements BookmarkRepository
type PostgresBookmarkRepository struct {
	table pairTable[models.Bookmark]
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{
		table: pairTable[models.Bookmark]{db: db, subject: "bookmarked_by", object: "bookmarked_item_id"},
	}
}

func (r *PostgresBookmarkRepository) CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	return r.table.create(ctx, bookmark)
}

func (r *PostgresBookmarkRepository) DeleteBookmark(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	return r.table.deletePair(ctx, userID, itemID)
}

func (r *PostgresBookmarkRepository) FindBookmark(ctx context.Context, userID, itemID string) (*models.Bookmark, error) {
	return r.table.findOne(ctx, userID, itemID)
}

func (r *PostgresBookmarkRepository) FindBookmarkedBy(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return r.table.findBy(ctx, r.table.subject, userID)
}

func (r *PostgresBookmarkRepository) FindBookmarkersOf(ctx context.Context, itemID string) ([]models.Bookmark, error) {
	return r.table.findBy(ctx, r.table.object, itemID)
}

func (r *PostgresBookmarkRepository) CountBookmarkers(ctx context.Context, itemID string) (int64, error) {
	return r.table.countBy(ctx, r.table.object, itemID)
}

func (r *PostgresBookmarkRepository) DeleteAllBookmarkedBy(ctx context.Context, userID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.subject, userID)
}

func (r *PostgresBookmarkRepository) DeleteAllBookmarkersOf(ctx context.Context, itemID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.object, itemID)
}
