package repositories

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"gorm.io/gorm"
)

// DislikeRepository defines the interface for dislike data operations
type DislikeRepository interface {
	CreateDislike(ctx context.Context, dislike *models.Dislike) error
	DeleteDislike(ctx context.Context, userID, itemID string) (models.DeleteResult, error)
	FindDislike(ctx context.Context, userID, itemID string) (*models.Dislike, error)
	FindDislikedBy(ctx context.Context, userID string) ([]models.Dislike, error)
	FindDislikersOf(ctx context.Context, itemID string) ([]models.Dislike, error)
	CountDislikes(ctx context.Context, itemID string) (int64, error)
	DeleteAllDislikedBy(ctx context.Context, userID string) (models.DeleteResult, error)
	DeleteAllDislikersOf(ctx context.Context, itemID string) (models.DeleteResult, error)
}

// PostgresDislikeRepository implements DislikeRepository for PostgreSQL
type PostgresDislikeRepository struct {
	table pairTable[models.Dislike]
}

// NewPostgresDislikeRepository creates a new PostgresDislikeRepository
func NewPostgresDislikeRepository(db *gorm.DB) *PostgresDislikeRepository {
	return &PostgresDislikeRepository{
		table: pairTable[models.Dislike]{db: db, subject: "disliked_by", object: "disliked_item_id"},
	}
}

// CreateDislike creates a new dislike
func (r *PostgresDislikeRepository) CreateDislike(ctx context.Context, dislike *models.Dislike) error {
	return r.table.create(ctx, dislike)
}

// DeleteDislike deletes the dislike userID left on itemID, if any
func (r *PostgresDislikeRepository) DeleteDislike(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	return r.table.deletePair(ctx, userID, itemID)
}

// FindDislike retrieves a specific dislike by user and item
func (r *PostgresDislikeRepository) FindDislike(ctx context.Context, userID, itemID string) (*models.Dislike, error) {
	return r.table.findOne(ctx, userID, itemID)
}

// FindDislikedBy retrieves all dislikes left by a user
func (r *PostgresDislikeRepository) FindDislikedBy(ctx context.Context, userID string) ([]models.Dislike, error) {
	return r.table.findBy(ctx, r.table.subject, userID)
}

// FindDislikersOf retrieves all dislikes on an item
func (r *PostgresDislikeRepository) FindDislikersOf(ctx context.Context, itemID string) ([]models.Dislike, error) {
	return r.table.findBy(ctx, r.table.object, itemID)
}

// CountDislikes retrieves how many users disliked an item
func (r *PostgresDislikeRepository) CountDislikes(ctx context.Context, itemID string) (int64, error) {
	return r.table.countBy(ctx, r.table.object, itemID)
}

func (r *PostgresDislikeRepository) DeleteAllDislikedBy(ctx context.Context, userID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.subject, userID)
}

func (r *PostgresDislikeRepository) DeleteAllDislikersOf(ctx context.Context, itemID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.object, itemID)
}
