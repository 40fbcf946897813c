package repositories

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow) error
	DeleteFollow(ctx context.Context, followerID, followedID string) (models.DeleteResult, error)
	FindFollow(ctx context.Context, followerID, followedID string) (*models.Follow, error)
	FindFollowing(ctx context.Context, followerID string) ([]models.Follow, error)
	FindFollowers(ctx context.Context, followedID string) ([]models.Follow, error)
	CountFollowers(ctx context.Context, followedID string) (int64, error)
	DeleteAllFollowing(ctx context.Context, followerID string) (models.DeleteResult, error)
	DeleteAllFollowers(ctx context.Context, followedID string) (models.DeleteResult, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	table pairTable[models.Follow]
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{
		table: pairTable[models.Follow]{db: db, subject: "follower_id", object: "followed_id"},
	}
}

// CreateFollow inserts the follow as-is. It does not check whether the pair
// exists; the unique index rejects a second insert with ErrDuplicatePair.
func (r *PostgresFollowRepository) CreateFollow(ctx context.Context, follow *models.Follow) error {
	return r.table.create(ctx, follow)
}

// DeleteFollow removes the follow for the exact pair. A missing pair yields
// RemovedCount 0 and no error.
func (r *PostgresFollowRepository) DeleteFollow(ctx context.Context, followerID, followedID string) (models.DeleteResult, error) {
	return r.table.deletePair(ctx, followerID, followedID)
}

func (r *PostgresFollowRepository) FindFollow(ctx context.Context, followerID, followedID string) (*models.Follow, error) {
	return r.table.findOne(ctx, followerID, followedID)
}

// FindFollowing returns every follow where followerID is the follower
func (r *PostgresFollowRepository) FindFollowing(ctx context.Context, followerID string) ([]models.Follow, error) {
	return r.table.findBy(ctx, r.table.subject, followerID)
}

// FindFollowers returns every follow where followedID is being followed
func (r *PostgresFollowRepository) FindFollowers(ctx context.Context, followedID string) ([]models.Follow, error) {
	return r.table.findBy(ctx, r.table.object, followedID)
}

func (r *PostgresFollowRepository) CountFollowers(ctx context.Context, followedID string) (int64, error) {
	return r.table.countBy(ctx, r.table.object, followedID)
}

// DeleteAllFollowing unfollows everyone followerID follows
func (r *PostgresFollowRepository) DeleteAllFollowing(ctx context.Context, followerID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.subject, followerID)
}

// DeleteAllFollowers removes every follower of followedID
func (r *PostgresFollowRepository) DeleteAllFollowers(ctx context.Context, followedID string) (models.DeleteResult, error) {
	return r.table.deleteBy(ctx, r.table.object, followedID)
}
