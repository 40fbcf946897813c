package services

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/populate"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
)

// FollowService is the entry point for follow relationships
type FollowService struct {
	follows  repositories.FollowRepository
	resolver *populate.Resolver
}

func NewFollowService(follows repositories.FollowRepository, resolver *populate.Resolver) *FollowService {
	return &FollowService{follows: follows, resolver: resolver}
}

// FollowUser records that followerID follows followedID. Following twice is a
// no-op: the existing follow is returned with created == false. Following
// yourself is allowed.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followedID string) (*models.Follow, bool, error) {
	follow, created, err := ensurePair(ctx,
		func(ctx context.Context) (*models.Follow, error) {
			return s.follows.FindFollow(ctx, followerID, followedID)
		},
		s.follows.CreateFollow,
		&models.Follow{FollowerID: followerID, FollowedID: followedID},
	)
	if err != nil {
		return nil, false, err
	}
	if created {
		l := logger.Ctx(ctx)
		l.Debug().Str("follower_id", followerID).Str("followed_id", followedID).Msg("follow created")
	}
	return follow, created, nil
}

// UnfollowUser removes the follow if present
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followedID string) (models.DeleteResult, error) {
	return s.follows.DeleteFollow(ctx, followerID, followedID)
}

// ListFollowing lists who userID follows, with each followed user resolved
func (s *FollowService) ListFollowing(ctx context.Context, userID string) ([]models.FollowView, error) {
	follows, err := s.follows.FindFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolver.FollowsWithFollowed(ctx, follows)
}

// ListFollowers lists who follows userID, with each follower resolved
func (s *FollowService) ListFollowers(ctx context.Context, userID string) ([]models.FollowView, error) {
	follows, err := s.follows.FindFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolver.FollowsWithFollower(ctx, follows)
}

// FindFollow returns the follow for the pair, or nil when there is none
func (s *FollowService) FindFollow(ctx context.Context, followerID, followedID string) (*models.Follow, error) {
	return s.follows.FindFollow(ctx, followerID, followedID)
}

func (s *FollowService) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return s.follows.CountFollowers(ctx, userID)
}

// UnfollowAll removes every follow where userID is the follower. Follows
// pointing at userID, and the user's bookmarks, dislikes and messages, are
// not touched.
func (s *FollowService) UnfollowAll(ctx context.Context, userID string) (models.DeleteResult, error) {
	res, err := s.follows.DeleteAllFollowing(ctx, userID)
	if err != nil {
		return res, err
	}
	l := logger.Ctx(ctx)
	l.Info().Str("user_id", userID).Int64("removed", res.RemovedCount).Msg("unfollowed all")
	return res, nil
}

// RemoveAllFollowers removes every follow where userID is being followed
func (s *FollowService) RemoveAllFollowers(ctx context.Context, userID string) (models.DeleteResult, error) {
	res, err := s.follows.DeleteAllFollowers(ctx, userID)
	if err != nil {
		return res, err
	}
	l := logger.Ctx(ctx)
	l.Info().Str("user_id", userID).Int64("removed", res.RemovedCount).Msg("removed all followers")
	return res, nil
}
