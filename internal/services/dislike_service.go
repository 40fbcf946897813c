package services

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/populate"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
)

// DislikeService is the entry point for dislikes
type DislikeService struct {
	dislikes repositories.DislikeRepository
	resolver *populate.Resolver
}

func NewDislikeService(dislikes repositories.DislikeRepository, resolver *populate.Resolver) *DislikeService {
	return &DislikeService{dislikes: dislikes, resolver: resolver}
}

// DislikeItem records that userID dislikes itemID. Disliking twice returns the
// existing dislike with created == false.
func (s *DislikeService) DislikeItem(ctx context.Context, userID, itemID string) (*models.Dislike, bool, error) {
	return ensurePair(ctx,
		func(ctx context.Context) (*models.Dislike, error) {
			return s.dislikes.FindDislike(ctx, userID, itemID)
		},
		s.dislikes.CreateDislike,
		&models.Dislike{DislikedBy: userID, DislikedItemID: itemID},
	)
}

func (s *DislikeService) UndislikeItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	return s.dislikes.DeleteDislike(ctx, userID, itemID)
}

// ListDislikersOf lists the dislikes on itemID with each user resolved
func (s *DislikeService) ListDislikersOf(ctx context.Context, itemID string) ([]models.DislikeView, error) {
	dislikes, err := s.dislikes.FindDislikersOf(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.resolver.DislikesWithUsers(ctx, dislikes)
}

// ListDislikedBy lists a user's dislikes with each post and its owner resolved
func (s *DislikeService) ListDislikedBy(ctx context.Context, userID string) ([]models.DislikeView, error) {
	dislikes, err := s.dislikes.FindDislikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolver.DislikesWithItems(ctx, dislikes)
}

func (s *DislikeService) CountDislikes(ctx context.Context, itemID string) (int64, error) {
	return s.dislikes.CountDislikes(ctx, itemID)
}

// FindSpecificDislike returns the dislike for the pair with the post
// resolved, or nil when the user has not disliked the item.
func (s *DislikeService) FindSpecificDislike(ctx context.Context, userID, itemID string) (*models.DislikeView, error) {
	dislike, err := s.dislikes.FindDislike(ctx, userID, itemID)
	if err != nil || dislike == nil {
		return nil, err
	}
	item, err := s.resolver.Post(ctx, dislike.DislikedItemID)
	if err != nil {
		return nil, err
	}
	return &models.DislikeView{Dislike: *dislike, Item: item}, nil
}
