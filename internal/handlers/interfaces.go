package handlers

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
)

// FollowService is the follow contract the HTTP layer depends on
type FollowService interface {
	FollowUser(ctx context.Context, followerID, followedID string) (*models.Follow, bool, error)
	UnfollowUser(ctx context.Context, followerID, followedID string) (models.DeleteResult, error)
	ListFollowing(ctx context.Context, userID string) ([]models.FollowView, error)
	ListFollowers(ctx context.Context, userID string) ([]models.FollowView, error)
	FindFollow(ctx context.Context, followerID, followedID string) (*models.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	UnfollowAll(ctx context.Context, userID string) (models.DeleteResult, error)
	RemoveAllFollowers(ctx context.Context, userID string) (models.DeleteResult, error)
}

// BookmarkService is the bookmark contract the HTTP layer depends on
type BookmarkService interface {
	BookmarkItem(ctx context.Context, userID, itemID string) (*models.Bookmark, bool, error)
	UnbookmarkItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error)
	ListBookmarkedBy(ctx context.Context, userID string) ([]models.BookmarkView, error)
	ListBookmarkersOf(ctx context.Context, itemID string) ([]models.BookmarkView, error)
	FindSpecificBookmark(ctx context.Context, userID, itemID string) (*models.BookmarkView, error)
	CountBookmarks(ctx context.Context, itemID string) (int64, error)
}

// DislikeService is the dislike contract the HTTP layer depends on
type DislikeService interface {
	DislikeItem(ctx context.Context, userID, itemID string) (*models.Dislike, bool, error)
	UndislikeItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error)
	ListDislikersOf(ctx context.Context, itemID string) ([]models.DislikeView, error)
	ListDislikedBy(ctx context.Context, userID string) ([]models.DislikeView, error)
	CountDislikes(ctx context.Context, itemID string) (int64, error)
	FindSpecificDislike(ctx context.Context, userID, itemID string) (*models.DislikeView, error)
}

// MessageService is the message contract the HTTP layer depends on
type MessageService interface {
	SendMessage(ctx context.Context, from, to, body string) (*models.Message, error)
	ListSent(ctx context.Context, from string) ([]models.Message, error)
	ListReceived(ctx context.Context, to string) ([]models.Message, error)
	GetMessage(ctx context.Context, id string) (*models.Message, error)
	FindByDate(ctx context.Context, from, date string) ([]models.Message, error)
	DeleteMessage(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteAllSent(ctx context.Context, from string) (models.DeleteResult, error)
}
