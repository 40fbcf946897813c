package services

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/populate"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
)

// BookmarkService is the entry point for bookmarks
type BookmarkService struct {
	bookmarks repositories.BookmarkRepository
	resolver  *populate.Resolver
}

func NewBookmarkService(bookmarks repositories.BookmarkRepository, resolver *populate.Resolver) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, resolver: resolver}
}

// BookmarkItem bookmarks itemID for userID. Bookmarking twice returns the
// existing bookmark with created == false.
func (s *BookmarkService) BookmarkItem(ctx context.Context, userID, itemID string) (*models.Bookmark, bool, error) {
	return ensurePair(ctx,
		func(ctx context.Context) (*models.Bookmark, error) {
			return s.bookmarks.FindBookmark(ctx, userID, itemID)
		},
		s.bookmarks.CreateBookmark,
		&models.Bookmark{BookmarkedBy: userID, BookmarkedItemID: itemID},
	)
}

func (s *BookmarkService) UnbookmarkItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	return s.bookmarks.DeleteBookmark(ctx, userID, itemID)
}

// ListBookmarkedBy lists a user's bookmarks with each post and its owner resolved
func (s *BookmarkService) ListBookmarkedBy(ctx context.Context, userID string) ([]models.BookmarkView, error) {
	bookmarks, err := s.bookmarks.FindBookmarkedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolver.BookmarksWithItems(ctx, bookmarks)
}

// ListBookmarkersOf lists the bookmarks on itemID with each bookmarking user resolved
func (s *BookmarkService) ListBookmarkersOf(ctx context.Context, itemID string) ([]models.BookmarkView, error) {
	bookmarks, err := s.bookmarks.FindBookmarkersOf(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.resolver.BookmarksWithUsers(ctx, bookmarks)
}

// FindSpecificBookmark returns the bookmark for the pair with the post
// resolved, or nil when the user has not bookmarked the item.
func (s *BookmarkService) FindSpecificBookmark(ctx context.Context, userID, itemID string) (*models.BookmarkView, error) {
	bookmark, err := s.bookmarks.FindBookmark(ctx, userID, itemID)
	if err != nil || bookmark == nil {
		return nil, err
	}
	item, err := s.resolver.Post(ctx, bookmark.BookmarkedItemID)
	if err != nil {
		return nil, err
	}
	return &models.BookmarkView{Bookmark: *bookmark, Item: item}, nil
}

func (s *BookmarkService) CountBookmarks(ctx context.Context, itemID string) (int64, error) {
	return s.bookmarks.CountBookmarkers(ctx, itemID)
}
