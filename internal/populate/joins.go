package populate

import (
	"context"

	"github.com/anonto42/nano-midea/relations/internal/models"
)

// FollowsWithFollowed expands each follow with the user being followed
func (r *Resolver) FollowsWithFollowed(ctx context.Context, follows []models.Follow) ([]models.FollowView, error) {
	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowedID)
	}
	users, err := r.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]models.FollowView, 0, len(follows))
	for _, f := range follows {
		views = append(views, models.FollowView{Follow: f, Followed: users[f.FollowedID]})
	}
	return views, nil
}

// FollowsWithFollower expands each follow with the following user
func (r *Resolver) FollowsWithFollower(ctx context.Context, follows []models.Follow) ([]models.FollowView, error) {
	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowerID)
	}
	users, err := r.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]models.FollowView, 0, len(follows))
	for _, f := range follows {
		views = append(views, models.FollowView{Follow: f, Follower: users[f.FollowerID]})
	}
	return views, nil
}

// BookmarksWithItems expands each bookmark with its post and the post's owner
func (r *Resolver) BookmarksWithItems(ctx context.Context, bookmarks []models.Bookmark) ([]models.BookmarkView, error) {
	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.BookmarkedItemID)
	}
	posts, err := r.Posts(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]models.BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		views = append(views, models.BookmarkView{Bookmark: b, Item: posts[b.BookmarkedItemID]})
	}
	return views, nil
}

// BookmarksWithUsers expands each bookmark with the bookmarking user, plus the
// post and its owner.
func (r *Resolver) BookmarksWithUsers(ctx context.Context, bookmarks []models.Bookmark) ([]models.BookmarkView, error) {
	views, err := r.BookmarksWithItems(ctx, bookmarks)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.BookmarkedBy)
	}
	users, err := r.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].User = users[views[i].BookmarkedBy]
	}
	return views, nil
}

// DislikesWithItems expands each dislike with its post and the post's owner
func (r *Resolver) DislikesWithItems(ctx context.Context, dislikes []models.Dislike) ([]models.DislikeView, error) {
	ids := make([]string, 0, len(dislikes))
	for _, d := range dislikes {
		ids = append(ids, d.DislikedItemID)
	}
	posts, err := r.Posts(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]models.DislikeView, 0, len(dislikes))
	for _, d := range dislikes {
		views = append(views, models.DislikeView{Dislike: d, Item: posts[d.DislikedItemID]})
	}
	return views, nil
}

// DislikesWithUsers expands each dislike with the disliking user, plus the
// post and its owner.
func (r *Resolver) DislikesWithUsers(ctx context.Context, dislikes []models.Dislike) ([]models.DislikeView, error) {
	views, err := r.DislikesWithItems(ctx, dislikes)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(dislikes))
	for _, d := range dislikes {
		ids = append(ids, d.DislikedBy)
	}
	users, err := r.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].User = users[views[i].DislikedBy]
	}
	return views, nil
}
