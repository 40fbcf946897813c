// Package populate resolves stored identifiers into the current external
// entities at read time. Association records only carry IDs; every read that
// needs the user or post behind an ID goes through a Resolver.
package populate

import (
	"context"
	"fmt"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
)

// Resolver batch-loads users and posts. Nothing is cached: two reads of the
// same ID observe whatever the owning store holds at that moment.
type Resolver struct {
	users repositories.UserRepository
	posts repositories.PostRepository
}

// NewResolver creates a Resolver over the user and post directories
func NewResolver(users repositories.UserRepository, posts repositories.PostRepository) *Resolver {
	return &Resolver{users: users, posts: posts}
}

// Users resolves ids to users keyed by ID. Unknown IDs are absent from the map.
func (r *Resolver) Users(ctx context.Context, ids []string) (map[string]*models.User, error) {
	users, err := r.users.GetUsersByIDs(ctx, unique(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	out := make(map[string]*models.User, len(users))
	for i := range users {
		out[users[i].ID] = &users[i]
	}
	return out, nil
}

// Posts resolves ids to posts keyed by hex ID, each with its owner resolved.
func (r *Resolver) Posts(ctx context.Context, ids []string) (map[string]*models.PostView, error) {
	posts, err := r.posts.GetPostsByIDs(ctx, unique(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve posts: %w", err)
	}

	ownerIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		ownerIDs = append(ownerIDs, p.UserID)
	}
	owners, err := r.Users(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*models.PostView, len(posts))
	for _, p := range posts {
		out[p.ID.Hex()] = &models.PostView{Post: p, Owner: owners[p.UserID]}
	}
	return out, nil
}

// Post resolves a single post with its owner. An unknown post yields nil, nil;
// a post whose owner is gone is returned with a nil Owner.
func (r *Resolver) Post(ctx context.Context, id string) (*models.PostView, error) {
	post, err := r.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve post: %w", err)
	}
	if post == nil {
		return nil, nil
	}
	owner, err := r.users.GetUserByID(ctx, post.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	return &models.PostView{Post: *post, Owner: owner}, nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
