package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDislikeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresDislikeRepository(newTestDB(t))

	require.NoError(t, repo.CreateDislike(ctx, &models.Dislike{DislikedBy: "alice", DislikedItemID: "t1"}))
	require.NoError(t, repo.CreateDislike(ctx, &models.Dislike{DislikedBy: "bob", DislikedItemID: "t1"}))
	require.NoError(t, repo.CreateDislike(ctx, &models.Dislike{DislikedBy: "bob", DislikedItemID: "t2"}))

	assert.ErrorIs(t, repo.CreateDislike(ctx, &models.Dislike{DislikedBy: "bob", DislikedItemID: "t2"}), ErrDuplicatePair)

	count, err := repo.CountDislikes(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	dislikers, err := repo.FindDislikersOf(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, dislikers, 2)
	assert.Equal(t, "alice", dislikers[0].DislikedBy)
	assert.Equal(t, "bob", dislikers[1].DislikedBy)

	disliked, err := repo.FindDislikedBy(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, disliked, 2)

	found, err := repo.FindDislike(ctx, "alice", "t1")
	require.NoError(t, err)
	assert.NotNil(t, found)

	res, err := repo.DeleteDislike(ctx, "alice", "t2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RemovedCount)

	res, err = repo.DeleteAllDislikedBy(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.RemovedCount)

	// alice's dislike of t1 is not touched by bob's cascade
	count, err = repo.CountDislikes(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	res, err = repo.DeleteAllDislikersOf(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RemovedCount)
}
