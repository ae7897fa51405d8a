package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_FollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")

	require.NoError(t, follows.Follow(ctx, ava.ID, ben.ID))
	require.NoError(t, follows.Follow(ctx, ava.ID, ben.ID))

	following, err := follows.IsFollowing(ctx, ava.ID, ben.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followers, followingCount, err := follows.Counts(ctx, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)
	assert.Zero(t, followingCount)
}

func TestFollowRepository_Unfollow(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")

	require.NoError(t, follows.Follow(ctx, ava.ID, ben.ID))
	require.NoError(t, follows.Unfollow(ctx, ava.ID, ben.ID))

	following, err := follows.IsFollowing(ctx, ava.ID, ben.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// Unfollowing someone never followed is a no-op.
	require.NoError(t, follows.Unfollow(ctx, ava.ID, ben.ID))
}

func TestFollowRepository_Lists(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")
	cam := seedUser(t, users, "cam")

	require.NoError(t, follows.Follow(ctx, ben.ID, ava.ID))
	require.NoError(t, follows.Follow(ctx, cam.ID, ava.ID))
	require.NoError(t, follows.Follow(ctx, ava.ID, ben.ID))

	followers, err := follows.Followers(ctx, ava.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := follows.Following(ctx, ava.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "ben", following[0].Username)
}
