package repository

import (
	"context"
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ava", Email: "ava@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ava", got.Username)

	_, err = repo.GetByID(ctx, 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "ava", Email: "a@example.com", Password: "x"}))
	err := repo.Create(ctx, &models.User{Username: "ava", Email: "b@example.com", Password: "x"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserRepository_GetByEmail_NotFoundIsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetProfile_Counts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	ava := &models.User{Username: "ava", Email: "ava@example.com", Password: "x"}
	ben := &models.User{Username: "ben", Email: "ben@example.com", Password: "x"}
	cam := &models.User{Username: "cam", Email: "cam@example.com", Password: "x"}
	for _, u := range []*models.User{ava, ben, cam} {
		require.NoError(t, users.Create(ctx, u))
	}

	require.NoError(t, follows.Follow(ctx, ben.ID, ava.ID))
	require.NoError(t, follows.Follow(ctx, cam.ID, ava.ID))
	require.NoError(t, follows.Follow(ctx, ava.ID, ben.ID))

	profile, err := users.GetProfile(ctx, ava.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.FollowerCount)
	assert.Equal(t, 1, profile.FollowingCount)
}

func TestUserRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "glowqueen", Email: "g@example.com", Password: "x"}))
	require.NoError(t, repo.Create(ctx, &models.User{Username: "ben", DisplayName: "Glow Ben", Email: "b@example.com", Password: "x"}))
	require.NoError(t, repo.Create(ctx, &models.User{Username: "cam", Email: "c@example.com", Password: "x"}))

	found, err := repo.Search(ctx, "GLOW", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 2)
}
