package service

import (
	"context"
	"testing"
	"time"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRepoWith(user *models.User) *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(context.Context, uint) (*models.User, error) {
			return user, nil
		},
	}
}

func TestUpdateProfile_RelationshipStatus(t *testing.T) {
	user := &models.User{ID: 1, Username: "ava"}
	svc := NewUserService(userRepoWith(user))
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, RelationshipStatus: "single"})
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipSingle, updated.RelationshipStatus)

	_, err = svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, RelationshipStatus: "widowed"})
	require.Error(t, err)
}

func TestUpdateProfile_FieldLimits(t *testing.T) {
	user := &models.User{ID: 1, Username: "ava"}
	svc := NewUserService(userRepoWith(user))
	ctx := context.Background()

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Bio: string(long)})
	require.Error(t, err)

	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: 1, DisplayName: "Ava Glow", CurrentCity: "Austin", Hobby: "pilates", Career: "designer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ava Glow", updated.DisplayName)
	assert.Equal(t, "Austin", updated.CurrentCity)
}

func TestRecordActivity_Streak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC)
	}

	t.Run("first activity starts at one", func(t *testing.T) {
		user := &models.User{ID: 1}
		svc := NewUserService(userRepoWith(user))
		got, err := svc.RecordActivity(context.Background(), 1, day(1))
		require.NoError(t, err)
		assert.Equal(t, 1, got.DailyStreak)
		assert.Equal(t, PointsPerActiveDay, got.Points)
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		user := &models.User{ID: 1, DailyStreak: 3, LastActiveDate: &yesterday}
		svc := NewUserService(userRepoWith(user))
		got, err := svc.RecordActivity(context.Background(), 1, day(2))
		require.NoError(t, err)
		assert.Equal(t, 4, got.DailyStreak)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		lastWeek := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		user := &models.User{ID: 1, DailyStreak: 9, LastActiveDate: &lastWeek}
		svc := NewUserService(userRepoWith(user))
		got, err := svc.RecordActivity(context.Background(), 1, day(1))
		require.NoError(t, err)
		assert.Equal(t, 1, got.DailyStreak)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		user := &models.User{ID: 1, DailyStreak: 5, Points: 40, LastActiveDate: &today}
		updateCalled := false
		repo := userRepoWith(user)
		repo.updateFn = func(context.Context, *models.User) error {
			updateCalled = true
			return nil
		}
		svc := NewUserService(repo)
		got, err := svc.RecordActivity(context.Background(), 1, day(1).Add(8*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 5, got.DailyStreak)
		assert.Equal(t, 40, got.Points)
		assert.False(t, updateCalled)
	})
}

func TestUserLevel(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{450, 5},
		{900, 10},
		{5000, 10},
	}
	for _, tc := range cases {
		u := models.User{Points: tc.points}
		assert.Equal(t, tc.level, u.Level(), "points=%d", tc.points)
	}
}
