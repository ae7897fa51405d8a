package repository

import (
	"context"
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAchievementRepository_UpsertSurvey(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	achievements := NewAchievementRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")

	first, err := achievements.UpsertSurvey(ctx, ava.ID, models.AchievementBodyGoals, datatypes.JSONMap{
		"goal": "cutting", "experience": "beginner", "preference": "home",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Level)
	assert.Zero(t, first.Progress)

	// Progress earned between submissions survives a survey retake.
	_, err = achievements.AddProgress(ctx, ava.ID, models.AchievementBodyGoals, 150)
	require.NoError(t, err)

	second, err := achievements.UpsertSurvey(ctx, ava.ID, models.AchievementBodyGoals, datatypes.JSONMap{
		"goal": "bulking", "experience": "advanced", "preference": "gym",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 150, second.Progress)
	assert.Equal(t, 2, second.Level)
	assert.Equal(t, "bulking", second.Responses()["goal"])

	rows, err := achievements.ListByUser(ctx, ava.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestAchievementRepository_TracksAreIndependent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	achievements := NewAchievementRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")

	_, err := achievements.UpsertSurvey(ctx, ava.ID, models.AchievementBodyGoals, datatypes.JSONMap{"goal": "cutting"})
	require.NoError(t, err)
	_, err = achievements.UpsertSurvey(ctx, ava.ID, models.AchievementSkinGlow, datatypes.JSONMap{"concern": "acne"})
	require.NoError(t, err)

	rows, err := achievements.ListByUser(ctx, ava.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestAchievementRepository_AddProgress(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	achievements := NewAchievementRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	_, err := achievements.UpsertSurvey(ctx, ava.ID, models.AchievementMeals, datatypes.JSONMap{"goal": "weight_loss"})
	require.NoError(t, err)

	row, err := achievements.AddProgress(ctx, ava.ID, models.AchievementMeals, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, row.Progress)
	assert.Equal(t, 3, row.Level)

	// Negative deltas floor at zero.
	row, err = achievements.AddProgress(ctx, ava.ID, models.AchievementMeals, -9999)
	require.NoError(t, err)
	assert.Zero(t, row.Progress)
	assert.Equal(t, 1, row.Level)

	// Level caps out regardless of progress.
	row, err = achievements.AddProgress(ctx, ava.ID, models.AchievementMeals, 100000)
	require.NoError(t, err)
	assert.Equal(t, models.MaxGlowLevel, row.Level)
}

func TestAchievementRepository_AddProgress_RequiresExistingRow(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	achievements := NewAchievementRepository(db)

	ava := seedUser(t, users, "ava")
	_, err := achievements.AddProgress(context.Background(), ava.ID, models.AchievementLevelUp, 10)
	require.Error(t, err)
}
