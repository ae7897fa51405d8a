package repository

import (
	"context"
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	routines := NewRoutineRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")

	routine := &models.Routine{UserID: ava.ID, Title: "Morning run", Category: models.RoutineCategoryFitness, Time: "6:00 AM"}
	require.NoError(t, routines.Create(ctx, routine))

	routine.Completed = true
	require.NoError(t, routines.Update(ctx, routine))

	got, err := routines.GetByID(ctx, routine.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, routines.Delete(ctx, routine.ID))
	_, err = routines.GetByID(ctx, routine.ID)
	require.Error(t, err)
}

func TestRoutineRepository_ResetCompleted(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	routines := NewRoutineRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")

	require.NoError(t, routines.Create(ctx, &models.Routine{UserID: ava.ID, Title: "Skincare", Category: models.RoutineCategorySkincare, Completed: true}))
	require.NoError(t, routines.Create(ctx, &models.Routine{UserID: ava.ID, Title: "Meal prep", Category: models.RoutineCategoryNutrition, Completed: true}))
	require.NoError(t, routines.Create(ctx, &models.Routine{UserID: ben.ID, Title: "Study", Category: models.RoutineCategoryCareer, Completed: true}))

	reset, err := routines.ResetCompleted(ctx, ava.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reset)

	// Other users' routines are untouched.
	list, err := routines.ListByUser(ctx, ben.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
}
