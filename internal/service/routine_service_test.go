package service

import (
	"context"
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routineRepoStub struct {
	rows map[uint]*models.Routine
	next uint
}

func newRoutineRepoStub() *routineRepoStub {
	return &routineRepoStub{rows: make(map[uint]*models.Routine), next: 1}
}

func (s *routineRepoStub) Create(_ context.Context, r *models.Routine) error {
	r.ID = s.next
	s.next++
	s.rows[r.ID] = r
	return nil
}
func (s *routineRepoStub) GetByID(_ context.Context, id uint) (*models.Routine, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, models.NewNotFoundError("Routine", id)
	}
	return r, nil
}
func (s *routineRepoStub) ListByUser(_ context.Context, userID uint) ([]*models.Routine, error) {
	var out []*models.Routine
	for _, r := range s.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (s *routineRepoStub) Update(_ context.Context, r *models.Routine) error {
	s.rows[r.ID] = r
	return nil
}
func (s *routineRepoStub) Delete(_ context.Context, id uint) error {
	delete(s.rows, id)
	return nil
}
func (s *routineRepoStub) ResetCompleted(context.Context, uint) (int64, error) {
	return 0, nil
}

func TestCreateRoutine_Validation(t *testing.T) {
	svc := NewRoutineService(newRoutineRepoStub(), nil)
	ctx := context.Background()

	_, err := svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "  "})
	require.Error(t, err)

	_, err = svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "Stretch", Category: "underwater"})
	require.Error(t, err)

	routine, err := svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "Stretch"})
	require.NoError(t, err)
	assert.Equal(t, models.RoutineCategoryOther, routine.Category)
}

func TestToggleCompleted_AwardsPointsOnce(t *testing.T) {
	repo := newRoutineRepoStub()
	user := &models.User{ID: 1}
	users := NewUserService(userRepoWith(user))
	svc := NewRoutineService(repo, users)
	ctx := context.Background()

	routine, err := svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "Morning run", Category: "fitness"})
	require.NoError(t, err)

	toggled, err := svc.ToggleCompleted(ctx, routine.ID, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, PointsPerRoutineCompletion, user.Points)

	// Unchecking takes nothing back.
	toggled, err = svc.ToggleCompleted(ctx, routine.ID, 1)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Equal(t, PointsPerRoutineCompletion, user.Points)
}

func TestToggleCompleted_OwnerOnly(t *testing.T) {
	repo := newRoutineRepoStub()
	svc := NewRoutineService(repo, nil)
	ctx := context.Background()

	routine, err := svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "Skincare", Category: "skincare"})
	require.NoError(t, err)

	_, err = svc.ToggleCompleted(ctx, routine.ID, 2)
	require.Error(t, err)
}

func TestCompletionRatio(t *testing.T) {
	repo := newRoutineRepoStub()
	svc := NewRoutineService(repo, nil)
	ctx := context.Background()

	for _, done := range []bool{true, false, true} {
		r, err := svc.CreateRoutine(ctx, CreateRoutineInput{UserID: 1, Title: "task", Category: "other"})
		require.NoError(t, err)
		if done {
			_, err = svc.ToggleCompleted(ctx, r.ID, 1)
			require.NoError(t, err)
		}
	}

	completed, total, err := svc.CompletionRatio(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total)
}
