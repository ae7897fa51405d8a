package service

import (
	"context"
	"strings"

	"glowup/internal/models"
	"glowup/internal/repository"
)

// PointsPerRoutineCompletion is credited to profile points when a routine
// flips from open to completed.
const PointsPerRoutineCompletion = 5

// RoutineService provides daily routine business logic.
type RoutineService struct {
	routineRepo repository.RoutineRepository
	userService *UserService
}

type CreateRoutineInput struct {
	UserID   uint
	Title    string
	Category string
	Time     string
}

// NewRoutineService returns a new RoutineService. userService may be nil;
// completion then awards no points.
func NewRoutineService(routineRepo repository.RoutineRepository, userService *UserService) *RoutineService {
	return &RoutineService{routineRepo: routineRepo, userService: userService}
}

func (s *RoutineService) CreateRoutine(ctx context.Context, in CreateRoutineInput) (*models.Routine, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Routine title is required")
	}
	if len(title) > 120 {
		return nil, models.NewValidationError("Title too long (max 120 characters)")
	}
	category := models.RoutineCategory(in.Category)
	if category == "" {
		category = models.RoutineCategoryOther
	}
	if !models.ValidRoutineCategory(category) {
		return nil, models.NewValidationError("Unknown routine category")
	}

	routine := &models.Routine{
		UserID:   in.UserID,
		Title:    title,
		Category: category,
		Time:     in.Time,
	}
	if err := s.routineRepo.Create(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *RoutineService) ListRoutines(ctx context.Context, userID uint) ([]*models.Routine, error) {
	return s.routineRepo.ListByUser(ctx, userID)
}

// ToggleCompleted flips a routine's completed flag. The open-to-completed
// transition awards profile points; unchecking takes none back.
func (s *RoutineService) ToggleCompleted(ctx context.Context, routineID, userID uint) (*models.Routine, error) {
	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine.UserID != userID {
		return nil, models.NewForbiddenError("You can only update your own routines")
	}

	routine.Completed = !routine.Completed
	if err := s.routineRepo.Update(ctx, routine); err != nil {
		return nil, err
	}
	if routine.Completed && s.userService != nil {
		if _, err := s.userService.AddPoints(ctx, userID, PointsPerRoutineCompletion); err != nil {
			return nil, err
		}
	}
	return routine, nil
}

func (s *RoutineService) DeleteRoutine(ctx context.Context, routineID, userID uint) error {
	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		return err
	}
	if routine.UserID != userID {
		return models.NewForbiddenError("You can only delete your own routines")
	}
	return s.routineRepo.Delete(ctx, routineID)
}

// CompletionRatio reports completed/total for the gamification card.
func (s *RoutineService) CompletionRatio(ctx context.Context, userID uint) (completed, total int, err error) {
	routines, err := s.routineRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	for _, r := range routines {
		if r.Completed {
			completed++
		}
	}
	return completed, len(routines), nil
}
