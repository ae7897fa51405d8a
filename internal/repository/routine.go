package repository

import (
	"context"
	"errors"

	"glowup/internal/models"

	"gorm.io/gorm"
)

// RoutineRepository defines persistence operations for routine tasks.
type RoutineRepository interface {
	Create(ctx context.Context, routine *models.Routine) error
	GetByID(ctx context.Context, id uint) (*models.Routine, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Routine, error)
	Update(ctx context.Context, routine *models.Routine) error
	Delete(ctx context.Context, id uint) error
	ResetCompleted(ctx context.Context, userID uint) (int64, error)
}

type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository returns a new RoutineRepository implementation.
func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db: db}
}

func (r *routineRepository) Create(ctx context.Context, routine *models.Routine) error {
	if err := r.db.WithContext(ctx).Create(routine).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *routineRepository) GetByID(ctx context.Context, id uint) (*models.Routine, error) {
	var routine models.Routine
	if err := readDB(r.db).WithContext(ctx).First(&routine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Routine", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &routine, nil
}

func (r *routineRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Routine, error) {
	var routines []*models.Routine
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&routines).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return routines, nil
}

func (r *routineRepository) Update(ctx context.Context, routine *models.Routine) error {
	if err := r.db.WithContext(ctx).Save(routine).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *routineRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Routine{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ResetCompleted clears the completed flag on all of a user's routines,
// used by the daily rollover.
func (r *routineRepository) ResetCompleted(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Routine{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Update("completed", false)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
