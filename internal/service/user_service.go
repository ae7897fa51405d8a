package service

import (
	"context"
	"time"

	"glowup/internal/models"
	"glowup/internal/repository"
)

// PointsPerActiveDay is awarded the first time a user touches the app on
// a calendar day.
const PointsPerActiveDay = 10

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID             uint
	Username           string
	DisplayName        string
	Bio                string
	AvatarURL          string
	CoverURL           string
	RelationshipStatus string
	CurrentCity        string
	Hobby              string
	Career             string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user with follower/following counts populated.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetProfile(ctx, id)
}

func (s *UserService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.userRepo.Search(ctx, query, limit, offset)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const (
		maxUsernameLen = 30
		maxDisplayLen  = 60
		maxBioLen      = 500
		maxFieldLen    = 80
	)

	if in.Username != "" {
		if len(in.Username) > maxUsernameLen {
			return nil, models.NewValidationError("Username too long (max 30 characters)")
		}
		user.Username = in.Username
	}
	if in.DisplayName != "" {
		if len(in.DisplayName) > maxDisplayLen {
			return nil, models.NewValidationError("Display name too long (max 60 characters)")
		}
		user.DisplayName = in.DisplayName
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.RelationshipStatus != "" {
		status := models.RelationshipStatus(in.RelationshipStatus)
		if !models.ValidRelationshipStatus(status) {
			return nil, models.NewValidationError("Unknown relationship status")
		}
		user.RelationshipStatus = status
	}
	for _, f := range []struct {
		value string
		dst   *string
		name  string
	}{
		{in.CurrentCity, &user.CurrentCity, "City"},
		{in.Hobby, &user.Hobby, "Hobby"},
		{in.Career, &user.Career, "Career"},
	} {
		if f.value == "" {
			continue
		}
		if len(f.value) > maxFieldLen {
			return nil, models.NewValidationError(f.name + " too long (max 80 characters)")
		}
		*f.dst = f.value
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if in.CoverURL != "" {
		user.CoverURL = in.CoverURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RecordActivity advances the daily streak. The first touch on a calendar
// day increments the streak when yesterday was active, resets it to 1 after
// a gap, and awards the daily points. Repeat touches on the same day are
// no-ops.
func (s *UserService) RecordActivity(ctx context.Context, userID uint, now time.Time) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(now)
	if user.LastActiveDate != nil {
		last := truncateToDay(*user.LastActiveDate)
		if last.Equal(today) {
			return user, nil
		}
		if last.Equal(today.AddDate(0, 0, -1)) {
			user.DailyStreak++
		} else {
			user.DailyStreak = 1
		}
	} else {
		user.DailyStreak = 1
	}
	user.LastActiveDate = &today
	user.Points += PointsPerActiveDay

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddPoints credits profile points, e.g. for completing a routine.
func (s *UserService) AddPoints(ctx context.Context, userID uint, points int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Points += points
	if user.Points < 0 {
		user.Points = 0
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
