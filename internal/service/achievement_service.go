package service

import (
	"context"

	"glowup/internal/cache"
	"glowup/internal/guides"
	"glowup/internal/models"
	"glowup/internal/repository"

	"gorm.io/datatypes"
)

// AchievementService provides gamification track business logic: survey
// intake, guide building, and progress.
type AchievementService struct {
	achievementRepo repository.AchievementRepository
	productRepo     repository.ProductRepository
}

// NewAchievementService returns a new AchievementService.
func NewAchievementService(achievementRepo repository.AchievementRepository, productRepo repository.ProductRepository) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo, productRepo: productRepo}
}

// SurveyQuestions returns the question set for one track.
func (s *AchievementService) SurveyQuestions(achievementType string) ([]guides.Question, error) {
	t := models.AchievementType(achievementType)
	if !models.ValidAchievementType(t) {
		return nil, models.NewValidationError("Unknown achievement type")
	}
	questions, err := guides.Questions(t)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return questions, nil
}

// SubmitSurvey validates the answers against the track's question set and
// upserts the user's achievement row. Resubmitting overwrites the stored
// answers and drops the cached guide; progress and level survive.
func (s *AchievementService) SubmitSurvey(ctx context.Context, userID uint, achievementType string, responses map[string]string) (*models.UserAchievement, error) {
	t := models.AchievementType(achievementType)
	if !models.ValidAchievementType(t) {
		return nil, models.NewValidationError("Unknown achievement type")
	}
	if err := guides.Validate(t, responses); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	stored := make(datatypes.JSONMap, len(responses))
	for k, v := range responses {
		stored[k] = v
	}
	return s.achievementRepo.UpsertSurvey(ctx, userID, t, stored)
}

// ListAchievements returns the user's saved tracks.
func (s *AchievementService) ListAchievements(ctx context.Context, userID uint) ([]*models.UserAchievement, error) {
	return s.achievementRepo.ListByUser(ctx, userID)
}

func (s *AchievementService) GetAchievement(ctx context.Context, userID uint, achievementType string) (*models.UserAchievement, error) {
	t := models.AchievementType(achievementType)
	if !models.ValidAchievementType(t) {
		return nil, models.NewValidationError("Unknown achievement type")
	}
	return s.achievementRepo.GetByUserAndType(ctx, userID, t)
}

// AddProgress applies a progress delta to a saved track and returns the
// updated row with its recomputed level.
func (s *AchievementService) AddProgress(ctx context.Context, userID uint, achievementType string, delta int) (*models.UserAchievement, error) {
	t := models.AchievementType(achievementType)
	if !models.ValidAchievementType(t) {
		return nil, models.NewValidationError("Unknown achievement type")
	}
	return s.achievementRepo.AddProgress(ctx, userID, t, delta)
}

// GuideResult is a built guide with its recommendations resolved against
// the storefront.
type GuideResult struct {
	AchievementType models.AchievementType   `json:"achievement_type"`
	Level           int                      `json:"level"`
	Progress        int                      `json:"progress"`
	Guide           *guides.Guide            `json:"guide"`
	Products        []ResolvedRecommendation `json:"products"`
}

// ResolvedRecommendation pairs a guide recommendation with the storefront
// row it names, when one exists.
type ResolvedRecommendation struct {
	Name     string          `json:"name"`
	Featured bool            `json:"featured"`
	Reason   string          `json:"reason"`
	Product  *models.Product `json:"product,omitempty"`
}

// GetGuide builds the user's guide from their stored survey answers. The
// build is deterministic, so the result is cached until the survey is
// resubmitted.
func (s *AchievementService) GetGuide(ctx context.Context, userID uint, achievementType string) (*GuideResult, error) {
	t := models.AchievementType(achievementType)
	if !models.ValidAchievementType(t) {
		return nil, models.NewValidationError("Unknown achievement type")
	}

	var result GuideResult
	err := cache.Aside(ctx, cache.GuideKey(userID, achievementType), &result, cache.GuideTTL, func() error {
		row, err := s.achievementRepo.GetByUserAndType(ctx, userID, t)
		if err != nil {
			return err
		}
		guide, err := guides.Build(t, row.Responses())
		if err != nil {
			return models.NewValidationError(err.Error())
		}

		names := make([]string, 0, len(guide.Recommendations))
		for _, rec := range guide.Recommendations {
			names = append(names, rec.ProductName)
		}
		products, err := s.productRepo.GetByNames(ctx, names)
		if err != nil {
			return err
		}
		byName := make(map[string]*models.Product, len(products))
		for i := range products {
			byName[products[i].Name] = &products[i]
		}

		resolved := make([]ResolvedRecommendation, 0, len(guide.Recommendations))
		for _, rec := range guide.Recommendations {
			resolved = append(resolved, ResolvedRecommendation{
				Name:     rec.ProductName,
				Featured: rec.Featured,
				Reason:   rec.Reason,
				Product:  byName[rec.ProductName],
			})
		}

		result = GuideResult{
			AchievementType: t,
			Level:           row.Level,
			Progress:        row.Progress,
			Guide:           guide,
			Products:        resolved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
