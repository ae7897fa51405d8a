package guides

import (
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := map[string]string{"goal": "cutting", "experience": "beginner", "preference": "home"}
	assert.NoError(t, Validate(models.AchievementBodyGoals, valid))

	t.Run("missing answer", func(t *testing.T) {
		err := Validate(models.AchievementBodyGoals, map[string]string{"goal": "cutting"})
		assert.Error(t, err)
	})

	t.Run("invalid option", func(t *testing.T) {
		err := Validate(models.AchievementBodyGoals, map[string]string{
			"goal": "shredding", "experience": "beginner", "preference": "home",
		})
		assert.Error(t, err)
	})

	t.Run("unknown question", func(t *testing.T) {
		err := Validate(models.AchievementBodyGoals, map[string]string{
			"goal": "cutting", "experience": "beginner", "preference": "home", "extra": "x",
		})
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		err := Validate(models.AchievementType("nope"), valid)
		assert.Error(t, err)
	})
}

func TestQuestions_EveryTypeHasThree(t *testing.T) {
	t.Parallel()
	for _, at := range models.AchievementTypes {
		qs, err := Questions(at)
		require.NoError(t, err)
		assert.Len(t, qs, 3, "type %s", at)
		for _, q := range qs {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Prompt)
			assert.GreaterOrEqual(t, len(q.Options), 3)
		}
	}
}

func TestBuild_CuttingBeginnerHome(t *testing.T) {
	t.Parallel()
	guide, err := Build(models.AchievementBodyGoals, map[string]string{
		"goal": "cutting", "experience": "beginner", "preference": "home",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fat Loss Program", guide.Title)
	require.NotEmpty(t, guide.Sections)

	var dumbbells, weightLoss *Recommendation
	for i := range guide.Recommendations {
		switch guide.Recommendations[i].ProductName {
		case "Adjustable Dumbbell Set":
			dumbbells = &guide.Recommendations[i]
		case "Weight Loss Guide PDF":
			weightLoss = &guide.Recommendations[i]
		}
	}
	require.NotNil(t, dumbbells, "home preference should recommend the dumbbell set")
	assert.False(t, dumbbells.Featured)
	require.NotNil(t, weightLoss, "cutting goal should recommend the weight loss guide")
	assert.True(t, weightLoss.Featured)
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()
	responses := map[string]string{"concern": "acne", "skin_type": "oily", "budget": "moderate"}

	first, err := Build(models.AchievementSkinGlow, responses)
	require.NoError(t, err)
	second, err := Build(models.AchievementSkinGlow, responses)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_FeaturedMatchesPrimaryGoal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		at        models.AchievementType
		responses map[string]string
	}{
		{models.AchievementBodyGoals, map[string]string{"goal": "bulking", "experience": "advanced", "preference": "gym"}},
		{models.AchievementSkinGlow, map[string]string{"concern": "aging", "skin_type": "dry", "budget": "premium"}},
		{models.AchievementLevelUp, map[string]string{"career_stage": "mid", "education": "tech", "goal": "promotion"}},
		{models.AchievementMeals, map[string]string{"goal": "performance", "diet": "none", "cooking": "advanced"}},
	}

	for _, tc := range cases {
		guide, err := Build(tc.at, tc.responses)
		require.NoError(t, err, "type %s", tc.at)

		featured := 0
		for _, rec := range guide.Recommendations {
			if rec.Featured {
				featured++
			}
		}
		assert.Equal(t, 1, featured, "type %s should have exactly one featured recommendation", tc.at)
	}
}

func TestBuild_EveryAnswerComboResolves(t *testing.T) {
	t.Parallel()
	for _, at := range models.AchievementTypes {
		qs, err := Questions(at)
		require.NoError(t, err)

		// Walk the full cross product of options for each type.
		combos := []map[string]string{{}}
		for _, q := range qs {
			var next []map[string]string
			for _, combo := range combos {
				for _, opt := range q.Options {
					clone := make(map[string]string, len(combo)+1)
					for k, v := range combo {
						clone[k] = v
					}
					clone[q.ID] = opt.Value
					next = append(next, clone)
				}
			}
			combos = next
		}

		for _, combo := range combos {
			guide, err := Build(at, combo)
			require.NoError(t, err, "type %s combo %v", at, combo)
			assert.NotEmpty(t, guide.Title, "type %s combo %v", at, combo)
			assert.NotEmpty(t, guide.Sections)
			assert.NotEmpty(t, guide.Recommendations)
			for _, rec := range guide.Recommendations {
				assert.NotEmpty(t, rec.ProductName)
			}
		}
	}
}

func TestRecommendedProductNames_CoversScenarioProducts(t *testing.T) {
	t.Parallel()
	names := RecommendedProductNames()
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	assert.Contains(t, set, "Weight Loss Guide PDF")
	assert.Contains(t, set, "Adjustable Dumbbell Set")
}
