// Package guides maps achievement survey answers onto personalized content
// bundles and product recommendations. Everything here is a pure lookup:
// the same answers always produce the same guide.
package guides

import (
	"fmt"

	"glowup/internal/models"
)

// Option is one selectable answer for a survey question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is a single closed-choice survey question.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

var surveyQuestions = map[models.AchievementType][]Question{
	models.AchievementBodyGoals: {
		{
			ID:     "goal",
			Prompt: "What is your primary fitness goal?",
			Options: []Option{
				{Value: "cutting", Label: "Cutting - Lose fat while maintaining muscle"},
				{Value: "bulking", Label: "Bulking - Gain muscle mass"},
				{Value: "strength", Label: "Strength - Get stronger and more powerful"},
				{Value: "toning", Label: "Toning - Build lean, defined muscle"},
			},
		},
		{
			ID:     "experience",
			Prompt: "What is your training experience level?",
			Options: []Option{
				{Value: "beginner", Label: "Beginner - Less than 6 months"},
				{Value: "intermediate", Label: "Intermediate - 6 months to 2 years"},
				{Value: "advanced", Label: "Advanced - 2+ years"},
			},
		},
		{
			ID:     "preference",
			Prompt: "Where do you prefer to train?",
			Options: []Option{
				{Value: "gym", Label: "Gym - Full equipment access"},
				{Value: "home", Label: "Home - Minimal equipment"},
				{Value: "hybrid", Label: "Hybrid - Mix of both"},
			},
		},
	},
	models.AchievementSkinGlow: {
		{
			ID:     "concern",
			Prompt: "What is your primary skin concern?",
			Options: []Option{
				{Value: "acne", Label: "Acne & Breakouts"},
				{Value: "tan", Label: "Uneven Tone & Tanning"},
				{Value: "dryness", Label: "Dryness & Hydration"},
				{Value: "aging", Label: "Anti-Aging & Wrinkles"},
			},
		},
		{
			ID:     "skin_type",
			Prompt: "What is your skin type?",
			Options: []Option{
				{Value: "oily", Label: "Oily"},
				{Value: "dry", Label: "Dry"},
				{Value: "combination", Label: "Combination"},
				{Value: "sensitive", Label: "Sensitive"},
			},
		},
		{
			ID:     "budget",
			Prompt: "What is your budget for skincare?",
			Options: []Option{
				{Value: "budget", Label: "Budget-Friendly - Under $50/month"},
				{Value: "moderate", Label: "Moderate - $50-150/month"},
				{Value: "premium", Label: "Premium - $150+/month"},
			},
		},
	},
	models.AchievementLevelUp: {
		{
			ID:     "career_stage",
			Prompt: "What stage are you at in your career?",
			Options: []Option{
				{Value: "student", Label: "Student - Exploring options"},
				{Value: "early", Label: "Early Career - 0-3 years"},
				{Value: "mid", Label: "Mid Career - 3-7 years"},
				{Value: "senior", Label: "Senior - 7+ years"},
			},
		},
		{
			ID:     "education",
			Prompt: "What is your current education focus?",
			Options: []Option{
				{Value: "tech", Label: "Technology & Engineering"},
				{Value: "business", Label: "Business & Finance"},
				{Value: "creative", Label: "Creative & Design"},
				{Value: "other", Label: "Other Field"},
			},
		},
		{
			ID:     "goal",
			Prompt: "What is your primary goal?",
			Options: []Option{
				{Value: "skills", Label: "Develop New Skills"},
				{Value: "promotion", Label: "Get Promoted"},
				{Value: "switch", Label: "Switch Careers"},
				{Value: "entrepreneurship", Label: "Start a Business"},
			},
		},
	},
	models.AchievementMeals: {
		{
			ID:     "goal",
			Prompt: "What is your primary nutrition goal?",
			Options: []Option{
				{Value: "cut", Label: "Cut - Lose fat while maintaining muscle"},
				{Value: "bulk", Label: "Bulk - Gain muscle mass"},
				{Value: "maintain", Label: "Maintain - Stay at current weight"},
				{Value: "performance", Label: "Performance - Optimize for athletics"},
			},
		},
		{
			ID:     "diet",
			Prompt: "Do you have dietary restrictions?",
			Options: []Option{
				{Value: "none", Label: "No restrictions"},
				{Value: "vegetarian", Label: "Vegetarian"},
				{Value: "vegan", Label: "Vegan"},
				{Value: "other", Label: "Other restrictions"},
			},
		},
		{
			ID:     "cooking",
			Prompt: "What is your cooking experience level?",
			Options: []Option{
				{Value: "beginner", Label: "Beginner - Simple meals only"},
				{Value: "intermediate", Label: "Intermediate - Can follow recipes"},
				{Value: "advanced", Label: "Advanced - Confident in the kitchen"},
			},
		},
	},
}

// Questions returns the survey definition for the achievement type.
func Questions(t models.AchievementType) ([]Question, error) {
	qs, ok := surveyQuestions[t]
	if !ok {
		return nil, fmt.Errorf("unknown achievement type %q", t)
	}
	return qs, nil
}

// Validate checks that responses answer every question for the type with an
// allowed option value, and nothing more.
func Validate(t models.AchievementType, responses map[string]string) error {
	qs, err := Questions(t)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(qs))
	for _, q := range qs {
		answer, ok := responses[q.ID]
		if !ok {
			return fmt.Errorf("missing answer for question %q", q.ID)
		}
		valid := false
		for _, opt := range q.Options {
			if opt.Value == answer {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid answer %q for question %q", answer, q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	for id := range responses {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("unexpected answer for unknown question %q", id)
		}
	}

	return nil
}
