package guides

import (
	"fmt"

	"glowup/internal/models"
)

// Section is a titled block of guide content.
type Section struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Recommendation points at a storefront product by name. Featured
// recommendations matched the primary goal answer exactly.
type Recommendation struct {
	ProductName string `json:"product_name"`
	Featured    bool   `json:"featured"`
	Reason      string `json:"reason"`
}

// Guide is the full personalized content bundle for one achievement type.
type Guide struct {
	Type            models.AchievementType `json:"type"`
	Title           string                 `json:"title"`
	Sections        []Section              `json:"sections"`
	Recommendations []Recommendation       `json:"recommendations"`
}

// Build maps validated survey answers to a guide. It is pure and
// deterministic: no state, no randomness, no clock.
func Build(t models.AchievementType, responses map[string]string) (*Guide, error) {
	if err := Validate(t, responses); err != nil {
		return nil, err
	}

	switch t {
	case models.AchievementBodyGoals:
		return buildBodyGoals(responses), nil
	case models.AchievementSkinGlow:
		return buildSkinGlow(responses), nil
	case models.AchievementLevelUp:
		return buildLevelUp(responses), nil
	case models.AchievementMeals:
		return buildMeals(responses), nil
	}
	return nil, fmt.Errorf("unknown achievement type %q", t)
}

var workoutPlans = map[string]struct {
	title    string
	subtitle string
	days     []Section
	tips     Section
}{
	"cutting": {
		title:    "Fat Loss Program",
		subtitle: "4-Day Split with Conditioning",
		days: []Section{
			{Title: "Monday - Full Body Strength", Items: []string{
				"Squats: 4 sets x 10-12 reps",
				"Bench Press: 3 sets x 10-12 reps",
				"Barbell Rows: 3 sets x 10-12 reps",
				"Plank: 3 sets x 45-60 seconds",
			}},
			{Title: "Tuesday - HIIT Conditioning", Items: []string{
				"Intervals: 10 rounds of 30s hard / 60s easy",
				"Mountain Climbers: 3 sets x 20 reps",
				"Burpees: 3 sets x 12 reps",
			}},
			{Title: "Thursday - Upper Body", Items: []string{
				"Overhead Press: 3 sets x 10-12 reps",
				"Pull-ups or Lat Pulldowns: 3 sets x 8-12 reps",
				"Dumbbell Curls: 3 sets x 12-15 reps",
				"Tricep Pushdowns: 3 sets x 12-15 reps",
			}},
			{Title: "Saturday - Lower Body & Core", Items: []string{
				"Romanian Deadlifts: 3 sets x 10-12 reps",
				"Walking Lunges: 3 sets x 12 each leg",
				"Leg Curls: 3 sets x 12-15 reps",
				"Ab Wheel Rollouts: 3 sets x 10-12 reps",
			}},
		},
		tips: Section{Title: "Pro Tips for Cutting", Items: []string{
			"Eat 300-500 calories below maintenance",
			"Aim for 1g protein per lb of body weight",
			"Add 2-3 cardio sessions weekly",
			"Get 7-9 hours of sleep",
		}},
	},
	"bulking": {
		title:    "Muscle Building Program",
		subtitle: "5-Day Split for Maximum Gains",
		days: []Section{
			{Title: "Monday - Chest & Triceps", Items: []string{
				"Bench Press: 4 sets x 8-10 reps",
				"Incline Dumbbell Press: 3 sets x 10-12 reps",
				"Cable Flyes: 3 sets x 12-15 reps",
				"Tricep Dips: 3 sets x 10-12 reps",
				"Tricep Pushdowns: 3 sets x 12-15 reps",
			}},
			{Title: "Tuesday - Back & Biceps", Items: []string{
				"Deadlifts: 4 sets x 6-8 reps",
				"Pull-ups: 3 sets x 8-10 reps",
				"Barbell Rows: 3 sets x 10-12 reps",
				"Barbell Curls: 3 sets x 10-12 reps",
				"Hammer Curls: 3 sets x 12-15 reps",
			}},
			{Title: "Wednesday - Rest or Cardio", Items: []string{
				"Light cardio or active recovery",
			}},
			{Title: "Thursday - Legs", Items: []string{
				"Squats: 4 sets x 8-10 reps",
				"Leg Press: 3 sets x 12-15 reps",
				"Romanian Deadlifts: 3 sets x 10-12 reps",
				"Leg Curls: 3 sets x 12-15 reps",
				"Calf Raises: 4 sets x 15-20 reps",
			}},
			{Title: "Friday - Shoulders & Arms", Items: []string{
				"Overhead Press: 4 sets x 8-10 reps",
				"Lateral Raises: 3 sets x 12-15 reps",
				"Face Pulls: 3 sets x 15-20 reps",
				"EZ Bar Curls: 3 sets x 10-12 reps",
				"Skull Crushers: 3 sets x 10-12 reps",
			}},
		},
		tips: Section{Title: "Pro Tips for Bulking", Items: []string{
			"Eat 300-500 calories above maintenance",
			"Aim for 1g protein per lb of body weight",
			"Progressive overload every week",
			"Get 7-9 hours of sleep",
		}},
	},
	"strength": {
		title:    "Strength Foundations Program",
		subtitle: "4-Day Heavy Compound Focus",
		days: []Section{
			{Title: "Monday - Squat Focus", Items: []string{
				"Back Squats: 5 sets x 5 reps",
				"Front Squats: 3 sets x 6-8 reps",
				"Leg Press: 3 sets x 10 reps",
			}},
			{Title: "Tuesday - Bench Focus", Items: []string{
				"Bench Press: 5 sets x 5 reps",
				"Close-Grip Bench: 3 sets x 6-8 reps",
				"Overhead Press: 3 sets x 8 reps",
			}},
			{Title: "Thursday - Deadlift Focus", Items: []string{
				"Deadlifts: 5 sets x 3-5 reps",
				"Barbell Rows: 4 sets x 6-8 reps",
				"Pull-ups: 3 sets x 8 reps",
			}},
			{Title: "Friday - Accessory Work", Items: []string{
				"Hip Thrusts: 3 sets x 8-10 reps",
				"Dips: 3 sets x 8-10 reps",
				"Core Circuit: 3 rounds",
			}},
		},
		tips: Section{Title: "Pro Tips for Strength", Items: []string{
			"Work at 80-90% of your one-rep max",
			"Rest 3-5 minutes between heavy sets",
			"Deload every 4-6 weeks",
			"Film your lifts and check form",
		}},
	},
	"toning": {
		title:    "Toning & Strength Program",
		subtitle: "4-Day Full Body Split",
		days: []Section{
			{Title: "Monday - Lower Body Power", Items: []string{
				"Squats: 4 sets x 10-12 reps",
				"Hip Thrusts: 4 sets x 12-15 reps",
				"Walking Lunges: 3 sets x 12 each leg",
				"Leg Curls: 3 sets x 12-15 reps",
				"Calf Raises: 3 sets x 15-20 reps",
			}},
			{Title: "Tuesday - Upper Body", Items: []string{
				"Push-ups: 3 sets x 10-15 reps",
				"Dumbbell Rows: 3 sets x 12 each arm",
				"Shoulder Press: 3 sets x 10-12 reps",
				"Tricep Dips: 3 sets x 10-12 reps",
				"Bicep Curls: 3 sets x 12-15 reps",
			}},
			{Title: "Thursday - Lower Body Volume", Items: []string{
				"Romanian Deadlifts: 3 sets x 12 reps",
				"Bulgarian Split Squats: 3 sets x 10 each leg",
				"Leg Press: 3 sets x 15 reps",
				"Glute Kickbacks: 3 sets x 15 each leg",
				"Ab Wheel Rollouts: 3 sets x 10-12 reps",
			}},
			{Title: "Friday - Full Body Circuit", Items: []string{
				"Goblet Squats: 3 sets x 15 reps",
				"Dumbbell Chest Press: 3 sets x 12 reps",
				"Lat Pulldowns: 3 sets x 12 reps",
				"Plank: 3 sets x 45-60 seconds",
				"Mountain Climbers: 3 sets x 20 reps",
			}},
		},
		tips: Section{Title: "Pro Tips for Toning", Items: []string{
			"Focus on compound movements",
			"Maintain slight caloric deficit",
			"High protein (0.8-1g per lb)",
			"Add 2-3 cardio sessions weekly",
		}},
	},
}

var experienceNotes = map[string]string{
	"beginner":     "Start with the listed lower end of sets and reps, and prioritize form over load for the first 6 weeks",
	"intermediate": "Work at the listed volumes and add weight whenever you hit the top of a rep range",
	"advanced":     "Add a top set at RPE 9 to the first lift of each day and track weekly tonnage",
}

// fitnessProductRules maps goal answers to the featured guide product and
// preference answers to equipment recommendations.
var fitnessGoalProducts = map[string]string{
	"cutting":  "Weight Loss Guide PDF",
	"bulking":  "Muscle Building Guide PDF",
	"strength": "Strength Training Guide PDF",
	"toning":   "Toning Workout Guide PDF",
}

var fitnessPreferenceProducts = map[string][]string{
	"home":   {"Adjustable Dumbbell Set", "Resistance Bands Set"},
	"gym":    {"Weightlifting Belt"},
	"hybrid": {"Resistance Bands Set"},
}

func buildBodyGoals(responses map[string]string) *Guide {
	goal := responses["goal"]
	experience := responses["experience"]
	preference := responses["preference"]

	plan := workoutPlans[goal]

	sections := make([]Section, 0, len(plan.days)+3)
	sections = append(sections, Section{
		Title: plan.subtitle,
		Items: []string{experienceNotes[experience]},
	})
	sections = append(sections, plan.days...)
	sections = append(sections, plan.tips)
	sections = append(sections, Section{Title: "General Guidelines", Items: []string{
		"Warm up for 5-10 minutes before each workout",
		"Rest 60-90 seconds between sets",
		"Track your weights and aim to increase progressively",
		"Stay hydrated throughout your workout",
		"Stretch for 5-10 minutes after training",
	}})

	recs := []Recommendation{{
		ProductName: fitnessGoalProducts[goal],
		Featured:    true,
		Reason:      "Matches your " + goal + " goal",
	}}
	for _, name := range fitnessPreferenceProducts[preference] {
		recs = append(recs, Recommendation{
			ProductName: name,
			Reason:      "Recommended for " + preference + " training",
		})
	}

	return &Guide{
		Type:            models.AchievementBodyGoals,
		Title:           plan.title,
		Sections:        sections,
		Recommendations: recs,
	}
}

var skinRoutines = map[string]struct {
	title   string
	morning []string
	evening []string
}{
	"acne": {
		title:   "Acne Control Routine",
		morning: []string{"Gentle foaming cleanser", "Niacinamide serum", "Oil-free moisturizer", "SPF 30+ sunscreen"},
		evening: []string{"Double cleanse", "Salicylic acid treatment (2-3x per week)", "Lightweight moisturizer"},
	},
	"tan": {
		title:   "Brightening Routine",
		morning: []string{"Cream cleanser", "Vitamin C serum", "Moisturizer", "SPF 50 sunscreen, reapply midday"},
		evening: []string{"Cleanse", "Alpha arbutin or kojic acid serum", "Rich moisturizer"},
	},
	"dryness": {
		title:   "Deep Hydration Routine",
		morning: []string{"Hydrating cleanser", "Hyaluronic acid serum on damp skin", "Ceramide moisturizer", "SPF 30+ sunscreen"},
		evening: []string{"Oil or balm cleanse", "Hyaluronic acid serum", "Occlusive night cream"},
	},
	"aging": {
		title:   "Anti-Aging Routine",
		morning: []string{"Gentle cleanser", "Vitamin C serum", "Peptide moisturizer", "SPF 50 sunscreen"},
		evening: []string{"Cleanse", "Retinol (start 2x per week)", "Rich night cream"},
	},
}

var skinTypeNotes = map[string]string{
	"oily":        "Choose gel textures and non-comedogenic formulas",
	"dry":         "Layer hydrating products from thinnest to thickest",
	"combination": "Treat the T-zone and cheeks as separate zones",
	"sensitive":   "Patch test every new product and avoid fragrance",
}

var skinConcernProducts = map[string]string{
	"acne":    "Clear Skin Guide PDF",
	"tan":     "Even Tone Guide PDF",
	"dryness": "Hydration Guide PDF",
	"aging":   "Anti-Aging Guide PDF",
}

var skinBudgetProducts = map[string][]string{
	"budget":   {"Gentle Foaming Cleanser"},
	"moderate": {"Vitamin C Serum", "Gentle Foaming Cleanser"},
	"premium":  {"Retinol Night Cream", "Vitamin C Serum"},
}

func buildSkinGlow(responses map[string]string) *Guide {
	concern := responses["concern"]
	skinType := responses["skin_type"]
	budget := responses["budget"]

	routine := skinRoutines[concern]

	sections := []Section{
		{Title: "Morning Routine", Items: routine.morning},
		{Title: "Evening Routine", Items: routine.evening},
		{Title: "For Your Skin Type", Items: []string{skinTypeNotes[skinType]}},
		{Title: "Weekly Habits", Items: []string{
			"Change pillowcases twice a week",
			"Exfoliate once a week, never more",
			"Drink at least 2 liters of water daily",
		}},
	}

	recs := []Recommendation{{
		ProductName: skinConcernProducts[concern],
		Featured:    true,
		Reason:      "Targets your " + concern + " concern",
	}}
	for _, name := range skinBudgetProducts[budget] {
		recs = append(recs, Recommendation{
			ProductName: name,
			Reason:      "Fits your " + budget + " budget",
		})
	}

	return &Guide{
		Type:            models.AchievementSkinGlow,
		Title:           routine.title,
		Sections:        sections,
		Recommendations: recs,
	}
}

var careerPlans = map[string]struct {
	title string
	steps []string
}{
	"skills": {
		title: "Skill Builder Roadmap",
		steps: []string{
			"Pick one skill and commit to 90 days",
			"Block 45 minutes of deliberate practice daily",
			"Build a small public project each month",
			"Find a community or mentor in the field",
		},
	},
	"promotion": {
		title: "Promotion Playbook",
		steps: []string{
			"Document your wins weekly in a brag file",
			"Ask your manager what the next level looks like",
			"Take on one visible cross-team project",
			"Schedule quarterly growth conversations",
		},
	},
	"switch": {
		title: "Career Switch Roadmap",
		steps: []string{
			"Run 5 informational interviews in the target field",
			"Map your transferable skills to the new role",
			"Build a portfolio piece that speaks the new field's language",
			"Apply while you learn, not after",
		},
	},
	"entrepreneurship": {
		title: "Founder's Playbook",
		steps: []string{
			"Talk to 20 potential customers before building",
			"Ship the smallest sellable version",
			"Keep your day job until revenue is repeatable",
			"Track runway and one growth metric only",
		},
	},
}

var careerStageNotes = map[string]string{
	"student": "Prioritize internships and building in public over credentials",
	"early":   "Optimize for learning rate, not title or salary",
	"mid":     "Start building your reputation outside your company",
	"senior":  "Leverage your network, it is your biggest asset now",
}

var careerGoalProducts = map[string]string{
	"skills":           "Career Accelerator Course",
	"promotion":        "Leadership Essentials Course",
	"switch":           "Career Pivot Workbook",
	"entrepreneurship": "Startup Launch Kit",
}

var educationProducts = map[string]string{
	"tech":     "Intro to Programming Course",
	"business": "Financial Modeling Course",
	"creative": "Design Fundamentals Course",
	"other":    "Learning How to Learn Course",
}

func buildLevelUp(responses map[string]string) *Guide {
	stage := responses["career_stage"]
	education := responses["education"]
	goal := responses["goal"]

	plan := careerPlans[goal]

	sections := []Section{
		{Title: "Your 90-Day Plan", Items: plan.steps},
		{Title: "For Your Career Stage", Items: []string{careerStageNotes[stage]}},
		{Title: "Weekly Habits", Items: []string{
			"Read 30 minutes in your field daily",
			"Reach out to one new person weekly",
			"Review progress every Sunday",
		}},
	}

	recs := []Recommendation{
		{
			ProductName: careerGoalProducts[goal],
			Featured:    true,
			Reason:      "Matches your " + goal + " goal",
		},
		{
			ProductName: educationProducts[education],
			Reason:      "Supports your " + education + " focus",
		},
	}

	return &Guide{
		Type:            models.AchievementLevelUp,
		Title:           plan.title,
		Sections:        sections,
		Recommendations: recs,
	}
}

var mealPlans = map[string]struct {
	title   string
	targets []string
	sample  []string
}{
	"cut": {
		title:   "Cutting Meal Plan",
		targets: []string{"300-500 calorie deficit", "1g protein per lb of body weight", "Fill half your plate with vegetables"},
		sample:  []string{"Breakfast: Greek yogurt with berries", "Lunch: Grilled chicken salad", "Dinner: Baked fish with roasted vegetables", "Snack: Protein shake"},
	},
	"bulk": {
		title:   "Bulking Meal Plan",
		targets: []string{"300-500 calorie surplus", "1g protein per lb of body weight", "Carbs around training"},
		sample:  []string{"Breakfast: Oats with banana and peanut butter", "Lunch: Rice bowl with beef and avocado", "Dinner: Pasta with chicken", "Snack: Trail mix and milk"},
	},
	"maintain": {
		title:   "Balanced Meal Plan",
		targets: []string{"Eat at maintenance calories", "0.8g protein per lb of body weight", "80/20 whole foods to treats"},
		sample:  []string{"Breakfast: Eggs on whole grain toast", "Lunch: Grain bowl with chickpeas", "Dinner: Stir fry with tofu or chicken", "Snack: Fruit and nuts"},
	},
	"performance": {
		title:   "Performance Meal Plan",
		targets: []string{"Periodize carbs to training days", "1g protein per lb of body weight", "Hydrate with electrolytes"},
		sample:  []string{"Breakfast: Oatmeal with whey and fruit", "Pre-training: Rice cakes with honey", "Post-training: Protein shake and banana", "Dinner: Salmon with sweet potato"},
	},
}

var dietNotes = map[string]string{
	"none":       "No substitutions needed",
	"vegetarian": "Swap meat for eggs, dairy, tofu, and legumes",
	"vegan":      "Swap animal products for tofu, tempeh, legumes, and fortified foods",
	"other":      "Apply your restrictions to the sample day and keep protein targets constant",
}

var cookingNotes = map[string]string{
	"beginner":     "Batch cook 2-3 simple recipes on Sunday",
	"intermediate": "Prep proteins ahead and assemble meals fresh",
	"advanced":     "Rotate cuisines weekly to keep adherence high",
}

var mealGoalProducts = map[string]string{
	"cut":         "Cutting Meal Prep Guide PDF",
	"bulk":        "Bulking Meal Prep Guide PDF",
	"maintain":    "Balanced Nutrition Guide PDF",
	"performance": "Performance Nutrition Guide PDF",
}

func buildMeals(responses map[string]string) *Guide {
	goal := responses["goal"]
	diet := responses["diet"]
	cooking := responses["cooking"]

	plan := mealPlans[goal]

	sections := []Section{
		{Title: "Daily Targets", Items: plan.targets},
		{Title: "Sample Day", Items: plan.sample},
		{Title: "Dietary Adjustments", Items: []string{dietNotes[diet]}},
		{Title: "Prep Strategy", Items: []string{cookingNotes[cooking]}},
	}

	recs := []Recommendation{{
		ProductName: mealGoalProducts[goal],
		Featured:    true,
		Reason:      "Matches your " + goal + " goal",
	}}
	if cooking == "beginner" {
		recs = append(recs, Recommendation{
			ProductName: "Beginner's Cookbook",
			Reason:      "Simple recipes to build confidence",
		})
	}
	if diet == "vegetarian" || diet == "vegan" {
		recs = append(recs, Recommendation{
			ProductName: "Plant Protein Sampler",
			Reason:      "Hit protein targets on a plant-based diet",
		})
	}

	return &Guide{
		Type:            models.AchievementMeals,
		Title:           plan.title,
		Sections:        sections,
		Recommendations: recs,
	}
}

// RecommendedProductNames returns every product name any guide rule can
// produce. The seeder uses this to guarantee the storefront resolves every
// recommendation.
func RecommendedProductNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range fitnessGoalProducts {
		add(name)
	}
	for _, group := range fitnessPreferenceProducts {
		for _, name := range group {
			add(name)
		}
	}
	for _, name := range skinConcernProducts {
		add(name)
	}
	for _, group := range skinBudgetProducts {
		for _, name := range group {
			add(name)
		}
	}
	for _, name := range careerGoalProducts {
		add(name)
	}
	for _, name := range educationProducts {
		add(name)
	}
	for _, name := range mealGoalProducts {
		add(name)
	}
	add("Beginner's Cookbook")
	add("Plant Protein Sampler")

	return names
}
