// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"glowup/internal/guides"
	"glowup/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plain-text password instead of hashing. Dev only.
	SkipBcrypt bool
	// DryRun builds entities without writing them to the database.
	DryRun bool
	// MaxDays spreads generated timestamps over this many days back.
	MaxDays int
	// BatchSize controls batch inserts for posts.
	BatchSize int
}

// Distribution splits a post count across the supported post types.
// Values are percentages; the text share absorbs rounding remainders.
type Distribution struct {
	Text  int
	Video int
	Reel  int
}

var defaultDistribution = Distribution{Text: 60, Video: 20, Reel: 20}

// CategoryDistributions tunes the post type mix per seeded persona.
var CategoryDistributions = map[string]Distribution{
	"creator":  {Text: 20, Video: 40, Reel: 40},
	"lurker":   {Text: 90, Video: 5, Reel: 5},
	"balanced": defaultDistribution,
}

func computeCounts(total int, d Distribution) (text, video, reel int) {
	video = total * d.Video / 100
	reel = total * d.Reel / 100
	text = total - video - reel
	return text, video, reel
}

// Seeder populates the database with realistic development data.
type Seeder struct {
	db      *gorm.DB
	opts    Options
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts ...Options) *Seeder {
	o := Options{NumUsers: 25, NumPosts: 100, MaxDays: 90, BatchSize: 100}
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Seeder{db: db, opts: o, factory: NewFactory(db, o)}
}

// Run populates the database with test data
func (s *Seeder) Run() error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	// Clear existing data to avoid conflicts if requested
	if s.opts.ShouldClean {
		if err := s.clearData(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	// Storefront catalog first so guide recommendations always resolve
	if err := Products(s.db); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	log.Println("✓ storefront catalog seeded")

	users, err := s.SeedSocialMesh(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to seed social mesh: %w", err)
	}
	log.Printf("✓ %d users created with follow edges and messages", len(users))

	posts, err := s.createPosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.createLikes(users, posts); err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}

	if err := s.createStories(users); err != nil {
		return fmt.Errorf("failed to create stories: %w", err)
	}

	if err := s.createRoutines(users); err != nil {
		return fmt.Errorf("failed to create routines: %w", err)
	}

	if err := s.createAlbums(users); err != nil {
		return fmt.Errorf("failed to create albums: %w", err)
	}

	if err := s.createAchievements(users); err != nil {
		return fmt.Errorf("failed to create achievements: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func (s *Seeder) clearData() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE user_achievements, gallery_items, albums, routines,
		story_views, stories, messages, follows, likes, posts, products, users
		RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedSocialMesh creates count users and wires a follow graph and message
// threads between them. Returned users include the base accounts.
func (s *Seeder) SeedSocialMesh(count int) ([]models.User, error) {
	users, err := s.createUsers(count)
	if err != nil {
		return nil, err
	}
	if len(users) < 2 {
		return users, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Each user follows roughly a fifth of the others.
	for i := range users {
		followCount := len(users)/5 + 1
		for j := 0; j < followCount; j++ {
			target := users[r.Intn(len(users))]
			if target.ID == users[i].ID {
				continue
			}
			// unique index collapses duplicate edges, ignore conflicts
			_ = s.factory.CreateFollow(&users[i], &target)
		}
	}

	// Short message threads between random pairs.
	threads := len(users) * 2
	for i := 0; i < threads; i++ {
		a := users[r.Intn(len(users))]
		b := users[r.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		msgCount := r.Intn(5) + 1
		for j := 0; j < msgCount; j++ {
			sender, receiver := a, b
			if j%2 == 1 {
				sender, receiver = b, a
			}
			if _, err := s.factory.CreateMessage(&sender, &receiver); err != nil {
				return nil, err
			}
		}
	}

	return users, nil
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	// Always include some specific users for consistency if cleaning
	if count >= 3 {
		base := []struct {
			username string
			admin    bool
		}{
			{"ava", true},
			{"maya", false},
			{"test", false},
		}
		for _, b := range base {
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Username = b.username
				u.Email = fmt.Sprintf("%s@example.com", b.username)
				u.Bio = "One of the OGs."
				u.IsAdmin = b.admin
			})
			if err == nil {
				users = append(users, *user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, *user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func (s *Seeder) createPosts(users []models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 || count == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	textCount, videoCount, reelCount := computeCounts(count, defaultDistribution)

	posts := make([]*models.Post, 0, count)
	build := func(postType string, n int) {
		for i := 0; i < n; i++ {
			user := users[r.Intn(len(users))]
			posts = append(posts, s.factory.BuildPost(&user, postType))
		}
	}
	build(models.PostTypeText, textCount)
	build(models.PostTypeVideo, videoCount)
	build(models.PostTypeReel, reelCount)

	batchSize := s.opts.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	for start := 0; start < len(posts); start += batchSize {
		end := start + batchSize
		if end > len(posts) {
			end = len(posts)
		}
		if err := s.factory.CreatePostsBatch(posts[start:end]); err != nil {
			return nil, err
		}
		log.Printf("Created %d posts...", end)
	}

	return posts, nil
}

func (s *Seeder) createLikes(users []models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 || s.opts.DryRun {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, post := range posts {
		likeCount := r.Intn(len(users)/2 + 1)
		for i := 0; i < likeCount; i++ {
			user := users[r.Intn(len(users))]
			// unique index collapses duplicate likes, ignore conflicts
			_ = s.factory.CreateLike(&user, post)
		}
	}
	return nil
}

func (s *Seeder) createStories(users []models.User) error {
	if s.opts.DryRun {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range users {
		// Roughly half the users have an active story.
		if r.Intn(2) == 0 {
			continue
		}
		story, err := s.factory.CreateStory(&users[i])
		if err != nil {
			return err
		}
		viewCount := r.Intn(len(users)/3 + 1)
		for j := 0; j < viewCount; j++ {
			viewer := users[r.Intn(len(users))]
			if viewer.ID == users[i].ID {
				continue
			}
			_ = s.factory.CreateStoryView(story, &viewer)
		}
	}
	return nil
}

func (s *Seeder) createRoutines(users []models.User) error {
	if s.opts.DryRun {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range users {
		routineCount := r.Intn(3) + 2
		for j := 0; j < routineCount; j++ {
			if _, err := s.factory.CreateRoutine(&users[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createAlbums(users []models.User) error {
	if s.opts.DryRun {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range users {
		albumCount := r.Intn(2) + 1
		for j := 0; j < albumCount; j++ {
			album, err := s.factory.CreateAlbum(&users[i])
			if err != nil {
				return err
			}
			itemCount := r.Intn(4) + 2
			for k := 0; k < itemCount; k++ {
				if _, err := s.factory.CreateGalleryItem(&users[i], album); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Seeder) createAchievements(users []models.User) error {
	if s.opts.DryRun {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range users {
		trackCount := r.Intn(2) + 1
		for j := 0; j < trackCount; j++ {
			achievementType := models.AchievementTypes[r.Intn(len(models.AchievementTypes))]
			// unique index collapses duplicate tracks per user, ignore conflicts
			_ = s.factory.CreateAchievement(&users[i], achievementType)
		}
	}
	return nil
}

// randomSurveyResponses picks a valid answer for every question of the
// achievement type, so the stored survey always builds a guide.
func randomSurveyResponses(t models.AchievementType, r *rand.Rand) map[string]string {
	questions, err := guides.Questions(t)
	if err != nil {
		return nil
	}
	responses := make(map[string]string, len(questions))
	for _, q := range questions {
		responses[q.ID] = q.Options[r.Intn(len(q.Options))].Value
	}
	return responses
}
