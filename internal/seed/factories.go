package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"glowup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the Seeder and by tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rand: r, nextID: 1000}
}

var relationshipStatuses = []models.RelationshipStatus{
	models.RelationshipSingle,
	models.RelationshipTaken,
	models.RelationshipMarried,
	models.RelationshipComplicated,
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	lastActive := time.Now().AddDate(0, 0, -f.rand.Intn(3))
	user := &models.User{
		Username:           gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:              gofakeit.Email(),
		DisplayName:        gofakeit.Name(),
		Bio:                gofakeit.Sentence(10),
		AvatarURL:          fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CoverURL:           fmt.Sprintf("https://picsum.photos/seed/cover-%s/1200/400", gofakeit.UUID()),
		RelationshipStatus: relationshipStatuses[f.rand.Intn(len(relationshipStatuses))],
		CurrentCity:        gofakeit.City(),
		Hobby:              gofakeit.Hobby(),
		Career:             gofakeit.JobTitle(),
		Points:             f.rand.Intn(900),
		DailyStreak:        f.rand.Intn(30),
		LastActiveDate:     &lastActive,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post of the given type without persisting it.
// Useful for batching.
func (f *Factory) BuildPost(user *models.User, postType string, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:   user.ID,
		PostType: postType,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	switch postType {
	case models.PostTypeVideo, models.PostTypeReel:
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/720/1280", gofakeit.UUID())
		post.Content = gofakeit.Sentence(8)
	default:
		// text posts occasionally carry a photo
		if f.rand.Intn(3) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, postType string, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, postType, overrides...)

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: type=%s user=%d", post.PostType, post.UserID)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from follower to following.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	follow := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}
	return f.db.Create(follow).Error
}

// CreateMessage constructs and persists a direct message between two users.
func (f *Factory) CreateMessage(sender, receiver *models.User, overrides ...func(*models.Message)) (*models.Message, error) {
	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    gofakeit.Sentence(10),
		Read:       f.rand.Intn(3) > 0,
	}

	for _, override := range overrides {
		override(message)
	}

	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// CreateStory constructs and persists an active story for the given user.
func (f *Factory) CreateStory(user *models.User, overrides ...func(*models.Story)) (*models.Story, error) {
	createdAt := time.Now().Add(-time.Duration(f.rand.Intn(20)) * time.Hour)
	story := &models.Story{
		UserID:    user.ID,
		MediaURL:  fmt.Sprintf("https://picsum.photos/seed/story-%s/720/1280", gofakeit.UUID()),
		MediaType: models.MediaTypeImage,
		Duration:  models.DefaultStoryDuration,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(models.StoryLifetime),
	}
	if f.rand.Intn(4) == 0 {
		story.MediaType = models.MediaTypeVideo
		story.Duration = 15
	}

	for _, override := range overrides {
		override(story)
	}

	if err := f.db.Create(story).Error; err != nil {
		return nil, err
	}
	return story, nil
}

// CreateStoryView records that viewer has seen the story.
func (f *Factory) CreateStoryView(story *models.Story, viewer *models.User) error {
	view := &models.StoryView{
		StoryID:  story.ID,
		ViewerID: viewer.ID,
	}
	return f.db.Create(view).Error
}

var routineTemplates = map[models.RoutineCategory][]string{
	models.RoutineCategoryFitness:   {"Morning run", "Gym session", "Evening stretch", "10k steps"},
	models.RoutineCategorySkincare:  {"AM skincare routine", "PM skincare routine", "Weekly face mask"},
	models.RoutineCategoryNutrition: {"Meal prep", "Protein shake", "Drink 3L water"},
	models.RoutineCategoryCareer:    {"Deep work block", "Read 20 pages", "Side project hour"},
	models.RoutineCategoryOther:     {"Journal", "Meditate", "Call a friend"},
}

var routineCategories = []models.RoutineCategory{
	models.RoutineCategoryFitness,
	models.RoutineCategorySkincare,
	models.RoutineCategoryNutrition,
	models.RoutineCategoryCareer,
	models.RoutineCategoryOther,
}

// CreateRoutine constructs and persists a routine task for the given user.
func (f *Factory) CreateRoutine(user *models.User, overrides ...func(*models.Routine)) (*models.Routine, error) {
	category := routineCategories[f.rand.Intn(len(routineCategories))]
	titles := routineTemplates[category]
	hour := f.rand.Intn(15) + 6

	routine := &models.Routine{
		UserID:    user.ID,
		Title:     titles[f.rand.Intn(len(titles))],
		Category:  category,
		Time:      fmt.Sprintf("%d:00 %s", ((hour+11)%12)+1, map[bool]string{true: "AM", false: "PM"}[hour < 12]),
		Completed: f.rand.Intn(2) == 0,
	}

	for _, override := range overrides {
		override(routine)
	}

	if err := f.db.Create(routine).Error; err != nil {
		return nil, err
	}
	return routine, nil
}

var albumNames = []string{
	"Progress Pics", "Gym Life", "Glow Journey", "Before & After",
	"Meal Prep", "Fit Check", "Golden Hour",
}

// CreateAlbum constructs and persists a gallery album for the given user.
func (f *Factory) CreateAlbum(user *models.User, overrides ...func(*models.Album)) (*models.Album, error) {
	album := &models.Album{
		UserID: user.ID,
		Name:   fmt.Sprintf("%s %d", albumNames[f.rand.Intn(len(albumNames))], gofakeit.Number(1, 99)),
	}

	for _, override := range overrides {
		override(album)
	}

	if err := f.db.Create(album).Error; err != nil {
		return nil, err
	}
	return album, nil
}

// CreateGalleryItem constructs and persists a media entry in the album.
func (f *Factory) CreateGalleryItem(user *models.User, album *models.Album, overrides ...func(*models.GalleryItem)) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		AlbumID:   album.ID,
		UserID:    user.ID,
		MediaURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		MediaType: models.MediaTypeImage,
		Caption:   gofakeit.Sentence(5),
	}

	for _, override := range overrides {
		override(item)
	}

	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CreateAchievement persists an achievement track with a valid random survey
// for the given user.
func (f *Factory) CreateAchievement(user *models.User, t models.AchievementType, overrides ...func(*models.UserAchievement)) error {
	responses := randomSurveyResponses(t, f.rand)
	stored := make(datatypes.JSONMap, len(responses))
	for k, v := range responses {
		stored[k] = v
	}

	progress := f.rand.Intn(400)
	achievement := &models.UserAchievement{
		UserID:          user.ID,
		AchievementType: t,
		SurveyResponses: stored,
		Progress:        progress,
		Level:           models.LevelForProgress(progress),
	}

	for _, override := range overrides {
		override(achievement)
	}

	return f.db.Create(achievement).Error
}
