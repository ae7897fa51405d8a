//go:build integration

package test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestProfileEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := signupUser(t, app, "profile")

	var me struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	doJSON(t, app, authReq(t, http.MethodGet, "/api/users/me", user.Token, nil), http.StatusOK, &me)
	if me.ID != user.ID {
		t.Fatalf("expected own profile, got %+v", me)
	}

	var updated struct {
		DisplayName        string `json:"display_name"`
		Bio                string `json:"bio"`
		RelationshipStatus string `json:"relationship_status"`
		CurrentCity        string `json:"current_city"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPut, "/api/users/me", user.Token, map[string]string{
			"display_name":        "Glow Tester",
			"bio":                 "testing the glow up",
			"relationship_status": "single",
			"current_city":        "Austin",
		}),
		http.StatusOK, &updated)
	if updated.DisplayName != "Glow Tester" || updated.CurrentCity != "Austin" {
		t.Fatalf("profile update not applied: %+v", updated)
	}

	// Recording activity starts the daily streak.
	var activity struct {
		DailyStreak int `json:"daily_streak"`
		Level       int `json:"level"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/users/me/activity", user.Token, nil),
		http.StatusOK, &activity)
	if activity.DailyStreak != 1 {
		t.Fatalf("expected streak 1 after first activity, got %d", activity.DailyStreak)
	}
	if activity.Level < 1 {
		t.Fatalf("expected level >= 1, got %d", activity.Level)
	}

	// Same-day activity must not double count.
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/users/me/activity", user.Token, nil),
		http.StatusOK, &activity)
	if activity.DailyStreak != 1 {
		t.Fatalf("expected streak to stay 1 on same day, got %d", activity.DailyStreak)
	}
}

func TestStoryEndpoints(t *testing.T) {
	app := newTestApp(t)
	author := signupUser(t, app, "story_author")
	viewer := signupUser(t, app, "story_viewer")

	var story struct {
		ID        uint   `json:"id"`
		MediaType string `json:"media_type"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/stories/", author.Token, map[string]interface{}{
			"media_url":  "https://cdn.example.com/story.jpg",
			"media_type": "image",
		}),
		http.StatusCreated, &story)
	if story.ID == 0 {
		t.Fatalf("unexpected story: %+v", story)
	}

	doJSON(t, app,
		authReq(t, http.MethodPost, fmt.Sprintf("/api/stories/%d/view", story.ID), viewer.Token, nil),
		http.StatusOK, nil)

	var viewers []struct {
		ID uint `json:"id"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, fmt.Sprintf("/api/stories/%d/viewers", story.ID), author.Token, nil),
		http.StatusOK, &viewers)
	if len(viewers) != 1 || viewers[0].ID != viewer.ID {
		t.Fatalf("expected viewer %d, got %+v", viewer.ID, viewers)
	}

	doJSON(t, app,
		authReq(t, http.MethodDelete, fmt.Sprintf("/api/stories/%d", story.ID), author.Token, nil),
		http.StatusNoContent, nil)
}

func TestRoutineEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := signupUser(t, app, "routine")

	var routine struct {
		ID        uint `json:"id"`
		Completed bool `json:"completed"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/routines/", user.Token, map[string]string{
			"title":    "Morning run",
			"category": "fitness",
			"time":     "6:00 AM",
		}),
		http.StatusCreated, &routine)
	if routine.ID == 0 || routine.Completed {
		t.Fatalf("unexpected routine: %+v", routine)
	}

	doJSON(t, app,
		authReq(t, http.MethodPost, fmt.Sprintf("/api/routines/%d/toggle", routine.ID), user.Token, nil),
		http.StatusOK, &routine)
	if !routine.Completed {
		t.Fatalf("expected routine completed after toggle: %+v", routine)
	}

	var list struct {
		Completed int `json:"completed"`
		Total     int `json:"total"`
	}
	doJSON(t, app, authReq(t, http.MethodGet, "/api/routines/", user.Token, nil), http.StatusOK, &list)
	if list.Total != 1 || list.Completed != 1 {
		t.Fatalf("unexpected routine summary: %+v", list)
	}

	doJSON(t, app,
		authReq(t, http.MethodDelete, fmt.Sprintf("/api/routines/%d", routine.ID), user.Token, nil),
		http.StatusNoContent, nil)
}

func TestAlbumEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := signupUser(t, app, "album")

	var album struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/albums/", user.Token, map[string]string{"name": "Progress Pics"}),
		http.StatusCreated, &album)
	if album.ID == 0 {
		t.Fatalf("unexpected album: %+v", album)
	}

	var item struct {
		ID      uint `json:"id"`
		AlbumID uint `json:"album_id"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, fmt.Sprintf("/api/albums/%d/items", album.ID), user.Token, map[string]string{
			"media_url": "https://cdn.example.com/photo.jpg",
			"caption":   "week one",
		}),
		http.StatusCreated, &item)
	if item.AlbumID != album.ID {
		t.Fatalf("unexpected item: %+v", item)
	}

	doJSON(t, app,
		authReq(t, http.MethodPut, fmt.Sprintf("/api/albums/%d", album.ID), user.Token, map[string]string{"name": "Week Ones"}),
		http.StatusOK, &album)
	if album.Name != "Week Ones" {
		t.Fatalf("rename not applied: %+v", album)
	}

	doJSON(t, app,
		authReq(t, http.MethodDelete, fmt.Sprintf("/api/gallery/%d", item.ID), user.Token, nil),
		http.StatusNoContent, nil)
	doJSON(t, app,
		authReq(t, http.MethodDelete, fmt.Sprintf("/api/albums/%d", album.ID), user.Token, nil),
		http.StatusNoContent, nil)
}

func TestAchievementEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := signupUser(t, app, "achieve")

	var survey struct {
		AchievementType string `json:"achievement_type"`
		Questions       []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, "/api/achievements/body_goals/survey", user.Token, nil),
		http.StatusOK, &survey)
	if len(survey.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(survey.Questions))
	}

	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/achievements/body_goals/survey", user.Token, map[string]interface{}{
			"responses": map[string]string{
				"goal":       "cutting",
				"experience": "beginner",
				"preference": "home",
			},
		}),
		http.StatusCreated, nil)

	var guide struct {
		AchievementType string `json:"achievement_type"`
		Guide           struct {
			Title           string `json:"title"`
			Recommendations []struct {
				ProductName string `json:"product_name"`
				Featured    bool   `json:"featured"`
			} `json:"recommendations"`
		} `json:"guide"`
		Products []struct {
			Name string `json:"name"`
		} `json:"products"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, "/api/achievements/body_goals/guide", user.Token, nil),
		http.StatusOK, &guide)
	if guide.AchievementType != "body_goals" || len(guide.Guide.Recommendations) == 0 {
		t.Fatalf("unexpected guide: %+v", guide)
	}

	// Progress accrues and levels are derived from it.
	var achievement struct {
		Progress int `json:"progress"`
		Level    int `json:"level"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/achievements/body_goals/progress", user.Token, map[string]int{"delta": 150}),
		http.StatusOK, &achievement)
	if achievement.Progress != 150 || achievement.Level != 2 {
		t.Fatalf("unexpected progress state: %+v", achievement)
	}
}
