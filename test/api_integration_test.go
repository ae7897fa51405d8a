//go:build integration

package test

import (
	"fmt"
	"net/http"
	"testing"
)

// TestSocialFlowIntegration walks the core social loop end to end: two users
// sign up, follow each other, post, like, and exchange direct messages.
func TestSocialFlowIntegration(t *testing.T) {
	app := newTestApp(t)

	alice := signupUser(t, app, "flow_alice")
	bob := signupUser(t, app, "flow_bob")

	// Alice posts.
	var post struct {
		ID       uint   `json:"id"`
		Content  string `json:"content"`
		PostType string `json:"post_type"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/posts/", alice.Token, map[string]string{
			"content": "first day of the glow up",
		}),
		http.StatusCreated, &post)
	if post.ID == 0 || post.PostType != "text" {
		t.Fatalf("unexpected post: %+v", post)
	}

	// Bob likes it.
	var like struct {
		LikesCount int  `json:"likes_count"`
		Liked      bool `json:"liked"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), bob.Token, nil),
		http.StatusOK, &like)
	if !like.Liked || like.LikesCount != 1 {
		t.Fatalf("unexpected like response: %+v", like)
	}

	// Bob follows Alice.
	var follow struct {
		Following bool `json:"following"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice.ID), bob.Token, nil),
		http.StatusOK, &follow)
	if !follow.Following {
		t.Fatalf("expected following=true, got %+v", follow)
	}

	// Alice's followers include Bob.
	var followers []struct {
		ID uint `json:"id"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", alice.ID), alice.Token, nil),
		http.StatusOK, &followers)
	found := false
	for _, f := range followers {
		if f.ID == bob.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("bob missing from alice's followers: %+v", followers)
	}

	// Bob's feed shows Alice's post.
	var feed []struct {
		ID uint `json:"id"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, "/api/posts/feed", bob.Token, nil),
		http.StatusOK, &feed)
	found = false
	for _, p := range feed {
		if p.ID == post.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("alice's post missing from bob's feed")
	}

	// Bob messages Alice.
	var msg struct {
		ID         uint `json:"id"`
		ReceiverID uint `json:"receiver_id"`
	}
	doJSON(t, app,
		authReq(t, http.MethodPost, "/api/messages/", bob.Token, map[string]interface{}{
			"receiver_id": alice.ID,
			"content":     "your post inspired me",
		}),
		http.StatusCreated, &msg)
	if msg.ReceiverID != alice.ID {
		t.Fatalf("unexpected message: %+v", msg)
	}

	// Alice has the thread in her conversation list with one unread.
	var convs []struct {
		Partner struct {
			ID uint `json:"id"`
		} `json:"partner"`
		UnreadCount int `json:"unread_count"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, "/api/messages/conversations", alice.Token, nil),
		http.StatusOK, &convs)
	found = false
	for _, conv := range convs {
		if conv.Partner.ID == bob.ID {
			found = true
			if conv.UnreadCount != 1 {
				t.Fatalf("expected 1 unread from bob, got %d", conv.UnreadCount)
			}
		}
	}
	if !found {
		t.Fatalf("bob's thread missing from alice's conversations: %+v", convs)
	}

	// Opening the thread marks it read.
	doJSON(t, app,
		authReq(t, http.MethodGet, fmt.Sprintf("/api/messages/%d", bob.ID), alice.Token, nil),
		http.StatusOK, nil)

	var unread struct {
		UnreadCount int64 `json:"unread_count"`
	}
	doJSON(t, app,
		authReq(t, http.MethodGet, "/api/messages/unread-count", alice.Token, nil),
		http.StatusOK, &unread)
	if unread.UnreadCount != 0 {
		t.Fatalf("expected 0 unread after opening thread, got %d", unread.UnreadCount)
	}

	// Unfollow cleans up the edge.
	doJSON(t, app,
		authReq(t, http.MethodDelete, fmt.Sprintf("/api/users/%d/follow", alice.ID), bob.Token, nil),
		http.StatusOK, nil)
}
