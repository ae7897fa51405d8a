package server

import (
	"context"
	"encoding/json"
	"log"

	"glowup/internal/models"
)

// Event type constants prevent typos in event names.
const (
	EventPostCreated         = "post_created"
	EventPostReactionUpdated = "post_reaction_updated"
	EventMessageReceived     = "message_received"
	EventMessageRead         = "message_read"
	EventStoryCreated        = "story_created"
	EventFollowerAdded       = "follower_added"
	EventFollowerRemoved     = "follower_removed"
	EventPresenceChanged     = "presence_changed"
)

func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
	}
}

func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.BroadcastAll(message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), message); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
	}
}

// notifyPresenceChange tells a user's followers that they went online or offline.
// Fan-out is capped so a very popular account cannot stall the presence reaper.
func (s *Server) notifyPresenceChange(userID uint, online bool) {
	followers, err := s.followRepo.Followers(context.Background(), userID, 500, 0)
	if err != nil {
		log.Printf("failed to load followers for presence change of user %d: %v", userID, err)
		return
	}
	payload := map[string]interface{}{
		"user_id": userID,
		"online":  online,
	}
	for _, follower := range followers {
		s.publishUserEvent(follower.ID, EventPresenceChanged, payload)
	}
}

func userSummary(user models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":           user.ID,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"avatar_url":   user.AvatarURL,
	}
}

func userSummaryPtr(user *models.User) map[string]interface{} {
	if user == nil {
		return nil
	}
	return userSummary(*user)
}
