// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"glowup/internal/middleware"
	"glowup/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler handles the realtime connection. Clients receive
// fan-out events (new messages, feed activity, presence) and may send a
// small set of commands back over the same socket.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		middleware.ActiveWebSockets.Inc()
		defer middleware.ActiveWebSockets.Dec()

		ctx := context.Background()

		// Get userID from context locals (set by AuthRequired middleware)
		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			log.Printf("WebSocket: Unauthenticated connection attempt")
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			log.Printf("WebSocket: Failed to get user %d: %v", userID, err)
			_ = conn.Close()
			return
		}
		username := user.Username

		if s.hub == nil {
			_ = conn.Close()
			return
		}

		// Socket is established; the single-use ticket is done.
		s.consumeWSTicket(ctx, conn.Locals("wsTicket"))

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			log.Printf("WebSocket: Failed to register user %d: %v", userID, err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		client.IncomingHandler = func(c *notifications.Client, raw []byte) {
			var incoming map[string]interface{}
			if err := json.Unmarshal(raw, &incoming); err != nil {
				log.Printf("WebSocket: Invalid message format from user %d", userID)
				return
			}

			msgType, ok := incoming["type"].(string)
			if !ok {
				return
			}

			switch msgType {
			case "send_message":
				// Alternative to the HTTP endpoint, same rate limit.
				receiverFloat, rok := incoming["receiver_id"].(float64)
				content, _ := incoming["content"].(string)
				if !rok || content == "" {
					return
				}
				receiverID := uint(receiverFloat)

				id := fmt.Sprintf("user:%d", userID)
				allowed, _ := middleware.CheckRateLimit(ctx, s.redis, "send_message", id, 15, time.Minute)
				if !allowed {
					s.trySendJSON(c, map[string]interface{}{
						"type":    "error",
						"payload": map[string]string{"message": "Rate limit exceeded. Please wait a moment."},
					})
					return
				}

				msg, serr := s.messageService.SendMessage(ctx, userID, receiverID, content)
				if serr != nil {
					s.trySendJSON(c, map[string]interface{}{
						"type":    "error",
						"payload": map[string]string{"message": serr.Error()},
					})
					return
				}

				s.publishUserEvent(receiverID, EventMessageReceived, map[string]interface{}{
					"message_id": msg.ID,
					"sender_id":  msg.SenderID,
					"content":    msg.Content,
					"created_at": msg.CreatedAt,
					"sender":     userSummaryPtr(user),
				})
				s.trySendJSON(c, map[string]interface{}{
					"type":    "message_sent",
					"payload": msg,
				})

			case "read":
				// Mark a thread read without opening it over HTTP.
				partnerFloat, pok := incoming["partner_id"].(float64)
				if !pok {
					return
				}
				partnerID := uint(partnerFloat)
				marked, merr := s.messageRepo.MarkThreadRead(ctx, userID, partnerID)
				if merr != nil {
					log.Printf("mark thread read error: %v", merr)
					return
				}
				if marked > 0 {
					s.publishUserEvent(partnerID, EventMessageRead, map[string]interface{}{
						"reader_id":   userID,
						"marked_read": marked,
					})
				}

			case "presence":
				// Who of the people I follow is online right now?
				following, ferr := s.followRepo.Following(ctx, userID, 500, 0)
				if ferr != nil {
					return
				}
				online := make([]uint, 0)
				for _, f := range following {
					if s.hub.IsOnline(f.ID) {
						online = append(online, f.ID)
					}
				}
				s.trySendJSON(c, map[string]interface{}{
					"type":    "presence_snapshot",
					"payload": map[string]interface{}{"online_user_ids": online},
				})
			}
		}

		// Send welcome message
		s.trySendJSON(client, map[string]interface{}{
			"type":    "connected",
			"payload": map[string]interface{}{"user_id": userID, "username": username},
		})

		// Start write pump in a goroutine
		go client.WritePump()

		// Read pump runs in the main handler goroutine (blocking)
		client.ReadPump()
	})
}

func (s *Server) trySendJSON(c *notifications.Client, v map[string]interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("marshal ws payload error: %v", err)
		return
	}
	c.TrySend(data)
}
