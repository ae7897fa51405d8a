// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"glowup/internal/cache"
	"glowup/internal/config"
	"glowup/internal/database"
	"glowup/internal/featureflags"
	"glowup/internal/middleware"
	"glowup/internal/models"
	"glowup/internal/notifications"
	"glowup/internal/repository"
	"glowup/internal/service"
	"glowup/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	jwtIssuer   = "glowup-api"
	jwtAudience = "glowup-client"
)

// storyReapInterval is how often expired stories are removed.
const storyReapInterval = 10 * time.Minute

// consumedTicketEntry caches a WebSocket ticket already pulled from Redis.
// Fiber runs middleware more than once during a WS upgrade, so the ticket
// must survive in-process briefly after its atomic GETDEL.
type consumedTicketEntry struct {
	userID    uint
	consumeAt time.Time
}

// wireableHub is implemented by every WebSocket hub that can be wired to
// Redis pub/sub and gracefully shut down.
type wireableHub interface {
	Name() string
	StartWiring(ctx context.Context, n *notifications.Notifier) error
	Shutdown(ctx context.Context) error
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	consumedTickets   map[string]consumedTicketEntry
	consumedTicketsMu sync.Mutex

	userRepo        repository.UserRepository
	postRepo        repository.PostRepository
	followRepo      repository.FollowRepository
	messageRepo     repository.MessageRepository
	storyRepo       repository.StoryRepository
	routineRepo     repository.RoutineRepository
	galleryRepo     repository.GalleryRepository
	achievementRepo repository.AchievementRepository
	productRepo     repository.ProductRepository

	notifier     *notifications.Notifier
	hub          *notifications.Hub
	hubs         []wireableHub
	featureFlags *featureflags.Manager
	store        storage.ObjectStore

	userService        *service.UserService
	postService        *service.PostService
	messageService     *service.MessageService
	storyService       *service.StoryService
	routineService     *service.RoutineService
	galleryService     *service.GalleryService
	achievementService *service.AchievementService
	productService     *service.ProductService
	mediaService       *service.MediaService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var store storage.ObjectStore
	s3Store, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		// Uploads degrade to 503 instead of taking the whole API down.
		log.Printf("object storage unavailable, uploads disabled: %v", err)
	} else {
		store = s3Store
	}

	return newServer(cfg, db, redisClient, store), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis/storage.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store storage.ObjectStore) (*Server, error) {
	return newServer(cfg, db, redisClient, store), nil
}

func newServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store storage.ObjectStore) *Server {
	prom := middleware.InitMetrics("glowup-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		consumedTickets: make(map[string]consumedTicketEntry),
		userRepo:        repository.NewUserRepository(db),
		postRepo:        repository.NewPostRepository(db),
		followRepo:      repository.NewFollowRepository(db),
		messageRepo:     repository.NewMessageRepository(db),
		storyRepo:       repository.NewStoryRepository(db),
		routineRepo:     repository.NewRoutineRepository(db),
		galleryRepo:     repository.NewGalleryRepository(db),
		achievementRepo: repository.NewAchievementRepository(db),
		productRepo:     repository.NewProductRepository(db),
		featureFlags:    featureflags.NewManager(cfg.FeatureFlags),
		store:           store,
	}

	server.userService = service.NewUserService(server.userRepo)
	server.postService = service.NewPostService(server.postRepo, server.isAdminByUserID)
	server.messageService = service.NewMessageService(server.messageRepo, server.userRepo)
	server.storyService = service.NewStoryService(server.storyRepo)
	server.routineService = service.NewRoutineService(server.routineRepo, server.userService)
	server.galleryService = service.NewGalleryService(server.galleryRepo)
	server.achievementService = service.NewAchievementService(server.achievementRepo, server.productRepo)
	server.productService = service.NewProductService(server.productRepo)
	if store != nil {
		server.mediaService = service.NewMediaService(store)
	}

	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
		server.hub = notifications.NewHub(redisClient)
		server.hubs = []wireableHub{server.hub}
		server.hub.SetPresenceCallbacks(
			func(userID uint) { server.notifyPresenceChange(userID, true) },
			func(userID uint) { server.notifyPresenceChange(userID, false) },
		)
	}

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Glowup Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.Refresh)
	auth.Post("/logout", s.Logout)

	// Public browse routes
	publicPosts := api.Group("/posts")
	publicPosts.Get("/", s.GetPosts)
	publicPosts.Get("/:id", s.GetPost)

	publicProducts := api.Group("/products")
	publicProducts.Get("/", s.GetProducts)
	publicProducts.Get("/:id", s.GetProduct)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Post("/me/activity", s.RecordActivity)
	users.Get("/", s.GetAllUsers)
	users.Get("/search", s.SearchUsers)

	// WebSocket ticket issuance
	api.Post("/ws/ticket", s.AuthRequired(), s.IssueWSTicket)

	// Define specific /:id/:resource routes BEFORE generic /:id route
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Post("/:id/follow", s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)
	users.Post("/:id/promote-admin", s.AdminRequired(), s.PromoteToAdmin)
	users.Post("/:id/demote-admin", s.AdminRequired(), s.DemoteFromAdmin)
	users.Get("/:id", s.GetUserProfile)

	// Post routes
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Get("/feed", s.GetFeed)
	posts.Post("/:id/like", s.LikePost)
	posts.Delete("/:id/like", s.UnlikePost)
	posts.Delete("/:id", s.DeletePost)

	// Story routes
	stories := protected.Group("/stories")
	stories.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_story"), s.CreateStory)
	stories.Get("/", s.GetStoryFeed)
	stories.Get("/me", s.GetMyStories)
	stories.Post("/:id/view", s.ViewStory)
	stories.Get("/:id/viewers", s.GetStoryViewers)
	stories.Delete("/:id", s.DeleteStory)

	// Messaging routes
	messages := protected.Group("/messages")
	messages.Get("/conversations", s.GetConversations)
	messages.Get("/unread-count", s.GetUnreadCount)
	messages.Post("/", middleware.RateLimit(
		s.redis, 15, time.Minute, "send_message"), s.SendMessage)
	messages.Get("/:userId", s.OpenThread)

	// Routine routes
	routines := protected.Group("/routines")
	routines.Post("/", s.CreateRoutine)
	routines.Get("/", s.GetRoutines)
	routines.Post("/:id/toggle", s.ToggleRoutine)
	routines.Delete("/:id", s.DeleteRoutine)

	// Gallery routes
	albums := protected.Group("/albums")
	albums.Post("/", s.CreateAlbum)
	albums.Get("/", s.GetMyAlbums)
	albums.Get("/user/:id", s.GetUserAlbums)
	albums.Post("/:id/items", s.AddGalleryItem)
	albums.Put("/:id", s.RenameAlbum)
	albums.Delete("/:id", s.DeleteAlbum)
	albums.Get("/:id", s.GetAlbum)
	protected.Delete("/gallery/:id", s.DeleteGalleryItem)

	// Achievement routes
	achievements := protected.Group("/achievements")
	achievements.Get("/", s.GetAchievements)
	achievements.Get("/:type/survey", s.GetSurveyQuestions)
	achievements.Post("/:type/survey", s.SubmitSurvey)
	achievements.Get("/:type/guide", s.GetGuide)
	achievements.Post("/:type/progress", s.AddAchievementProgress)
	achievements.Get("/:type", s.GetAchievement)

	// Upload routes
	uploads := protected.Group("/uploads")
	uploads.Post("/", middleware.RateLimit(
		s.redis, 20, 5*time.Minute, "upload"), s.UploadMedia)
	uploads.Post("/avatar", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "upload_avatar"), s.UploadAvatar)
	uploads.Post("/presign", s.PresignUpload)

	// Websocket endpoint - protected by AuthRequired (ticket flow)
	ws := api.Group("/ws", s.AuthRequired())
	ws.Get("/", s.WebsocketHandler())

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/feature-flags", s.GetFeatureFlags)
	adminProducts := admin.Group("/products")
	adminProducts.Post("/", s.CreateProduct)
	adminProducts.Put("/:id", s.UpdateProduct)
	adminProducts.Delete("/:id", s.DeleteProduct)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is considered required for full readiness in this app
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Glowup",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		admin, err := s.isAdmin(c, userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}

		return c.Next()
	}
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		isWSPath := strings.HasPrefix(path, "/api/ws")

		// 1. Try WebSocket ticket first (short-lived, single-use)
		ticket := c.Query("ticket")
		if ticket != "" && s.redis != nil {
			key := fmt.Sprintf("ws_ticket:%s", ticket)
			userIDStr, err := s.redis.GetDel(c.Context(), key).Result()
			if err == nil {
				userID, parseErr := strconv.ParseUint(userIDStr, 10, 32)
				if parseErr == nil {
					// Cache in-process: the upgrade re-runs middleware after
					// Redis has already given the ticket away.
					s.consumedTicketsMu.Lock()
					if s.consumedTickets == nil {
						s.consumedTickets = make(map[string]consumedTicketEntry)
					}
					s.consumedTickets[ticket] = consumedTicketEntry{
						userID:    uint(userID),
						consumeAt: time.Now(),
					}
					s.consumedTicketsMu.Unlock()

					return s.grantTicketAuth(c, uint(userID), ticket, isWSPath)
				}
			}

			// Redis miss: a prior middleware pass may have consumed it.
			s.consumedTicketsMu.Lock()
			entry, cached := s.consumedTickets[ticket]
			if cached && time.Since(entry.consumeAt) > wsTicketTTL {
				delete(s.consumedTickets, ticket)
				cached = false
			}
			s.consumedTicketsMu.Unlock()
			if cached {
				return s.grantTicketAuth(c, entry.userID, ticket, isWSPath)
			}

			// If ticket was provided but invalid/expired, we fail if it's a WS path
			if isWSPath {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Invalid or expired WebSocket ticket"))
			}
		}

		// 2. Fall back to JWT (Bearer token or query param)
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// Reject token in query param for WS routes (must use ticket)
		if tokenString == "" && !isWSPath {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Parse and validate token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		// Validate issuer and audience
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != jwtIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != jwtAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		// Extract user ID from subject claim
		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			if s.redis != nil {
				isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
				if err == nil && isBlacklisted > 0 {
					return models.RespondWithError(c, fiber.StatusUnauthorized,
						models.NewUnauthorizedError("Token has been revoked"))
				}
			}
		}

		c.Locals("userID", uint(userID))
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// grantTicketAuth finishes ticket-based authentication. WS paths keep the
// ticket in locals so the connection handler can purge the in-process cache
// once the socket is established.
func (s *Server) grantTicketAuth(c *fiber.Ctx, userID uint, ticket string, isWSPath bool) error {
	c.Locals("userID", userID)
	if isWSPath {
		c.Locals("wsTicket", ticket)
	}
	ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
	c.SetUserContext(ctx)
	return c.Next()
}

// consumeWSTicket drops a ticket from the in-process cache. ticket comes
// from conn.Locals and may be nil.
func (s *Server) consumeWSTicket(_ context.Context, ticket any) {
	t, ok := ticket.(string)
	if !ok || t == "" {
		return
	}
	s.consumedTicketsMu.Lock()
	delete(s.consumedTickets, t)
	// Sweep anything else that has outlived the ticket TTL.
	for k, e := range s.consumedTickets {
		if time.Since(e.consumeAt) > wsTicketTTL {
			delete(s.consumedTickets, k)
		}
	}
	s.consumedTicketsMu.Unlock()
}

// optionalUserID attempts to extract userID from Authorization header but does not enforce it.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	tokenString := parts[1]
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName: "Glowup API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	// Wire all hubs to Redis subscriber if available
	if s.notifier != nil {
		for _, h := range s.hubs {
			h := h
			go func() {
				if err := h.StartWiring(s.shutdownCtx, s.notifier); err != nil {
					log.Printf("failed to start %s wiring: %v", h.Name(), err)
				}
			}()
		}
	}

	// Expired stories are reaped in the background for the server's lifetime.
	s.storyService.StartReaper(s.shutdownCtx, storyReapInterval)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop all wiring goroutines
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	// Shutdown the HTTP/WS server
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close WebSocket connections gracefully
	for _, h := range s.hubs {
		if err := h.Shutdown(ctx); err != nil {
			log.Printf("error shutting down %s: %v", h.Name(), err)
		}
	}

	// Close database connection
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
