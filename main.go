package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fabriciolopss/TI1-webserver/config"
	"github.com/fabriciolopss/TI1-webserver/database"
	"github.com/fabriciolopss/TI1-webserver/handlers"
	"github.com/fabriciolopss/TI1-webserver/middleware"
	"github.com/fabriciolopss/TI1-webserver/services"
	"github.com/fabriciolopss/TI1-webserver/store"
)

func main() {
	// Load configuration once; the JWT secret and every other knob are
	// injected from here, never read again at runtime.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// Initialize database
	database.InitDB(cfg)
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userStore := store.NewGormStore(database.GetDB())
	handlers.Init(cfg, userStore)

	// Background notification retention
	if cfg.NotificationCleanup {
		services.InitCleanupService(userStore, cfg.NotificationRetentionDays)
		services.GetCleanupService().Start()
		defer services.GetCleanupService().Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler(cfg),
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
	}))

	generalLimiter := middleware.NewRateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitWindowMS/1000)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitMax, cfg.AuthRateLimitWindow/1000)
	app.Use(middleware.RateLimit(generalLimiter))

	auth := middleware.Auth(cfg.JWTSecret)

	// Auth routes with stricter rate limiting
	app.Post("/register", middleware.RateLimit(authLimiter), handlers.Register)
	app.Post("/login", middleware.RateLimit(authLimiter), handlers.Login)
	app.Post("/test-auth", handlers.TestAuth)

	// Per-user document routes (owner only)
	app.Get("/users/:id/data", auth, handlers.GetUserData)
	app.Patch("/users/:id/data", auth, handlers.UpdateUserData)
	app.Post("/users/:id/notifications", auth, handlers.AddNotification)
	app.Delete("/users/:id/notifications/:index", auth, handlers.DeleteNotification)
	app.Post("/users/:id/trainings", auth, handlers.RegisterTraining)

	// Public social routes
	app.Get("/ranking", handlers.GetRanking)
	app.Get("/users", handlers.ListUsers)
	app.Get("/social-feed", handlers.GetSocialFeed)

	// Observability
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	log.Printf("🚀 HTTP server starting on port %s", cfg.Port)
	log.Printf("📊 Environment: %s", cfg.AppEnv)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.AppEnv == "production" && code == 500 {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
