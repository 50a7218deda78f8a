// handlers/auth.go
package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabriciolopss/TI1-webserver/middleware"
	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account seeded with the default training
// plans and an empty profile.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password required"})
	}

	if _, err := userStore.GetUserByEmail(req.Email); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Email already in use"})
	} else if !errors.Is(err, store.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		UserData: models.UserData{
			DefaultTrainings:    models.DefaultTrainings{IDs: []models.FlexInt{}},
			EditedTrainings:     models.DefaultTrainingPlans(),
			RegisteredTrainings: []models.TrainingEvent{},
			Notifications:       []models.Notification{},
			Profile: models.Profile{
				Metadata: models.ProfileMetadata{
					Terms:        false,
					RegisteredAt: time.Now().UTC().Format(time.RFC3339),
					XP:           0,
					Achievements: []models.Achievement{},
				},
			},
		},
	}

	if err := userStore.CreateUser(&user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, cfg.JWTSecret)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Account created successfully",
		"userId":  user.ID,
		"token":   token,
	})
}

// Login authenticates by email and password.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password required"})
	}

	user, err := userStore.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log in"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, cfg.JWTSecret)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// TestAuth reports whether the supplied token is valid without
// requiring the auth middleware, so clients can probe stored tokens.
func TestAuth(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token == c.Get("Authorization") {
		token = ""
	}

	if token == "" {
		return c.Status(401).JSON(fiber.Map{
			"valid": false,
			"error": "Access token required",
		})
	}

	claims, err := middleware.ParseToken(token, cfg.JWTSecret)
	if err != nil {
		return c.Status(403).JSON(fiber.Map{
			"valid": false,
			"error": "Invalid or expired token",
		})
	}

	return c.JSON(fiber.Map{
		"valid": true,
		"user": fiber.Map{
			"userId": claims.UserID,
			"email":  claims.Email,
		},
		"message": "Token is valid",
	})
}
