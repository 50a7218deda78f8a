// handlers/trainings.go
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

// RegisterTraining appends a completed workout session to the caller's
// registered trainings. The event date is stamped server-side; the
// plan and day references are stored as sent. A reference that no
// longer resolves simply never shows up in the feed.
func RegisterTraining(c *fiber.Ctx) error {
	userID, ok := requireSelf(c)
	if !ok {
		return nil
	}

	var event models.TrainingEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	event.Date = time.Now().UTC()

	user, err := userStore.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load user"})
	}

	user.UserData.RegisteredTrainings = append(user.UserData.RegisteredTrainings, event)

	if err := userStore.SaveUser(user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save training"})
	}

	return c.JSON(event)
}
