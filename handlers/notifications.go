// handlers/notifications.go
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

// AddNotification prepends a notification to the caller's inbox,
// stamping id and dateTime server-side.
func AddNotification(c *fiber.Ctx) error {
	userID, ok := requireSelf(c)
	if !ok {
		return nil
	}

	var notification models.Notification
	if err := c.BodyParser(&notification); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	notification.ID = uuid.NewString()
	notification.DateTime = time.Now().UTC()

	user, err := userStore.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load user"})
	}

	user.UserData.Notifications = append([]models.Notification{notification}, user.UserData.Notifications...)

	if err := userStore.SaveUser(user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save notification"})
	}

	return c.JSON(notification)
}

// DeleteNotification removes the notification at the given index.
func DeleteNotification(c *fiber.Ctx) error {
	userID, ok := requireSelf(c)
	if !ok {
		return nil
	}

	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid notification index"})
	}

	user, err := userStore.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load user"})
	}

	if index >= len(user.UserData.Notifications) {
		return c.Status(404).JSON(fiber.Map{"error": "Notification not found"})
	}

	user.UserData.Notifications = append(
		user.UserData.Notifications[:index],
		user.UserData.Notifications[index+1:]...,
	)

	if err := userStore.SaveUser(user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save user"})
	}

	return c.JSON(fiber.Map{"message": "Notification removed successfully"})
}
