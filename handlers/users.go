// handlers/users.go
package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/fabriciolopss/TI1-webserver/feed"
	"github.com/fabriciolopss/TI1-webserver/middleware"
	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

// requireSelf resolves the :id param and checks it against the
// authenticated user. Users can only touch their own document. When it
// returns false the error response has already been written.
func requireSelf(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
		return 0, false
	}

	authID, err := middleware.GetUserID(c)
	if err != nil {
		_ = c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		return 0, false
	}

	if authID != uint(id) {
		_ = c.Status(403).JSON(fiber.Map{"error": "Access denied"})
		return 0, false
	}
	return uint(id), true
}

// GetUserData returns the caller's document plus the fleet-wide
// average of registered trainings per user.
func GetUserData(c *fiber.Ctx) error {
	userID, ok := requireSelf(c)
	if !ok {
		return nil
	}

	user, err := userStore.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load user"})
	}

	users, err := userStore.ListUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users"})
	}

	totalTrainings := 0
	for i := range users {
		totalTrainings += len(users[i].UserData.RegisteredTrainings)
	}
	average := 0.0
	if len(users) > 0 {
		average = math.Round(float64(totalTrainings)/float64(len(users))*100) / 100
	}

	return c.JSON(struct {
		models.UserData
		AverageTrainingsPerUser float64 `json:"media_treinos_por_usuario"`
	}{
		UserData:                user.UserData,
		AverageTrainingsPerUser: average,
	})
}

// UpdateUserData shallow-merges the supplied top-level sections into
// the caller's document. Unknown keys are ignored.
func UpdateUserData(c *fiber.Ctx) error {
	userID, ok := requireSelf(c)
	if !ok {
		return nil
	}

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := userStore.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load user"})
	}

	if err := mergeUserData(&user.UserData, patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := userStore.SaveUser(user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save user"})
	}

	return c.JSON(user.UserData)
}

func mergeUserData(data *models.UserData, patch map[string]json.RawMessage) error {
	for key, raw := range patch {
		var err error
		switch key {
		case "default_trainings":
			err = json.Unmarshal(raw, &data.DefaultTrainings)
		case "edited_trainings":
			err = json.Unmarshal(raw, &data.EditedTrainings)
		case "registered_trainings":
			err = json.Unmarshal(raw, &data.RegisteredTrainings)
		case "notifications":
			err = json.Unmarshal(raw, &data.Notifications)
		case "profile":
			err = json.Unmarshal(raw, &data.Profile)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RankingEntry is one row of the XP ranking.
type RankingEntry struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
}

// GetRanking lists all users ordered by effective XP, highest first.
func GetRanking(c *fiber.Ctx) error {
	users, err := userStore.ListUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load ranking"})
	}

	ranking := make([]RankingEntry, 0, len(users))
	for i := range users {
		u := &users[i]
		xp := u.UserData.Profile.EffectiveXP()
		ranking = append(ranking, RankingEntry{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.UserData.Profile.Personal.Name,
			XP:    xp,
			Level: feed.LevelForXP(xp),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].XP > ranking[j].XP
	})

	return c.JSON(ranking)
}

// SocialUser is the reduced projection exposed to the social screens.
type SocialUser struct {
	ID       uint            `json:"id"`
	Email    string          `json:"email"`
	UserData models.UserData `json:"userData"`
}

// ListUsers returns every user in the social projection.
func ListUsers(c *fiber.Ctx) error {
	users, err := userStore.ListUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users"})
	}

	social := make([]SocialUser, 0, len(users))
	for i := range users {
		social = append(social, SocialUser{
			ID:       users[i].ID,
			Email:    users[i].Email,
			UserData: users[i].UserData,
		})
	}

	return c.JSON(social)
}
