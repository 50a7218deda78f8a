// handlers/feed.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fabriciolopss/TI1-webserver/feed"
)

// GetSocialFeed serves one page of the social feed.
// GET /social-feed?page=0&limit=10&sortBy=recent&category=all
//
// Invalid sortBy or category values are not errors: unknown sort modes
// fall back to recent, unknown categories just match nothing unless
// they are "all". Out-of-range pages return an empty posts array with
// accurate totals.
func GetSocialFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", feed.DefaultLimit)
	sortBy := c.Query("sortBy", string(feed.SortRecent))
	category := c.Query("category", feed.CategoryAll)

	result, err := feedService.BuildFeed(category, sortBy, page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build feed"})
	}

	return c.JSON(result)
}
