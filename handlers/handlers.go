// handlers/handlers.go - shared handler state
package handlers

import (
	"github.com/fabriciolopss/TI1-webserver/config"
	"github.com/fabriciolopss/TI1-webserver/services"
	"github.com/fabriciolopss/TI1-webserver/store"
)

var (
	cfg         *config.Config
	userStore   store.UserStore
	feedService *services.FeedService
)

// Init wires the handlers to their collaborators. Called once from
// main before routes are registered.
func Init(c *config.Config, s store.UserStore) {
	cfg = c
	userStore = s
	feedService = services.NewFeedService(s)
}
