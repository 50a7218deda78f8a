package services

import (
	"log"
	"time"

	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

// CleanupService trims old read notifications from user documents in
// the background. It never touches trainings or profiles, so the feed
// pipeline is unaffected by it.
type CleanupService struct {
	store     store.UserStore
	retention time.Duration
	interval  time.Duration
	stop      chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes the singleton cleanup service.
func InitCleanupService(s store.UserStore, retentionDays int) {
	cleanupService = &CleanupService{
		store:     s,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  time.Hour,
		stop:      make(chan struct{}),
	}
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

// Start launches the background cleanup loop.
func (s *CleanupService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := s.CleanupNotifications(); err != nil {
					log.Printf("Notification cleanup failed: %v", err)
				} else if n > 0 {
					log.Printf("🧹 Removed %d expired notifications", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the cleanup loop.
func (s *CleanupService) Stop() {
	close(s.stop)
}

// CleanupNotifications removes read notifications older than the
// retention window. Returns the number of notifications removed.
func (s *CleanupService) CleanupNotifications() (int, error) {
	users, err := s.store.ListUsers()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.retention)
	removed := 0

	for i := range users {
		user := &users[i]
		kept := keepNotifications(user.UserData.Notifications, cutoff)
		if len(kept) == len(user.UserData.Notifications) {
			continue
		}
		removed += len(user.UserData.Notifications) - len(kept)
		user.UserData.Notifications = kept
		if err := s.store.SaveUser(user); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

func keepNotifications(notifications []models.Notification, cutoff time.Time) []models.Notification {
	kept := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.Read && n.DateTime.Before(cutoff) {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}
