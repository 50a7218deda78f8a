// store/store.go - user document store contract
package store

import (
	"errors"

	"github.com/fabriciolopss/TI1-webserver/models"
)

// ErrNotFound is returned when a user id or email resolves to nothing.
var ErrNotFound = errors.New("store: user not found")

// UserStore is the capability contract the handlers and the feed
// pipeline depend on. ListUsers must return an internally consistent
// snapshot: one call, one moment in time, no torn records.
type UserStore interface {
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
}
