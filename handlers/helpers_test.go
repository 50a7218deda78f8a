package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/fabriciolopss/TI1-webserver/config"
	"github.com/fabriciolopss/TI1-webserver/middleware"
	"github.com/fabriciolopss/TI1-webserver/models"
	"github.com/fabriciolopss/TI1-webserver/store"
)

const testSecret = "test-secret-key-at-least-32-chars-long!!"

type fakeStore struct {
	users   []models.User
	listErr error
}

func (f *fakeStore) GetUser(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) GetUserByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListUsers() ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeStore) CreateUser(user *models.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStore) SaveUser(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return store.ErrNotFound
}

// newTestApp wires a Fiber app with the production routes on top of
// the fake store.
func newTestApp(t *testing.T, fs *fakeStore) *fiber.App {
	t.Helper()

	Init(&config.Config{JWTSecret: testSecret}, fs)

	app := fiber.New()
	auth := middleware.Auth(testSecret)

	app.Post("/register", Register)
	app.Post("/login", Login)
	app.Post("/test-auth", TestAuth)
	app.Get("/users/:id/data", auth, GetUserData)
	app.Patch("/users/:id/data", auth, UpdateUserData)
	app.Post("/users/:id/notifications", auth, AddNotification)
	app.Delete("/users/:id/notifications/:index", auth, DeleteNotification)
	app.Post("/users/:id/trainings", auth, RegisterTraining)
	app.Get("/ranking", GetRanking)
	app.Get("/users", ListUsers)
	app.Get("/social-feed", GetSocialFeed)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func tokenFor(t *testing.T, id uint, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(id, email, testSecret)
	require.NoError(t, err)
	return token
}
