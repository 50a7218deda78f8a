package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabriciolopss/TI1-webserver/models"
)

func TestRegister_CreatesSeededAccount(t *testing.T) {
	fs := &fakeStore{}
	app := newTestApp(t, fs)

	resp, body := doJSON(t, app, "POST", "/register", "", map[string]string{
		"email":    "maria@b.com",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["token"])
	require.EqualValues(t, 1, body["userId"])

	user, err := fs.GetUser(1)
	require.NoError(t, err)
	require.Len(t, user.UserData.EditedTrainings, 2)
	require.Empty(t, user.UserData.RegisteredTrainings)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("segredo123")))
}

func TestRegister_Validation(t *testing.T) {
	fs := &fakeStore{}
	app := newTestApp(t, fs)

	resp, _ := doJSON(t, app, "POST", "/register", "", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/register", "", map[string]string{"password": "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	fs := &fakeStore{}
	app := newTestApp(t, fs)

	resp, _ := doJSON(t, app, "POST", "/register", "", map[string]string{"email": "a@b.com", "password": "abc123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/register", "", map[string]string{"email": "a@b.com", "password": "abc123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Email already in use", body["error"])
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	fs := &fakeStore{users: []models.User{{ID: 1, Email: "a@b.com", Password: string(hash)}}}
	app := newTestApp(t, fs)

	resp, body := doJSON(t, app, "POST", "/login", "", map[string]string{"email": "a@b.com", "password": "segredo123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])

	resp, _ = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "a@b.com", "password": "errada"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "nobody@b.com", "password": "x"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTestAuth(t *testing.T) {
	fs := &fakeStore{}
	app := newTestApp(t, fs)

	token := tokenFor(t, 3, "c@d.com")
	resp, body := doJSON(t, app, "POST", "/test-auth", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["valid"])

	resp, body = doJSON(t, app, "POST", "/test-auth", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, false, body["valid"])

	resp, body = doJSON(t, app, "POST", "/test-auth", "not-a-token", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, false, body["valid"])
}

func TestProtectedRoutes_RejectOtherUsers(t *testing.T) {
	fs := &fakeStore{users: []models.User{{ID: 1, Email: "a@b.com"}, {ID: 2, Email: "b@b.com"}}}
	app := newTestApp(t, fs)

	token := tokenFor(t, 1, "a@b.com")

	resp, _ := doJSON(t, app, "GET", "/users/2/data", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/users/1/data", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
