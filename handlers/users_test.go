package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabriciolopss/TI1-webserver/models"
)

func twoUserFixture() *fakeStore {
	plan := models.TrainingPlan{
		ID: 1, Name: "Treino", Category: "Pernas",
		Days: []models.TrainingDay{{ID: 1, Name: "Dia 1"}},
	}
	return &fakeStore{users: []models.User{
		{ID: 1, Email: "a@b.com", UserData: models.UserData{
			EditedTrainings: []models.TrainingPlan{plan},
			RegisteredTrainings: []models.TrainingEvent{
				{TrainingID: 1, DayIndex: 1, Date: time.Now(), XPGain: 10},
			},
			Profile: models.Profile{XP: 120, Personal: models.Personal{Name: "Ana"}},
		}},
		{ID: 2, Email: "b@b.com", UserData: models.UserData{
			Profile: models.Profile{Metadata: models.ProfileMetadata{XP: 450}},
		}},
	}}
}

func TestGetUserData_IncludesFleetAverage(t *testing.T) {
	app := newTestApp(t, twoUserFixture())

	resp, body := doJSON(t, app, "GET", "/users/1/data", tokenFor(t, 1, "a@b.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// One training across two users.
	require.EqualValues(t, 0.5, body["media_treinos_por_usuario"])
	require.NotNil(t, body["edited_trainings"])
}

func TestUpdateUserData_ShallowMerge(t *testing.T) {
	fs := twoUserFixture()
	app := newTestApp(t, fs)
	token := tokenFor(t, 1, "a@b.com")

	resp, _ := doJSON(t, app, "PATCH", "/users/1/data", token, map[string]any{
		"profile": map[string]any{"xp": 300, "pessoal": map[string]any{"nome": "Ana Paula"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := fs.GetUser(1)
	require.NoError(t, err)
	require.Equal(t, 300, user.UserData.Profile.XP)
	require.Equal(t, "Ana Paula", user.UserData.Profile.Personal.Name)
	// Untouched sections survive the merge.
	require.Len(t, user.UserData.EditedTrainings, 1)
	require.Len(t, user.UserData.RegisteredTrainings, 1)
}

func TestRegisterTraining_StampsDate(t *testing.T) {
	fs := twoUserFixture()
	app := newTestApp(t, fs)

	before := time.Now().UTC()
	resp, _ := doJSON(t, app, "POST", "/users/1/trainings", tokenFor(t, 1, "a@b.com"), map[string]any{
		"training_id": "1",
		"day_index":   1,
		"xpGain":      100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := fs.GetUser(1)
	require.NoError(t, err)
	require.Len(t, user.UserData.RegisteredTrainings, 2)

	logged := user.UserData.RegisteredTrainings[1]
	require.Equal(t, models.FlexInt(1), logged.TrainingID)
	require.Equal(t, 100, logged.XPGain)
	require.False(t, logged.Date.Before(before))
}

func TestNotifications_AddAndDelete(t *testing.T) {
	fs := twoUserFixture()
	app := newTestApp(t, fs)
	token := tokenFor(t, 1, "a@b.com")

	resp, body := doJSON(t, app, "POST", "/users/1/notifications", token, map[string]any{
		"title":   "Novo treino",
		"message": "Seu plano foi atualizado",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["id"])
	require.NotEmpty(t, body["dateTime"])

	resp, _ = doJSON(t, app, "POST", "/users/1/notifications", token, map[string]any{"title": "Segunda"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := fs.GetUser(1)
	require.NoError(t, err)
	// Newest first.
	require.Equal(t, "Segunda", user.UserData.Notifications[0].Title)
	require.Equal(t, "Novo treino", user.UserData.Notifications[1].Title)

	resp, _ = doJSON(t, app, "DELETE", "/users/1/notifications/0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, _ = fs.GetUser(1)
	require.Len(t, user.UserData.Notifications, 1)
	require.Equal(t, "Novo treino", user.UserData.Notifications[0].Title)

	resp, _ = doJSON(t, app, "DELETE", "/users/1/notifications/5", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetRanking_SortsByEffectiveXP(t *testing.T) {
	app := newTestApp(t, twoUserFixture())

	req := httptest.NewRequest("GET", "/ranking", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ranking []RankingEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ranking))
	require.Len(t, ranking, 2)

	// User 2's metadata XP (450) outranks user 1's top-level 120.
	require.Equal(t, uint(2), ranking[0].ID)
	require.Equal(t, 450, ranking[0].XP)
	require.Equal(t, 5, ranking[0].Level)
	require.Equal(t, uint(1), ranking[1].ID)
	require.Equal(t, "Ana", ranking[1].Name)
}

func TestListUsers_SocialProjection(t *testing.T) {
	app := newTestApp(t, twoUserFixture())

	req := httptest.NewRequest("GET", "/users", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var social []SocialUser
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&social))
	require.Len(t, social, 2)
	require.Equal(t, "a@b.com", social[0].Email)
	require.Len(t, social[0].UserData.EditedTrainings, 1)
}
