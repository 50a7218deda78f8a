package feed

import (
	"time"

	"github.com/fabriciolopss/TI1-webserver/models"
)

func testPlan(id int64, name, category string, days ...models.TrainingDay) models.TrainingPlan {
	return models.TrainingPlan{
		ID:       models.FlexInt(id),
		Name:     name,
		Category: category,
		Type:     "Ficha iniciante",
		Days:     days,
	}
}

func testDay(id int64, name string) models.TrainingDay {
	return models.TrainingDay{ID: models.FlexInt(id), XP: 100, Name: name}
}

func testEvent(trainingID, dayID int64, date time.Time, xpGain int) models.TrainingEvent {
	return models.TrainingEvent{
		TrainingID: models.FlexInt(trainingID),
		DayIndex:   models.FlexInt(dayID),
		Date:       date,
		XPGain:     xpGain,
	}
}

func testUser(id uint, email string, xp int, plans []models.TrainingPlan, events ...models.TrainingEvent) models.User {
	return models.User{
		ID:    id,
		Email: email,
		UserData: models.UserData{
			EditedTrainings:     plans,
			RegisteredTrainings: events,
			Profile:             models.Profile{XP: xp},
		},
	}
}
