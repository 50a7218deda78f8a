// feed/join.go - joining registered events to plan definitions
package feed

import "github.com/fabriciolopss/TI1-webserver/models"

// Item is one registered training joined with its plan, day and the
// author's profile snapshot. Items are ephemeral: built per request,
// never persisted.
type Item struct {
	User        *models.User
	Plan        *models.TrainingPlan
	Day         *models.TrainingDay
	Event       models.TrainingEvent
	EffectiveXP int
}

// Join flattens every user's registered trainings into feed items.
// Events whose plan or day reference no longer resolves are skipped:
// users delete plans after logging workouts against them, so dangling
// references are steady-state data, not errors. The result keeps
// user-then-event order; the query engine relies on that as the sort
// tie-break.
func Join(users []models.User) []Item {
	var items []Item
	for i := range users {
		u := &users[i]
		for _, ev := range u.UserData.RegisteredTrainings {
			plan := u.UserData.PlanByID(ev.TrainingID)
			if plan == nil {
				continue
			}
			day := plan.DayByID(ev.DayIndex)
			if day == nil {
				continue
			}
			items = append(items, Item{
				User:        u,
				Plan:        plan,
				Day:         day,
				Event:       ev,
				EffectiveXP: u.UserData.Profile.EffectiveXP(),
			})
		}
	}
	return items
}
