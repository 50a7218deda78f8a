// models/training.go
package models

import "time"

// TrainingPlan is a user-customized workout program ("edited
// training"). Its id is a document-level identifier, not the slice
// position: users delete and reorder plans freely.
type TrainingPlan struct {
	ID       FlexInt       `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Type     string        `json:"type"`
	Days     []TrainingDay `json:"days"`
}

// TrainingDay is one day of a plan with its exercise list and the XP
// awarded for completing it.
type TrainingDay struct {
	ID        FlexInt       `json:"id"`
	XP        int           `json:"xp"`
	Name      string        `json:"name"`
	Exercises []ExerciseSet `json:"day"`
}

type ExerciseSet struct {
	Exercise    string `json:"exercise"`
	Series      int    `json:"series"`
	Repetitions string `json:"repetitions"`
}

// TrainingEvent records one completed workout session ("registered
// training"). It references a plan and a day by id and is never
// mutated after creation.
type TrainingEvent struct {
	TrainingID FlexInt   `json:"training_id"`
	DayIndex   FlexInt   `json:"day_index"`
	Date       time.Time `json:"date"`
	Duration   *Duration `json:"duration,omitempty"`
	XPGain     int       `json:"xpGain"`
}

// Duration is the session length as logged by the client. Events
// without one default to 30 minutes.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// EffectiveDuration applies the missing-duration default.
func (e TrainingEvent) EffectiveDuration() Duration {
	if e.Duration == nil {
		return Duration{Hours: 0, Minutes: 30}
	}
	return *e.Duration
}

// PlanByID finds the edited training whose id equals the given
// reference. Returns nil when the plan no longer exists.
func (d UserData) PlanByID(id FlexInt) *TrainingPlan {
	for i := range d.EditedTrainings {
		if d.EditedTrainings[i].ID == id {
			return &d.EditedTrainings[i]
		}
	}
	return nil
}

// DayByID finds a day by its id. Event day references are treated as
// day identifiers, not slice offsets.
func (p *TrainingPlan) DayByID(id FlexInt) *TrainingDay {
	for i := range p.Days {
		if p.Days[i].ID == id {
			return &p.Days[i]
		}
	}
	return nil
}
