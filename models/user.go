// models/user.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is the single persisted record. Everything the app tracks for a
// user lives inside the UserData JSON document.
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	UserData UserData `gorm:"type:jsonb" json:"userData"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserData is the per-user document. JSON field names keep the pt-BR
// keys the mobile client already sends.
type UserData struct {
	DefaultTrainings    DefaultTrainings `json:"default_trainings"`
	EditedTrainings     []TrainingPlan   `json:"edited_trainings"`
	RegisteredTrainings []TrainingEvent  `json:"registered_trainings"`
	Notifications       []Notification   `json:"notifications"`
	Profile             Profile          `json:"profile"`
}

type DefaultTrainings struct {
	IDs []FlexInt `json:"ids"`
}

// Value implements driver.Valuer so GORM stores UserData as jsonb.
func (d UserData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (d *UserData) Scan(value interface{}) error {
	if value == nil {
		*d = UserData{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported user_data column type %T", value)
	}
	return json.Unmarshal(raw, d)
}
