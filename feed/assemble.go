// feed/assemble.go - final presentation shaping of feed posts
package feed

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fabriciolopss/TI1-webserver/models"
)

// fallbackUserName labels users who never filled in their profile and
// somehow have no email either.
const fallbackUserName = "Atleta"

// Post is the display-ready representation of one feed item.
type Post struct {
	ItemID        string              `json:"itemId"`
	UserID        uint                `json:"userId"`
	UserName      string              `json:"userName"`
	UserLevel     int                 `json:"userLevel"`
	AvatarInitial string              `json:"avatarInitial"`
	WorkoutTitle  string              `json:"workoutTitle"`
	Category      string              `json:"category"`
	DayName       string              `json:"dayName"`
	DurationText  string              `json:"durationText"`
	XPGained      int                 `json:"xpGained"`
	TimeAgoText   string              `json:"timeAgoText"`
	CaptionText   string              `json:"captionText"`
	Achievement   *models.Achievement `json:"achievementHighlight,omitempty"`
	TrainingDate  time.Time           `json:"trainingDate"`
}

// Assembler turns query-engine pages into posts. The clock and the id
// source are injectable for tests.
type Assembler struct {
	captions *CaptionGenerator
	now      func() time.Time
	newID    func() string
}

// NewAssembler builds an assembler with the real clock and uuid ids.
func NewAssembler(captions *CaptionGenerator) *Assembler {
	return &Assembler{
		captions: captions,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Assemble maps one page of items to presentation posts.
func (a *Assembler) Assemble(items []Item) []Post {
	now := a.now()
	posts := make([]Post, 0, len(items))
	for _, it := range items {
		name := displayName(it)
		posts = append(posts, Post{
			ItemID:        a.newID(),
			UserID:        it.User.ID,
			UserName:      name,
			UserLevel:     LevelForXP(it.EffectiveXP),
			AvatarInitial: avatarInitial(name),
			WorkoutTitle:  it.Plan.Name,
			Category:      it.Plan.Category,
			DayName:       it.Day.Name,
			DurationText:  FormatDuration(it.Event.EffectiveDuration()),
			XPGained:      it.Event.XPGain,
			TimeAgoText:   TimeAgo(now, it.Event.Date),
			CaptionText:   a.captions.Generate(it.Plan.Category, WeekdayName(it.Event.Date)),
			Achievement:   it.User.UserData.Profile.FirstUnclaimedAchievement(),
			TrainingDate:  it.Event.Date,
		})
	}
	return posts
}

// displayName prefers the profile name, then the account email, then
// the generic label.
func displayName(it Item) string {
	if name := it.User.UserData.Profile.Personal.Name; name != "" {
		return name
	}
	if it.User.Email != "" {
		return it.User.Email
	}
	return fallbackUserName
}

func avatarInitial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		name = fallbackUserName
		r, _ = utf8.DecodeRuneInString(name)
	}
	return strings.ToUpper(string(r))
}
