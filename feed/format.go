// feed/format.go - display formatting helpers for feed posts
package feed

import (
	"fmt"
	"time"

	"github.com/fabriciolopss/TI1-webserver/models"
)

// FormatDuration renders a session length for display. Sessions under
// an hour use the spelled-out minutes form.
func FormatDuration(d models.Duration) string {
	if d.Hours > 0 {
		return fmt.Sprintf("%dh %dmin", d.Hours, d.Minutes)
	}
	return fmt.Sprintf("%d minutos", d.Minutes)
}

// LevelForXP derives the user's tier: one level per 100 XP, starting
// at level 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}

// TimeAgo buckets the elapsed time since t into the coarsest unit that
// keeps the count above zero, capped at weeks. The plural "s" appears
// only when the count exceeds one ("1 second ago", "0 second ago").
func TimeAgo(now, t time.Time) string {
	secs := int(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	mins := secs / 60
	hours := mins / 60
	days := hours / 24

	switch {
	case secs < 60:
		return fmt.Sprintf("%d second%s ago", secs, plural(secs))
	case mins < 60:
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < 7:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		weeks := days / 7
		return fmt.Sprintf("%d week%s ago", weeks, plural(weeks))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// WeekdayName returns the pt-BR weekday used inside captions.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}
