package ics

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"hydration-helper/internal/model"
)

const (
	defaultUpcomingCount = 5

	// maxUpcomingCount is a safety cap to avoid extremely large expansions.
	// A year of daily reminders is more preview than anyone reads.
	maxUpcomingCount = 366
)

// UpcomingConfig controls how a reminder recurrence is expanded into
// concrete times.
type UpcomingConfig struct {
	// Location is the timezone occurrences are computed and returned in.
	// If nil, time.Local is used.
	Location *time.Location

	// From is the instant occurrences must strictly follow. Zero means
	// time.Now().
	From time.Time

	// Count is how many occurrences to return. Zero or negative means
	// defaultUpcomingCount; values above maxUpcomingCount are clamped.
	Count int
}

// Upcoming expands the reminder's recurrence rule into its next concrete
// occurrence times after cfg.From. The rule is anchored on the placeholder
// start date at the event's clock time, so for the default daily rule the
// result is the next Count days at that clock time in cfg.Location. Fewer
// than Count times come back when the rule itself ends first (COUNT/UNTIL).
func Upcoming(ev model.ReminderEvent, cfg UpcomingConfig) ([]time.Time, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	from := cfg.From
	if from.IsZero() {
		from = time.Now()
	}
	count := cfg.Count
	if count <= 0 {
		count = defaultUpcomingCount
	}
	if count > maxUpcomingCount {
		count = maxUpcomingCount
	}

	hour, minute, err := ParseClock(ev.StartClock)
	if err != nil {
		return nil, err
	}

	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return nil, fmt.Errorf("parse rrule %q: %w", ev.RRule, err)
	}
	r.DTStart(time.Date(placeholderYear, placeholderMonth, placeholderDay, hour, minute, 0, 0, loc))

	out := make([]time.Time, 0, count)
	cursor := from.In(loc)
	for len(out) < count {
		next := r.After(cursor, false)
		if next.IsZero() {
			// Rule exhausted.
			break
		}
		out = append(out, next.In(loc))
		cursor = next
	}
	return out, nil
}
