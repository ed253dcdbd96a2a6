package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const prodID = "-//hydration-helper//EN"

// ExportOptions controls the full-calendar export. Zero values fall back to
// the fixed reminder shape used by Encode, so ExportOptions{} produces an
// event equivalent to the minimal document.
type ExportOptions struct {
	// Start is the first reminder window start. If zero, the placeholder
	// date at the default clock time (UTC) is used.
	Start time.Time

	// WindowHours is the drinking window length in hours (DTEND - DTSTART).
	// If <= 0, DefaultWindowHours is used.
	WindowHours int

	// RRule overrides the recurrence rule.
	RRule string

	// UID overrides the generated event UID. Tests use this for stable
	// output; normal callers leave it empty.
	UID string
}

// WindowOptions builds ExportOptions for a reminder window starting at the
// given clock time in loc, anchored on the placeholder date. A nil loc means
// time.Local.
func WindowOptions(startClock string, windowHours int, rule string, loc *time.Location) (ExportOptions, error) {
	hour, minute, err := ParseClock(startClock)
	if err != nil {
		return ExportOptions{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return ExportOptions{
		Start:       time.Date(placeholderYear, placeholderMonth, placeholderDay, hour, minute, 0, 0, loc),
		WindowHours: windowHours,
		RRule:       rule,
	}, nil
}

// BuildCalendar produces a complete VCALENDAR for the given liter target:
// PRODID, a UID, DTSTAMP, the recurrence rule, and a DISPLAY alarm at the
// start of the drinking window. Calendar applications that reject the
// minimal data: URI document accept this one; the minimal form stays
// byte-stable for existing consumers.
func BuildCalendar(liters int, opts ExportOptions) *ical.Calendar {
	ev := NewReminderEvent(liters)

	start := opts.Start
	if start.IsZero() {
		hour, minute, _ := ParseClock(ev.StartClock)
		start = time.Date(placeholderYear, placeholderMonth, placeholderDay, hour, minute, 0, 0, time.UTC)
	}
	hours := opts.WindowHours
	if hours <= 0 {
		hours = DefaultWindowHours
	}
	rule := opts.RRule
	if rule == "" {
		rule = ev.RRule
	}
	uid := opts.UID
	if uid == "" {
		uid = uuid.NewString() + "@hydration-helper"
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	e := cal.AddEvent(uid)
	e.SetDtStampTime(time.Now().UTC())
	e.SetSummary(ev.Summary)
	e.SetDescription(ev.Description)
	e.SetStartAt(start)
	e.SetEndAt(start.Add(time.Duration(hours) * time.Hour))
	e.AddRrule(rule)

	alarm := e.AddAlarm()
	alarm.SetAction(ical.ActionDisplay)
	alarm.SetTrigger("-PT0M")
	alarm.SetProperty(ical.ComponentPropertyDescription, ev.Summary)

	return cal
}
