// Package ics renders the daily water reminder as iCalendar data. It offers
// three surfaces over the same fixed-shape event: a minimal percent-encoded
// data: URI for embedding in pages, a full RFC 5545 export for calendar
// applications, and recurrence expansion for previewing upcoming reminder
// times.
package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hydration-helper/internal/model"
)

// Fixed shape of the daily reminder. Only the liter target varies per call;
// everything else is part of the encoded contract.
const (
	DefaultRRule       = "FREQ=DAILY"
	DefaultStartClock  = "0900"
	DefaultDuration    = "PT12H"
	DefaultWindowHours = 12

	descriptionText = "Daily water intake reminder"
)

// The DTSTART date is a fixed placeholder. Recurrence makes the concrete
// date irrelevant to calendar clients, and keeping it stable keeps encoded
// output byte-comparable across runs and releases.
const (
	PlaceholderDate = "20230101"

	placeholderYear  = 2023
	placeholderMonth = time.January
	placeholderDay   = 1
)

// NewReminderEvent builds the fixed-shape daily reminder for the given liter
// target. The event is a value: construct, serialize, discard.
func NewReminderEvent(liters int) model.ReminderEvent {
	return model.ReminderEvent{
		Summary:     fmt.Sprintf("Drink %d liters of water", liters),
		Description: descriptionText,
		RRule:       DefaultRRule,
		StartClock:  DefaultStartClock,
		Duration:    DefaultDuration,
	}
}

// ParseClock parses a 24h clock value in either "HH:MM" or "HHMM" form and
// returns the hour and minute. Both forms appear in practice: config files
// use the colon form, DTSTART clock values the compact one.
func ParseClock(s string) (hour, minute int, err error) {
	var hh, mm string
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hh, mm = s[:i], s[i+1:]
	} else if len(s) == 4 {
		hh, mm = s[:2], s[2:]
	} else {
		return 0, 0, fmt.Errorf("clock %q: want HH:MM or HHMM", s)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q: %w", s, err)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q: out of range", s)
	}
	return hour, minute, nil
}

// CompactClock formats an hour and minute as the HHMM form used in DTSTART
// clock values.
func CompactClock(hour, minute int) string {
	return fmt.Sprintf("%02d%02d", hour, minute)
}
