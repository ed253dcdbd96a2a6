package ics

import (
	"strings"

	"hydration-helper/internal/model"
)

// DataURIPrefix declares the calendar MIME type for encoded reminders.
const DataURIPrefix = "data:text/calendar;charset=utf-8,"

// Encode returns a data: URI carrying the minimal reminder document for the
// given liter target, suitable as a download href. It is total over all
// integers: odd targets still produce a well-formed document.
func Encode(liters int) string {
	return DataURI(EncodeReminder(NewReminderEvent(liters)))
}

// EncodeReminder renders ev as a minimal single-event iCalendar document.
// Line order is fixed and lines are LF-joined; the document is the payload
// of a data: URI, never a file on disk, so no folding or CRLF normalization
// is applied. Existing consumers compare this output byte for byte.
func EncodeReminder(ev model.ReminderEvent) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:" + ev.Summary,
		"DESCRIPTION:" + ev.Description,
		"RRULE:" + ev.RRule,
		"DTSTART:" + PlaceholderDate + "T" + ev.StartClock + "00",
		"DURATION:" + ev.Duration,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

// DataURI wraps an already-rendered calendar document into a data: URI.
func DataURI(doc string) string {
	return DataURIPrefix + escapeComponent(doc)
}

// escapeComponent percent-encodes s for use as a data: URI payload. The
// escape set is strict: every byte outside A-Za-z0-9 and -_.!~*'() is
// encoded, which keeps the URI safe inside href attributes regardless of
// context. net/url offers no matching helper: QueryEscape turns spaces into
// '+' and PathEscape leaves sub-delims and ':' bare, so the table lives here.
func escapeComponent(s string) string {
	const hexdigits = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexdigits[c>>4])
		b.WriteByte(hexdigits[c&0x0f])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
