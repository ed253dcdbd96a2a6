package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcoming_DailyFromMidday(t *testing.T) {
	ev := NewReminderEvent(3)
	from := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	times, err := Upcoming(ev, UpcomingConfig{Location: time.UTC, From: from, Count: 3})
	require.NoError(t, err)
	require.Len(t, times, 3)

	// 09:00 on May 1 already passed, so the run starts the next day.
	assert.Equal(t, time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC), times[0])
	assert.Equal(t, time.Date(2024, time.May, 3, 9, 0, 0, 0, time.UTC), times[1])
	assert.Equal(t, time.Date(2024, time.May, 4, 9, 0, 0, 0, time.UTC), times[2])
}

func TestUpcoming_BeforeClockSameDay(t *testing.T) {
	ev := NewReminderEvent(3)
	from := time.Date(2024, time.May, 1, 6, 0, 0, 0, time.UTC)

	times, err := Upcoming(ev, UpcomingConfig{Location: time.UTC, From: from, Count: 1})
	require.NoError(t, err)
	require.Len(t, times, 1)
	assert.Equal(t, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC), times[0])
}

func TestUpcoming_DefaultCount(t *testing.T) {
	ev := NewReminderEvent(1)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	times, err := Upcoming(ev, UpcomingConfig{Location: time.UTC, From: from})
	require.NoError(t, err)
	assert.Len(t, times, defaultUpcomingCount)
}

func TestUpcoming_CustomClockAndZone(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)

	ev := NewReminderEvent(2)
	ev.StartClock = "0730"
	from := time.Date(2024, time.June, 10, 0, 0, 0, 0, zone)

	times, err := Upcoming(ev, UpcomingConfig{Location: zone, From: from, Count: 2})
	require.NoError(t, err)
	require.Len(t, times, 2)
	for _, tm := range times {
		assert.Equal(t, 7, tm.Hour())
		assert.Equal(t, 30, tm.Minute())
		assert.Equal(t, zone, tm.Location())
	}
}

func TestUpcoming_RuleExhausted(t *testing.T) {
	ev := NewReminderEvent(2)
	// 400 daily occurrences counted from the 2023-01-01 anchor end on
	// 2024-02-04, so only four remain after 2024-02-01 00:00.
	ev.RRule = "FREQ=DAILY;COUNT=400"
	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	times, err := Upcoming(ev, UpcomingConfig{Location: time.UTC, From: from, Count: 10})
	require.NoError(t, err)
	require.Len(t, times, 4)
	assert.Equal(t, time.Date(2024, time.February, 4, 9, 0, 0, 0, time.UTC), times[3])
}

func TestUpcoming_ClampsCount(t *testing.T) {
	ev := NewReminderEvent(1)
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	times, err := Upcoming(ev, UpcomingConfig{Location: time.UTC, From: from, Count: 100000})
	require.NoError(t, err)
	assert.Len(t, times, maxUpcomingCount)
}

func TestUpcoming_InvalidInputs(t *testing.T) {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	bad := NewReminderEvent(1)
	bad.RRule = "FREQ=NEVER"
	_, err := Upcoming(bad, UpcomingConfig{Location: time.UTC, From: from})
	assert.Error(t, err)

	badClock := NewReminderEvent(1)
	badClock.StartClock = "9am"
	_, err = Upcoming(badClock, UpcomingConfig{Location: time.UTC, From: from})
	assert.Error(t, err)
}
