// Package remind runs the terminal reminder scheduler: a cron job that
// announces the daily drinking target at the configured clock time until
// the process is stopped.
package remind

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"hydration-helper/internal/ics"
	appLog "hydration-helper/internal/log"
	"hydration-helper/internal/metrics"
)

// Options configures a scheduler run.
type Options struct {
	// Liters is the daily target announced by each reminder.
	Liters int

	// StartClock is the reminder time as "HH:MM" (24h).
	StartClock string

	// Location is the timezone the schedule fires in. If nil, time.Local
	// is used.
	Location *time.Location
}

// CronSpec derives the five-field cron schedule for a daily reminder at the
// given clock time.
func CronSpec(clock string) (string, error) {
	hour, minute, err := ics.ParseClock(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// Run fires reminders until ctx is canceled. It blocks; cancellation stops
// the cron runner, waits for an in-flight job to finish and returns nil.
func Run(ctx context.Context, opts Options) error {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	spec, err := CronSpec(opts.StartClock)
	if err != nil {
		return err
	}

	ev := ics.NewReminderEvent(opts.Liters)
	if hour, minute, cerr := ics.ParseClock(opts.StartClock); cerr == nil {
		ev.StartClock = ics.CompactClock(hour, minute)
	}

	// Show when the next reminders will fire so a terminal user can tell
	// the schedule took effect.
	if times, uerr := ics.Upcoming(ev, ics.UpcomingConfig{Location: loc, Count: 3}); uerr == nil {
		for _, at := range times {
			appLog.Info("reminder scheduled", "at", at.Format(time.RFC3339))
		}
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, func() {
		metrics.RemindersFiredTotal.Inc()
		appLog.Info("time to drink water", "liters", opts.Liters, "summary", ev.Summary)
	}); err != nil {
		return err
	}

	appLog.Info("reminder scheduler started", "spec", spec, "timezone", loc.String())
	c.Start()
	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	appLog.Info("reminder scheduler stopped")
	return nil
}
