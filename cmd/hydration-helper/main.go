package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appLog "hydration-helper/internal/log"
)

const (
	appVersion = "0.1.0"

	defaultConfigPath = "/etc/hydration-helper/config.yaml"
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "hydration-helper",
	Short: "Daily water intake calculator with calendar reminders",
	Long: `hydration-helper computes a recommended daily water intake from a few
biometric measurements and turns the result into a recurring calendar
reminder.

Each surface is a subcommand: "calc" prints the recommendation, "ics"
emits the reminder as iCalendar data, "remind" runs a terminal scheduler
and "serve" exposes the web form and JSON API.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = appVersion
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext returns a context canceled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			appLog.Info("signal received, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
