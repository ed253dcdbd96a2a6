package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hydration-helper/internal/config"
	"hydration-helper/internal/ics"
	"hydration-helper/internal/intake"
)

var (
	icsFlags      measurementFlags
	icsLiters     int
	icsFull       bool
	icsDataURI    bool
	icsOut        string
	icsConfigPath string
)

// icsCmd emits the daily reminder as iCalendar data.
var icsCmd = &cobra.Command{
	Use:   "ics",
	Short: "Emit the daily reminder as iCalendar data",
	Long: `Emits the reminder for a liter target. The target comes from --liters
when set, otherwise it is computed from the measurement flags.

By default the minimal reminder document is printed. --data-uri wraps it
in the percent-encoded data: URI used by the web form, and --full emits a
complete RFC 5545 calendar with UID, DTSTAMP and a display alarm.`,
	RunE: runICS,
}

func init() {
	icsFlags.register(icsCmd)
	icsCmd.Flags().IntVar(&icsLiters, "liters", 0, "Liter target (overrides measurement flags)")
	icsCmd.Flags().BoolVar(&icsFull, "full", false, "Emit a complete RFC 5545 calendar")
	icsCmd.Flags().BoolVar(&icsDataURI, "data-uri", false, "Emit the percent-encoded data: URI")
	icsCmd.Flags().StringVar(&icsOut, "out", "", "Write output to a file instead of stdout")
	icsCmd.Flags().StringVar(&icsConfigPath, "config", "", "Config file for the reminder window (used with --full)")
	rootCmd.AddCommand(icsCmd)
}

func runICS(cmd *cobra.Command, _ []string) error {
	if icsFull && icsDataURI {
		return fmt.Errorf("--full and --data-uri are mutually exclusive")
	}

	liters := icsLiters
	if !cmd.Flags().Changed("liters") {
		liters = intake.Compute(icsFlags.measurements())
	}

	var out string
	switch {
	case icsDataURI:
		out = ics.Encode(liters)
	case icsFull:
		opts := ics.ExportOptions{}
		if icsConfigPath != "" {
			conf, err := config.Load(icsConfigPath)
			if err != nil {
				return err
			}
			opts, err = ics.WindowOptions(
				conf.Reminder.Start,
				conf.Reminder.WindowHours,
				conf.Reminder.RRule,
				conf.Location(),
			)
			if err != nil {
				return err
			}
		}
		out = ics.BuildCalendar(liters, opts).Serialize()
	default:
		out = ics.EncodeReminder(ics.NewReminderEvent(liters))
	}

	if icsOut != "" {
		return os.WriteFile(icsOut, []byte(out), 0o644)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
