package main

import (
	"github.com/spf13/cobra"

	"hydration-helper/internal/config"
	"hydration-helper/internal/intake"
	appLog "hydration-helper/internal/log"
	"hydration-helper/internal/remind"
)

var (
	remindFlags      measurementFlags
	remindLiters     int
	remindAt         string
	remindConfigPath string
)

// remindCmd runs the terminal reminder scheduler.
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run a terminal scheduler that announces the daily target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Load(remindConfigPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", remindConfigPath)
			return err
		}

		liters := remindLiters
		if !cmd.Flags().Changed("liters") {
			liters = intake.Compute(remindFlags.measurements())
		}
		at := remindAt
		if at == "" {
			at = conf.Reminder.Start
		}

		ctx, cancel := signalContext()
		defer cancel()

		return remind.Run(ctx, remind.Options{
			Liters:     liters,
			StartClock: at,
			Location:   conf.Location(),
		})
	},
}

func init() {
	remindFlags.register(remindCmd)
	remindCmd.Flags().IntVar(&remindLiters, "liters", 0, "Liter target (overrides measurement flags)")
	remindCmd.Flags().StringVar(&remindAt, "at", "", "Reminder time as HH:MM (overrides config)")
	remindCmd.Flags().StringVar(&remindConfigPath, "config", defaultConfigPath, "Path to config file")
	rootCmd.AddCommand(remindCmd)
}
