package main

import (
	"github.com/spf13/cobra"

	"hydration-helper/internal/config"
	appLog "hydration-helper/internal/log"
	"hydration-helper/internal/web"
)

var (
	serveConfigPath string
	serveListen     string
	serveDebug      bool
)

// serveCmd runs the web form and JSON API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and JSON API",
	RunE: func(_ *cobra.Command, _ []string) error {
		if serveDebug {
			appLog.SetLevel(appLog.LevelDebug)
		}
		appLog.Info("hydration-helper starting", "version", appVersion)

		conf, err := config.Load(serveConfigPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", serveConfigPath)
			return err
		}

		// CLI --listen overrides config file listen if provided.
		if serveListen != "" {
			conf.Listen = serveListen
		}

		appLog.Info("effective config",
			"listen", conf.Listen,
			"timezone", conf.Timezone,
			"reminder_start", conf.Reminder.Start,
			"reminder_window_hours", conf.Reminder.WindowHours,
			"reminder_rrule", conf.Reminder.RRule,
			"basic_auth", conf.BasicAuth != nil,
		)

		ctx, cancel := signalContext()
		defer cancel()

		return web.StartServer(ctx, conf, appVersion)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", defaultConfigPath, "Path to config file")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "HTTP listen address (overrides config if set)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}
