// Package config owns the YAML configuration: model, defaults, first-run
// file creation and atomic saves with 0600 permissions.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ReminderConfig describes the recurring reminder the application exports
// and schedules. It affects the full .ics export and the terminal
// scheduler; the embedded data: URI keeps its fixed contractual shape.
type ReminderConfig struct {
	// Start is the reminder window start as "HH:MM" (24h).
	Start string `yaml:"start" json:"start"`

	// WindowHours is the drinking window length in hours.
	WindowHours int `yaml:"window_hours" json:"window_hours"`

	// RRule is the iCalendar recurrence rule.
	RRule string `yaml:"rrule" json:"rrule"`
}

// BasicAuthConfig holds HTTP Basic Auth credentials for the Web UI/API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the Web UI and API.
	Listen string `yaml:"listen" json:"listen"`

	// Timezone is the IANA timezone reminders are computed in
	// (e.g. "America/New_York"). Empty means the host's local zone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// Reminder configures the exported calendar reminder.
	Reminder ReminderConfig `yaml:"reminder" json:"reminder"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all endpoints
	// except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		Timezone: "",
		Reminder: ReminderConfig{
			Start:       "09:00",
			WindowHours: 12,
			RRule:       "FREQ=DAILY",
		},
		BasicAuth: nil,
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs (e.g., older versions) still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	// Timezone stays as-is: empty is a valid value meaning the host zone.

	if _, err := time.Parse("15:04", c.Reminder.Start); err != nil {
		c.Reminder.Start = "09:00"
	}
	if c.Reminder.WindowHours <= 0 {
		c.Reminder.WindowHours = 12
	}
	if c.Reminder.RRule == "" {
		c.Reminder.RRule = "FREQ=DAILY"
	}
}

// Location resolves Timezone to a *time.Location. Empty or unresolvable
// values fall back to the host's local zone; callers that care about the
// difference validate Timezone themselves.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load reads the YAML config at path and normalizes it. A missing file is
// not an error: the default config is written there (first run) and
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Hand back the usable default along with the error.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save normalizes cfg and writes it to path as YAML. The write is atomic
// (temp file in the same directory, then rename) so a crash never leaves a
// half-written config; the parent directory is created 0700 and the file
// ends up 0600 since it may carry basic-auth credentials.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hydration-helper-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Removes the temp file whenever we bail out before the rename.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Permissions must be final before the file becomes visible under path.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save writes the receiver to path. See the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
