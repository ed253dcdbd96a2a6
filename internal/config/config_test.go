package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FirstRunCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "09:00", cfg.Reminder.Start)
	assert.Equal(t, 12, cfg.Reminder.WindowHours)
	assert.Equal(t, "FREQ=DAILY", cfg.Reminder.RRule)
	assert.Nil(t, cfg.BasicAuth)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Second load reads the file the first one wrote.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_PartialConfigNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \"0.0.0.0:9999\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.Listen)
	assert.Equal(t, "09:00", cfg.Reminder.Start)
	assert.Equal(t, 12, cfg.Reminder.WindowHours)
	assert.Equal(t, "FREQ=DAILY", cfg.Reminder.RRule)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	assert.Error(t, Save("", DefaultConfig()))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "c.yaml"), nil))
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Reminder: ReminderConfig{Start: "25:99", WindowHours: -3}}
	cfg.Normalize()
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "09:00", cfg.Reminder.Start)
	assert.Equal(t, 12, cfg.Reminder.WindowHours)
	assert.Equal(t, "FREQ=DAILY", cfg.Reminder.RRule)

	keep := &Config{
		Listen:   "127.0.0.1:7070",
		Timezone: "UTC",
		Reminder: ReminderConfig{Start: "18:30", WindowHours: 8, RRule: "FREQ=WEEKLY"},
	}
	keep.Normalize()
	assert.Equal(t, "18:30", keep.Reminder.Start)
	assert.Equal(t, 8, keep.Reminder.WindowHours)
	assert.Equal(t, "FREQ=WEEKLY", keep.Reminder.RRule)
	assert.Equal(t, "UTC", keep.Timezone)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Listen = "127.0.0.1:7777"
	cfg.Timezone = "UTC"
	cfg.BasicAuth = &BasicAuthConfig{Username: "admin", Password: "s3cret"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// The temp file used for the atomic write is gone.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, time.Local, cfg.Location())

	cfg.Timezone = "UTC"
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.Local, cfg.Location())
}
