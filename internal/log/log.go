package log

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	mu     sync.RWMutex
	logger = newLogger(zerolog.InfoLevel)
)

// newLogger builds the logger behind the package-level helpers:
// human-readable console output on stderr with RFC3339 timestamps.
func newLogger(lvl zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func SetLevel(l Level) {
	lvl := zerolog.InfoLevel
	switch l {
	case LevelDebug:
		lvl = zerolog.DebugLevel
	case LevelError:
		lvl = zerolog.ErrorLevel
	}

	mu.Lock()
	logger = newLogger(lvl)
	mu.Unlock()
}

// Debug, Info and Error take structured key-value pairs after the message:
// key, value, key, value, ... Keys must be strings; an odd trailing value
// is ignored.

func Debug(msg string, kv ...any) {
	l := current()
	l.Debug().Fields(kv).Msg(msg)
}

func Info(msg string, kv ...any) {
	l := current()
	l.Info().Fields(kv).Msg(msg)
}

// Error logs msg with err attached ahead of the key-value pairs. A nil err
// is allowed and adds no error field.
func Error(msg string, err error, kv ...any) {
	l := current()
	l.Error().Err(err).Fields(kv).Msg(msg)
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
