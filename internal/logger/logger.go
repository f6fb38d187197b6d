package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RequestIDKey is the key used to store request ID in context
	RequestIDKey = "request_id"
)

var (
	// Logger is the global logger instance
	Logger zerolog.Logger
)

// Init initializes the global logger based on environment
func Init() {
	logLevel := getLogLevel()

	// JSON output in release mode, human-readable elsewhere
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		Logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger().
			Level(logLevel)
	} else {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
		Logger = zerolog.New(output).
			With().
			Timestamp().
			Logger().
			Level(logLevel)
	}

	// Set as global logger
	log.Logger = Logger
}

// getLogLevel returns the log level from environment variable
func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		// Invalid level, default to info
		return zerolog.InfoLevel
	}

	return level
}

// FromContext creates a logger event carrying the request ID stored in the
// Gin context by the request-ID middleware.
func FromContext(c interface {
	Get(string) (any, bool)
}) *zerolog.Event {
	event := Logger.Info()

	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			event = event.Str("request_id", id)
		}
	}

	return event
}

// WithRequestID creates a logger event with request ID
func WithRequestID(requestID string) *zerolog.Event {
	return Logger.Info().Str("request_id", requestID)
}
