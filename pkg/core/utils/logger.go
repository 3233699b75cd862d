package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. The default writes plain JSON to
// stderr so library code and tests can log before InitLogger runs.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitLogger configures the global logger. Debug level is opt-in via
// LOG_LEVEL=debug so production output stays readable.
func InitLogger() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Logger = zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	if os.Getenv("LOG_LEVEL") == "debug" {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
}

// LogUpstreamCall records one outbound call to a collaborator (record store
// or LLM). Credentials never appear here; callers pass already-redacted URLs.
func LogUpstreamCall(service, method, url string, status int, elapsed time.Duration) {
	event := Logger.Info()
	if status >= 400 {
		event = Logger.Error()
	}
	event.
		Str("service", service).
		Str("method", method).
		Str("url", url).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("upstream call")
}
