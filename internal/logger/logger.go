// Package logger wires zerolog as the process-wide structured logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global log instance. Init replaces it; packages log
// through the event helpers below or via a context logger.
var Logger = log.Logger

// Config defines the logging behavior.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format selects json output or a pretty console writer.
	Format string
	// TimeFormat overrides the timestamp layout.
	TimeFormat string
	// ReportCaller adds file:line of the call site to each event.
	ReportCaller bool
}

// Init configures the global logger. An unparseable level falls back to
// info rather than failing startup.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: config.TimeFormat,
		}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	contextLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp()
	if config.ReportCaller {
		contextLogger = contextLogger.Caller()
	}

	Logger = contextLogger.Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal-level event; logging it exits the process.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Ctx returns the logger stored in ctx, or a disabled logger if none.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a context carrying the global logger.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
