// Package logging provides the engine's structured logger, a thin wrapper
// over zerolog matching the shape the rest of the host application expects
// from any component-scoped logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the minimal component-scoped logging surface this package
// provides. No package reaches for a process-wide singleton logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ZLogger wraps zerolog.Logger to satisfy Logger.
type ZLogger struct {
	zerolog.Logger
	component string
}

// New builds a logger scoped to component ("originals" when empty): a
// pretty console writer when pretty is true, JSON lines on stdout
// otherwise. level and pretty take OriginalsConfig's Logging.Level and
// Logging.Pretty settings.
func New(component string, level string, pretty bool) *ZLogger {
	if component == "" {
		component = "originals"
	}

	var z *ZLogger
	if pretty {
		z = prettyLogger(component)
	} else {
		z = &ZLogger{
			zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger(),
			component,
		}
	}

	z.setLevel(level)
	return z
}

func (z *ZLogger) setLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		z.Logger = z.Logger.Level(zerolog.DebugLevel)
	case "WARN":
		z.Logger = z.Logger.Level(zerolog.WarnLevel)
	case "ERROR":
		z.Logger = z.Logger.Level(zerolog.ErrorLevel)
	default:
		z.Logger = z.Logger.Level(zerolog.InfoLevel)
	}
}

func prettyLogger(component string) *ZLogger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	output.FormatMessage = func(i interface{}) string {
		return component + ": " + zerolog.MessageFieldName + "=" + toString(i)
	}
	return &ZLogger{
		zerolog.New(output).With().Timestamp().Logger(),
		component,
	}
}

func toString(i interface{}) string {
	if s, ok := i.(string); ok {
		return s
	}
	return ""
}

func (z *ZLogger) Debugf(format string, args ...interface{}) { z.Logger.Debug().Msgf(format, args...) }
func (z *ZLogger) Infof(format string, args ...interface{})  { z.Logger.Info().Msgf(format, args...) }
func (z *ZLogger) Warnf(format string, args ...interface{})  { z.Logger.Warn().Msgf(format, args...) }
func (z *ZLogger) Errorf(format string, args ...interface{}) { z.Logger.Error().Msgf(format, args...) }

// Output returns a copy of z writing to w; used by tests to capture output.
func (z *ZLogger) Output(w io.Writer) *ZLogger {
	return &ZLogger{z.Logger.Output(w), z.component}
}

// noop satisfies Logger while discarding everything.
type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}
func (noop) Errorf(string, ...interface{}) {}

// Noop returns a Logger that discards all output.
func Noop() Logger { return noop{} }
