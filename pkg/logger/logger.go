// Package logger wraps zerolog behind a small leveled interface.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger -.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

const callerSkipFrames = 3

// New creates a JSON logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(l).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + callerSkipFrames).
		Logger()

	return &Logger{logger: &logger}
}

// Debug -.
func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), message, args...)
}

// Info -.
func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(l.logger.Info(), message, args...)
}

// Warn -.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(l.logger.Warn(), message, args...)
}

// Error -.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)

	os.Exit(1)
}

// msg writes an event. An error message is attached as the "error" field and
// the args, if any, form the human readable context.
func (l *Logger) msg(e *zerolog.Event, message interface{}, args ...interface{}) {
	switch m := message.(type) {
	case error:
		e.Err(m).Msg(fmt.Sprint(args...))
	case string:
		if len(args) == 0 {
			e.Msg(m)

			return
		}

		e.Msgf(m, args...)
	default:
		e.Msgf("message %v has unknown type %T", message, message)
	}
}
