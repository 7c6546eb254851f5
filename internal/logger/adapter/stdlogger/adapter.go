// Package stdlogger adapts the global zerolog logger to printf style logger
// interfaces, such as the writer gorm's logger expects.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to the global zerolog logger.
type Logger struct {
	component string
	// level used by Printf
	level zerolog.Level
}

// New creates a logger tagging every line with component. Printf logs at info.
func New(component string) *Logger {
	return &Logger{component: component, level: zerolog.InfoLevel}
}

// WithPrintfLevel returns a copy whose Printf logs at level.
func (l *Logger) WithPrintfLevel(level zerolog.Level) *Logger {
	c := *l
	c.level = level

	return &c
}

func (l *Logger) logf(level zerolog.Level, format string, args ...any) {
	event := log.WithLevel(level)
	if l.component != "" {
		event = event.Str("component", l.component)
	}

	event.Msgf(format, args...)
}

// Printf implements gorm's logger.Writer.
func (l *Logger) Printf(format string, args ...any) { l.logf(l.level, format, args...) }

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf(zerolog.DebugLevel, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(zerolog.InfoLevel, format, args...) }

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...any) { l.logf(zerolog.WarnLevel, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(zerolog.ErrorLevel, format, args...) }
