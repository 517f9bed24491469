// File: hlog/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package hlog

import "fmt"

// Level is a log severity. Levels order Debug < Info < Warning < Error;
// LevelNone filters everything.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

// mark returns the single-character line prefix for the level.
func (l Level) mark() string {
	switch l {
	case LevelDebug:
		return "D"
	case LevelInfo:
		return "I"
	case LevelWarning:
		return "W"
	case LevelError:
		return "E"
	default:
		return "?"
	}
}

// String returns the level's name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Callback receives one formatted, truncated, CRLF-terminated line per
// emitted log call.
type Callback func(line string)

// DefaultMaxLength is the line budget used when New is given a
// non-positive one.
const DefaultMaxLength = 128

// Logger is one tag's logging state. Instances are independent: enabling,
// filtering or rebinding the callback of one tag never affects another.
type Logger struct {
	tag      string
	max      int
	handler  Callback
	enabled  bool
	minLevel Level
}

// New returns an enabled logger for tag with the given maximum line
// length (prefix and CRLF included). Minimum level starts at LevelDebug;
// no output happens until a callback is registered.
func New(tag string, maxLength int) *Logger {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Logger{
		tag:     tag,
		max:     maxLength,
		enabled: true,
	}
}

// SetCallback registers the output callback. A nil callback silences the
// logger.
func (l *Logger) SetCallback(cb Callback) { l.handler = cb }

// Enable turns all levels back on (subject to the level filter).
func (l *Logger) Enable() { l.enabled = true }

// Disable suppresses all output until Enable. A disabled call costs a
// single flag check.
func (l *Logger) Disable() { l.enabled = false }

// IsEnabled reports the enable flag, letting callers skip expensive
// argument construction when output is off.
func (l *Logger) IsEnabled() bool { return l.enabled }

// SetLevelFilter sets the minimum level that produces output.
func (l *Logger) SetLevelFilter(min Level) { l.minLevel = min }

// LevelFilter returns the current minimum level.
func (l *Logger) LevelFilter() Level { return l.minLevel }

// Tag returns the logger's tag.
func (l *Logger) Tag() string { return l.tag }

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.write(LevelInfo, format, args) }

// Warning logs at LevelWarning.
func (l *Logger) Warning(format string, args ...any) { l.write(LevelWarning, format, args) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args) }

// write gates, formats and delivers one line. The final line never
// exceeds the logger's maximum length and always ends in CRLF; a prefix
// that alone would blow the budget aborts the call without output.
func (l *Logger) write(level Level, format string, args []any) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}
	if l.handler == nil {
		return
	}

	prefix := "[" + level.mark() + "] (" + l.tag + "): "
	budget := l.max - 2 // room for CRLF
	if len(prefix) >= budget {
		return
	}

	line := prefix + fmt.Sprintf(format, args...)
	if len(line) > budget {
		line = line[:budget]
	}
	l.handler(line + "\r\n")
}
