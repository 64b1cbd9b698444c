// Package logger provides leveled logging to stderr for status and
// diagnostic messages, kept strictly separate from the generated output.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Logger is the minimal logging interface consumed by the other packages.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Noop is a Logger that discards everything.
type Noop struct{}

func (Noop) Debug(format string, args ...interface{}) {}
func (Noop) Info(format string, args ...interface{})  {}
func (Noop) Warn(format string, args ...interface{})  {}
func (Noop) Error(format string, args ...interface{}) {}

// Level defines log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// ParseLevel converts a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Leveled writes timestamped, optionally colored messages at or above its level.
type Leveled struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Leveled logger writing to out.
func New(out io.Writer, level Level, useColors bool) *Leveled {
	return &Leveled{out: out, level: level, useColors: useColors}
}

// SetLevel changes the minimum severity that is emitted.
func (l *Leveled) SetLevel(level Level) {
	l.level = level
}

func (l *Leveled) Debug(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.emit("DEBUG", color.CyanString, format, args...)
	}
}

func (l *Leveled) Info(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.emit("INFO", color.BlueString, format, args...)
	}
}

func (l *Leveled) Warn(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		l.emit("WARN", color.YellowString, format, args...)
	}
}

func (l *Leveled) Error(format string, args ...interface{}) {
	if l.level <= LevelError {
		l.emit("ERROR", color.RedString, format, args...)
	}
}

func (l *Leveled) emit(prefix string, colorize func(string, ...interface{}) string, format string, args ...interface{}) {
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
