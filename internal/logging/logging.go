// Package logging defines the logging contract used across the module and
// its go-logger backed implementation.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/goliatone/go-logger/glog"
)

// Logger is the logging contract. Messages use printf style arguments.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// FieldsLogger extends Logger with structured-field support.
type FieldsLogger interface {
	WithFields(map[string]any) Logger
}

// Options configures New.
type Options struct {
	Writer io.Writer
	Level  string
	// Console switches from JSON lines to human readable output.
	Console bool
}

// New returns a glog backed logger. Output defaults to stderr at info level.
func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := opts.Level
	if level == "" {
		level = "info"
	}
	var base glog.Logger
	if opts.Console {
		base = glog.NewLogger(glog.WithWriter(w), glog.WithLevel(level))
	} else {
		base = glog.NewLogger(glog.WithWriter(w), glog.WithLoggerTypeJSON(), glog.WithLevel(level))
	}
	return glogLogger{logger: base}
}

// Wrap adapts an existing glog logger.
func Wrap(l glog.Logger) Logger {
	if l == nil {
		return Nop()
	}
	return glogLogger{logger: l}
}

// WithFields attaches fields when l supports them and returns l otherwise.
func WithFields(l Logger, fields map[string]any) Logger {
	if l == nil {
		return Nop()
	}
	if fl, ok := l.(FieldsLogger); ok {
		return fl.WithFields(fields)
	}
	return l
}

type glogLogger struct {
	logger glog.Logger
}

func (l glogLogger) Trace(msg string, args ...any) { l.logger.Trace(msg, args...) }
func (l glogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l glogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l glogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l glogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
func (l glogLogger) Fatal(msg string, args ...any) { l.logger.Fatal(msg, args...) }

func (l glogLogger) WithContext(ctx context.Context) Logger {
	return glogLogger{logger: l.logger.WithContext(ctx)}
}

func (l glogLogger) WithFields(fields map[string]any) Logger {
	if fl, ok := l.logger.(glog.FieldsLogger); ok {
		return glogLogger{logger: fl.WithFields(fields)}
	}
	return l
}

// Nop discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Trace(string, ...any)                 {}
func (nopLogger) Debug(string, ...any)                 {}
func (nopLogger) Info(string, ...any)                  {}
func (nopLogger) Warn(string, ...any)                  {}
func (nopLogger) Error(string, ...any)                 {}
func (nopLogger) Fatal(string, ...any)                 {}
func (n nopLogger) WithContext(context.Context) Logger { return n }
func (n nopLogger) WithFields(map[string]any) Logger   { return n }
