// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     logging
// Description: Key-value logging on top of the foundation logger
// Created:     2025-12-06
// Modified:    2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	dtlog "github.com/msto63/datetool/foundation/core/log"
)

// Logger wraps the foundation logger with key-value pair methods
type Logger struct {
	*dtlog.Logger
	name string
}

// New creates a logger from cfg
func New(cfg LoggerConfig) *Logger {
	return &Logger{
		Logger: NewLogger(cfg),
		name:   cfg.ServiceName,
	}
}

// Wrap adapts an existing foundation logger
func Wrap(l *dtlog.Logger, name string) *Logger {
	return &Logger{Logger: l, name: name}
}

// Nop returns a logger that writes nothing
func Nop() *Logger {
	return Wrap(dtlog.Discard(), "")
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// With returns a logger that adds the given key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to dtlog.Fields
func toFields(keysAndValues ...interface{}) dtlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(dtlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
