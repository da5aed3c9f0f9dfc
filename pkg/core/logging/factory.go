// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Created:     2025-12-06
// Modified:    2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	dtlog "github.com/msto63/datetool/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Output writer (default: stderr)
	Output io.Writer

	// RunID tags every entry as its request ID when set
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a new foundation logger. Unknown levels fall back to
// info and unknown formats to text.
func NewLogger(cfg LoggerConfig) *dtlog.Logger {
	level, err := dtlog.ParseLevel(cfg.Level)
	if err != nil {
		level = dtlog.LevelInfo
	}

	format, err := dtlog.ParseFormat(cfg.Format)
	if err != nil {
		format = dtlog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	logger := dtlog.NewWithConfig(dtlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	if cfg.RunID != "" {
		logger = logger.WithRequestID(cfg.RunID)
	}
	return logger
}

// NewRunID returns a fresh identifier for one invocation
func NewRunID() string {
	return uuid.New().String()
}
