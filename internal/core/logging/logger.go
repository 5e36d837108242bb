// Package logging builds the zap logger used by the engine.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/solatis/gildedrose/internal/core/config"
)

// New builds a production zap logger. format is "json" or "text";
// level is any zapcore level name.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	switch format {
	case "json":
	case "text":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s (expected json or text)", format)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// FromConfig builds a logger from engine settings.
func FromConfig(cfg *config.EngineConfig) (*zap.Logger, error) {
	return New(cfg.LogLevel, cfg.LogFormat)
}
