package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// LoadConfig loads configuration from file using viper.
// Environment > config file > defaults precedence.
func LoadConfig(configPath string) (*EngineConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultEngineConfig
	d := DefaultEngineConfig()
	v.SetDefault("engine.log_level", d.LogLevel)
	v.SetDefault("engine.log_format", d.LogFormat)
	v.SetDefault("engine.parallel_threshold", d.ParallelThreshold)
	v.SetDefault("engine.max_workers", d.MaxWorkers)

	// Bind environment variables with GR_ prefix
	v.SetEnvPrefix("GR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := validateNoRulesInConfig(v); err != nil {
		return nil, err
	}

	cfg := &EngineConfig{
		LogLevel:          v.GetString("engine.log_level"),
		LogFormat:         v.GetString("engine.log_format"),
		ParallelThreshold: v.GetInt("engine.parallel_threshold"),
		MaxWorkers:        v.GetInt("engine.max_workers"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks log settings and non-negative sweep settings.
func validateConfig(cfg *EngineConfig) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("log_format must be json or text, got %q", cfg.LogFormat)
	}
	if cfg.ParallelThreshold < 0 {
		return fmt.Errorf("parallel_threshold must not be negative, got %d", cfg.ParallelThreshold)
	}
	if cfg.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive, got %d", cfg.MaxWorkers)
	}
	return nil
}

// validateNoRulesInConfig rejects rule tables in config files; rules are compiled in.
func validateNoRulesInConfig(v *viper.Viper) error {
	for _, key := range []string{"rules", "categories", "engine.rules", "engine.categories"} {
		if v.IsSet(key) {
			return fmt.Errorf("item rules not allowed in config files (found %q; rules are compiled in)", key)
		}
	}
	return nil
}
