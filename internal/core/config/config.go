// Package config provides runtime settings for the Gilded Rose engine.
//
// Settings cover logging and the parallel sweep only. Item rules are
// compiled in and cannot be configured.
package config

// EngineConfig holds runtime settings for the update engine.
type EngineConfig struct {
	LogLevel          string
	LogFormat         string
	ParallelThreshold int // inventories at least this large are swept concurrently; 0 disables
	MaxWorkers        int
}

// DefaultEngineConfig returns configuration with default values.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		LogLevel:          "info",
		LogFormat:         "json",
		ParallelThreshold: 0,
		MaxWorkers:        4,
	}
}
