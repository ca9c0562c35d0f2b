package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Reverse validation
	if c.Reverse.ChunkSize < 1 {
		errs = append(errs, "reverse.chunk_size must be >= 1")
	}
	if c.Reverse.ChunkSize > MaxChunkSize {
		errs = append(errs, fmt.Sprintf("reverse.chunk_size must be <= %d", MaxChunkSize))
	}

	// Log validation
	if !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v", validLogLevels))
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		errs = append(errs, fmt.Sprintf("log.format must be one of %v", validLogFormats))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
