package config

import (
	"fmt"
	"strings"
)

// validLogLevels defines the allowed log level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates a parsed Config, checking that all fields contain
// valid values. It validates:
//   - Tools entries are non-empty names without whitespace
//   - LogLevel is one of: debug, info, warn, error (if non-empty)
//
// Returns nil if the config is valid, or an error with a clear message
// indicating which field is invalid.
func Validate(cfg *Config) error {
	for i, tool := range cfg.Tools {
		if strings.TrimSpace(tool) == "" {
			return fmt.Errorf("tools[%d]: empty tool name", i)
		}
		if strings.ContainsAny(tool, " \t") {
			return fmt.Errorf("tools[%d]: invalid tool name %q", i, tool)
		}
	}

	if cfg.LogLevel != "" {
		if !validLogLevels[cfg.LogLevel] {
			return fmt.Errorf("log_level: invalid value %q, must be one of: debug, info, warn, error", cfg.LogLevel)
		}
	}

	return nil
}
