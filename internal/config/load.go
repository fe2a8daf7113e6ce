package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/mergegate/internal/clog"
)

// Load loads the configuration from the default config path.
// If the config file doesn't exist, it returns DefaultConfig().
// If the file exists but cannot be read or parsed, it returns an error.
//
// Load never writes anything: hooks run on every tool call and should not
// create files outside their store. "mergegate config init" materializes
// the commented template on request.
func Load() (*Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: %s not found, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
