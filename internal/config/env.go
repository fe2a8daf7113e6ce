package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the MERGEGATE_* environment overrides. Every field is
// optional; a set variable takes precedence over the configuration file.
type Env struct {
	Store    string   `envconfig:"STORE"`
	Tools    []string `envconfig:"TOOLS"`
	LogLevel string   `envconfig:"LOG_LEVEL"`
	Audit    *bool    `envconfig:"AUDIT"`
	Disabled bool     `envconfig:"DISABLED"`
}

const namespace = "MERGEGATE"

// LoadEnv reads the MERGEGATE_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}
	return &env, nil
}
