// Package config provides the mergegate configuration: a YAML file under
// the user config directory plus MERGEGATE_* environment overrides.
package config

// Config represents the on-disk configuration, typically stored at
// ~/.config/mergegate/config.yaml.
type Config struct {
	// Store is the approval store path. Empty selects the project-local
	// default, <project-root>/.claude/mergegate/approved-prs.txt.
	Store string `yaml:"store,omitempty"`

	// Tools lists the tool names whose commands the gate inspects.
	Tools []string `yaml:"tools,omitempty"`

	// LogLevel controls operational logging: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Audit toggles the append-only decision trail. A pointer so an
	// absent key means "use the default" rather than false.
	Audit *bool `yaml:"audit,omitempty"`
}
