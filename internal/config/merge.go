package config

import "github.com/xdg/mergegate/internal/pathutil"

// Effective represents the merged configuration for one invocation. It
// layers built-in defaults, the configuration file, and MERGEGATE_*
// environment overrides, in that order.
type Effective struct {
	// Store is the configured approval store path, empty when the
	// project-local default applies.
	Store string

	// Tools are the tool names whose commands the gate inspects.
	Tools []string

	// LogLevel is the operational log level.
	LogLevel string

	// Audit reports whether the decision trail is written.
	Audit bool

	// Disabled disarms both hooks for this invocation. Environment-only,
	// so merges can be waved through temporarily without uninstalling.
	Disabled bool
}

// Resolve loads and merges all configuration sources into an Effective.
func Resolve() (*Effective, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	return mergeEffective(cfg, env), nil
}

// DefaultEffective returns the effective configuration with no file and no
// environment applied. Hooks fall back to it when Resolve fails, so a
// broken config file degrades to default gating instead of no gating.
func DefaultEffective() *Effective {
	return mergeEffective(DefaultConfig(), &Env{})
}

// mergeEffective overlays env values on cfg, filling remaining gaps from
// the defaults. Environment overrides REPLACE file values (a narrower
// MERGEGATE_TOOLS hides the configured list rather than extending it).
func mergeEffective(cfg *Config, env *Env) *Effective {
	def := DefaultConfig()

	eff := &Effective{
		Store:    cfg.Store,
		Tools:    cfg.Tools,
		LogLevel: cfg.LogLevel,
		Audit:    *def.Audit,
	}
	if len(eff.Tools) == 0 {
		eff.Tools = def.Tools
	}
	if eff.LogLevel == "" {
		eff.LogLevel = def.LogLevel
	}
	if cfg.Audit != nil {
		eff.Audit = *cfg.Audit
	}

	if env.Store != "" {
		eff.Store = env.Store
	}
	if len(env.Tools) > 0 {
		eff.Tools = env.Tools
	}
	if env.LogLevel != "" {
		eff.LogLevel = env.LogLevel
	}
	if env.Audit != nil {
		eff.Audit = *env.Audit
	}
	eff.Disabled = env.Disabled

	eff.Store = pathutil.ExpandHome(eff.Store)
	return eff
}
