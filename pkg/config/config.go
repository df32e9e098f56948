// Package config loads copper's layered configuration: embedded defaults,
// then a project file (.copper.yml or .copper.toml), then COPPER_-prefixed
// environment overrides for tool-level keys. Per-cop sections in the project
// file are resolved against the registry, which is where misspelled
// namespaces get corrected and ambiguous bare names get rejected.
package config

import (
	"github.com/copperlint/copper/pkg/cop"
)

// Output controls how command results are rendered.
type Output struct {
	// Color is "auto", "always" or "never".
	Color string `koanf:"color" toml:"color"`
	// Format is the default listing format: "table", "plain" or "xml".
	Format string `koanf:"format" toml:"format"`
}

// Log controls the tool's own logging.
type Log struct {
	Level string `koanf:"level" toml:"level"`
}

// Config is the effective configuration: tool-level settings plus a lookup
// from qualified cop name to per-cop settings. It satisfies
// registry.Settings.
type Config struct {
	Output Output
	Log    Log

	settings map[string]cop.Setting
	path     string
}

// ForCop returns the setting configured for a qualified cop name.
func (c *Config) ForCop(qualified string) (cop.Setting, bool) {
	s, ok := c.settings[qualified]
	return s, ok
}

// Path returns the project file the configuration was loaded from, or an
// empty string when only defaults and environment applied.
func (c *Config) Path() string {
	return c.path
}

// CopNames returns the qualified names that carry explicit settings, in no
// particular order.
func (c *Config) CopNames() []string {
	names := make([]string, 0, len(c.settings))
	for name := range c.settings {
		names = append(names, name)
	}
	return names
}
