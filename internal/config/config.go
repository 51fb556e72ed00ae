// Package config provides configuration loading for the ignoregen CLI.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: off. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the ignoregen configuration.
type Config struct {
	// Path is the ignore file to write.
	// Env: IGNOREGEN_PATH, Default: .gitignore
	Path string `mapstructure:"path" yaml:"path"`

	// Type is the project type selecting the template.
	// Env: IGNOREGEN_TYPE, Default: python
	Type string `mapstructure:"type" yaml:"type"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Default values.
const (
	DefaultPath = ".gitignore"
	DefaultType = "python"
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Path: DefaultPath,
		Type: DefaultType,
	}
}
