package config

import (
	"os"
	"path/filepath"
)

// envPrefix is the prefix for ignoregen environment variables.
const envPrefix = "IGNOREGEN"

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = envPrefix + "_CONFIG"

// DefaultConfigFile returns the default config file path:
// $XDG_CONFIG_HOME/ignoregen/config.yaml, or ~/.config/ignoregen/config.yaml.
func DefaultConfigFile() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "ignoregen", "config.yaml"), nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
