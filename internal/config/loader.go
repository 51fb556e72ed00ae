package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/output"
)

// flagKeys maps config keys to the flag names bound to them.
var flagKeys = map[string]string{
	"path":           "path",
	"type":           "type",
	"log.timestamps": "timestamps",
}

// LoaderOptions configures Load.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path (--config). When set, the
	// file must exist.
	ConfigFile string

	// Flags, when non-nil, supplies flag values. Only flags the user set
	// override lower layers.
	Flags *pflag.FlagSet
}

// Loader handles loading and merging configuration from multiple sources.
// Precedence: set flags > env > config file > defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("path", defaults.Path)
	v.SetDefault("type", defaults.Type)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("path", envPrefix+"_PATH")
	_ = v.BindEnv("type", envPrefix+"_TYPE")
	_ = v.BindEnv("log.timestamps", envPrefix+"_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load resolves the configuration.
func (l *Loader) Load(opts LoaderOptions) (*Config, error) {
	configFile, explicit, err := resolveConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		if err := l.readFile(configFile, explicit); err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := l.v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("could not decode configuration: %v", err),
			configFile,
			"Check value types in the config file and IGNOREGEN_* variables.",
		)
	}

	if cfg.Path, err = ExpandPath(cfg.Path); err != nil {
		return nil, fmt.Errorf("expanding path: %w", err)
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, oerrors.NewValidationError("path must not be empty", configFile, "")
	}

	return &cfg, nil
}

// readFile validates and merges a YAML config file. A missing file is only
// an error when it was named explicitly.
func (l *Loader) readFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			output.Debug("no config file", "path", path)
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError("config file does not exist", path, "Check --config or "+EnvConfig+".")
		}
		return oerrors.WrapIO(err, "reading config file")
	}

	if err := validateKeys(data); err != nil {
		return oerrors.NewValidationError(err.Error(), path, "Supported keys: path, type, log.timestamps.")
	}

	l.v.SetConfigType("yaml")
	if err := l.v.ReadConfig(bytes.NewReader(data)); err != nil {
		return oerrors.NewValidationError(fmt.Sprintf("could not parse config file: %v", err), path, "")
	}

	output.Debug("loaded config file", "path", path)
	return nil
}

// validateKeys rejects unknown keys in a YAML config document.
func validateKeys(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// resolveConfigFile picks the config file: flag, then env, then the default
// location. explicit is true for the first two.
func resolveConfigFile(flagValue string) (path string, explicit bool, err error) {
	path = flagValue
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, fmt.Errorf("expanding config path: %w", err)
		}
		return expanded, true, nil
	}

	path, err = DefaultConfigFile()
	if err != nil {
		output.Debug("could not determine config directory", "error", err)
		return "", false, nil
	}
	return path, false, nil
}
