package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/ignoregen/internal/config"
	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/output"
)

const configHeader = "# ignoregen configuration\n# Keys: path, type, log.timestamps\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create an ignoregen configuration file with default values.

The file is created at $XDG_CONFIG_HOME/ignoregen/config.yaml
(~/.config/ignoregen/config.yaml) unless --config or IGNOREGEN_CONFIG
names another location.

Examples:
  # Create the default configuration
  ignoregen config init

  # Overwrite an existing configuration
  ignoregen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			configFlag, _ := c.Flags().GetString("config")
			return runConfigInit(c, configFlag, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func runConfigInit(c *cobra.Command, configFlag string, force bool) error {
	configFile := configFlag
	if configFile == "" {
		configFile = os.Getenv(config.EnvConfig)
	}
	if configFile == "" {
		var err error
		configFile, err = config.DefaultConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	_, statErr := os.Stat(expandedPath)
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return oerrors.WrapIO(statErr, "checking config file")
	}
	if statErr == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "config file already exists",
			Location: expandedPath,
			Hint:     "Use --force to overwrite the existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return oerrors.WrapIO(err, "creating config directory")
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return oerrors.WrapIO(err, "writing config file")
	}

	output.Debug("wrote config", "path", expandedPath, "bytes", len(data))
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.FormatNoun(expandedPath)))
	return nil
}
