// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/ignoregen/internal/config"
	oerrors "github.com/opmodel/ignoregen/internal/errors"
	"github.com/opmodel/ignoregen/internal/generate"
	"github.com/opmodel/ignoregen/internal/output"
	"github.com/opmodel/ignoregen/internal/templates"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
type GlobalConfig struct {
	Config  *config.Config
	Verbose bool
}

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	path       string
	projType   string
	configFile string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command. Running it with no subcommand starts
// the interactive session.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "ignoregen",
		Short: "Generate a .gitignore from the Python template",
		Long: `ignoregen writes the standard Python .gitignore template to a file,
asks before overwriting an existing one, and optionally appends
custom patterns entered line by line.

Examples:
  # Write ./.gitignore and follow the prompts
  ignoregen

  # Write a different file
  ignoregen --path services/api/.gitignore`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runGenerate(c, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to config file (env: "+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output")

	rootCmd.Flags().StringVarP(&flags.path, "path", "p", config.DefaultPath, "Ignore file to write (env: IGNOREGEN_PATH)")
	rootCmd.Flags().StringVarP(&flags.projType, "type", "t", config.DefaultType,
		fmt.Sprintf("Project type (%s) (env: IGNOREGEN_TYPE)", strings.Join(templates.Names(), ", ")))

	rootCmd.AddCommand(NewTemplateCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *GlobalConfig) error {
	// Verbose applies before config loading so loader diagnostics show up.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})

	loaded, err := config.NewLoader().Load(config.LoaderOptions{
		ConfigFile: flags.configFile,
		Flags:      c.Flags(),
	})
	if err != nil {
		return err
	}

	cfg.Config = loaded
	cfg.Verbose = flags.verbose

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: loaded.Log.Timestamps,
	})

	output.Debug("initializing CLI",
		"path", loaded.Path,
		"type", loaded.Type,
		"config", flags.configFile,
	)

	return nil
}

func runGenerate(c *cobra.Command, cfg *GlobalConfig) error {
	output.Debug("starting session",
		"path", cfg.Config.Path,
		"type", cfg.Config.Type,
		"interactive", output.IsTerminal(os.Stdin),
	)

	session := generate.NewSession(generate.Options{
		Path:        cfg.Config.Path,
		ProjectType: cfg.Config.Type,
	}, c.InOrStdin(), c.OutOrStdout())

	res, err := session.Run(c.Context())
	if err != nil {
		output.Error("interactive session failed", "error", err)
		return &oerrors.ExitError{
			Err:     fmt.Errorf("interactive session: %w", err),
			Code:    oerrors.ExitGeneralError,
			Printed: true,
		}
	}

	output.Debug("session finished",
		"created", res.Created != nil,
		"appended", res.Appended != nil,
		"cancelled", res.Cancelled,
		"errors", len(res.Errors),
	)
	return nil
}
