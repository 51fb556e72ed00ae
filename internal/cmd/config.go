package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/ignoregen/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the ignoregen CLI.`,
		// Config commands must work even when the current file is invalid,
		// so only logging is set up here.
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			verbose, _ := c.Flags().GetBool("verbose")
			output.SetupLogging(output.LogConfig{Verbose: verbose})
			return nil
		},
	}

	c.AddCommand(NewConfigInitCmd())

	return c
}
