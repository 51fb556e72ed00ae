package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/ignoregen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show ignoregen version information.

Displays the version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetInfo()
			w := c.OutOrStdout()
			fmt.Fprintf(w, "ignoregen version %s\n", info.Version)
			fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
			fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
			return nil
		},
	}
}
