package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opmodel/ignoregen/internal/output"
	"github.com/opmodel/ignoregen/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect the built-in templates",
		Long: `Commands for discovering and inspecting the built-in ignore templates.

Only the python template is shipped. Other project types fall back to it.`,
	}

	c.AddCommand(
		newTemplateListCmd(),
		newTemplateShowCmd(cfg),
	)

	return c
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplateList(c.OutOrStdout())
		},
	}
}

func newTemplateShowCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show [type]",
		Short: "Print a template's content",
		Long: `Prints the content that would be written for a project type.

Without an argument the configured project type is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if cfg.Config != nil {
				name = cfg.Config.Type
			}
			if len(args) == 1 {
				name = args[0]
			}
			return runTemplateShow(c.OutOrStdout(), name)
		},
	}
}

func runTemplateList(w io.Writer) error {
	list, err := templates.List()
	if err != nil {
		return err
	}

	tbl := output.NewTable("NAME", "DEFAULT", "SIZE", "DESCRIPTION")
	for _, t := range list {
		def := ""
		if t.Name == templates.DefaultProjectType {
			def = "yes"
		}
		tbl.Row(string(t.Name), def, fmt.Sprintf("%d bytes", len(t.Content)), t.Description)
	}

	_, err = fmt.Fprintln(w, tbl.String())
	return err
}

func runTemplateShow(w io.Writer, name string) error {
	tmpl, fellBack, err := templates.Resolve(name)
	if err != nil {
		return err
	}
	if fellBack {
		output.Warn(fmt.Sprintf("project type %q is not supported; showing the %s template", name, tmpl.Name))
	}

	_, err = io.WriteString(w, tmpl.Content)
	return err
}
