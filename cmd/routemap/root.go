// Package main provides the entry point for the routemap CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/routemap/internal/config"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("error already reported")

// NewRootCmd creates the root command for routemap.
// Running it without a subcommand prints the site structure report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routemap",
		Short: "Print the URL, view, template and static file map of a Django site",
		Long: `routemap walks the root URLconf of a Django project and prints, for every
routed URL outside the admin site, the view that serves it, the template the
view renders and the CSS and JS files that template references.

Run it from the project root. The settings module is taken from --settings,
DJANGO_SETTINGS_MODULE (also read from .env) or the .routemap file, in that
order, and defaults to simple_multivendor_site.settings.

Examples:
  # Print the console report
  routemap

  # Use another settings module
  routemap --settings shop.settings

  # Output JSON for other tools
  routemap --json

  # Find the view serving a URL
  routemap resolve /vendor/7/`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("settings", "s", "",
		"Settings module, e.g. shop.settings (default: $"+config.SettingsModuleEnv+")")
	cmd.PersistentFlags().String("project-root", ".",
		"Project root directory")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .routemap in the project root or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")

	// Add subcommands
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
