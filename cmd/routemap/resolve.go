package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/nao1215/routemap/internal/resolve"
	"github.com/nao1215/routemap/internal/sitemap"
	"github.com/nao1215/routemap/internal/urlconf"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url-path>",
		Short: "Show the view that serves a URL path",
		Long: `Resolve matches a URL path against the route table and prints the first
declared route that serves it, including admin routes.

Path converters (str, int, slug, uuid, path) are honored. Routes written as
regular expressions cannot be matched; they are named when no route matches
and logged with --verbose.

Examples:
  routemap resolve /vendor/7/
  routemap resolve cart/`,
		Args: cobra.ExactArgs(1),
		RunE: runResolveCmd,
	}
}

// runResolveCmd executes the resolve command.
func runResolveCmd(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	r := resolve.New(urlconf.Flatten(p.routes, ""), p.logger)
	p.logger.Debug("routes registered", "resolvable", r.Len(), "skipped", len(r.Skipped()))

	m, err := r.Resolve(args[0])
	if err != nil {
		return withSkipped(err, r.Skipped())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "URL: %s\n", m.Entry.Pattern)
	fmt.Fprintf(out, "View: %s\n", m.Entry.View())
	fmt.Fprintf(out, "Pattern: %s\n", m.Pattern)
	if len(m.Params) > 0 {
		fmt.Fprintln(out, "Params:")
		keys := make([]string, 0, len(m.Params))
		for k := range m.Params {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %s\n", k, m.Params[k])
		}
	}
	if strings.Contains(m.Entry.ModuleName, sitemap.AdminModule) {
		fmt.Fprintln(out, "Note: admin route, not included in the site report")
	}
	return nil
}

// withSkipped names the routes that were never checked when nothing matched.
func withSkipped(err error, skipped []resolve.Skipped) error {
	if len(skipped) == 0 || !errors.Is(err, resolve.ErrNoMatch) {
		return err
	}
	patterns := make([]string, len(skipped))
	for i, s := range skipped {
		patterns[i] = strconv.Quote(s.Entry.Pattern)
	}
	return fmt.Errorf("%w (not checked: %s)", err, strings.Join(patterns, ", "))
}
