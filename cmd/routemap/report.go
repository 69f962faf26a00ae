package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nao1215/routemap/internal/config"
	"github.com/nao1215/routemap/internal/report"
	"github.com/nao1215/routemap/internal/sitemap"
	"github.com/spf13/cobra"
)

// runReportCmd prints the site structure report. Any failure is printed
// together with the troubleshooting checklist.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	if err := runReport(cmd); err != nil {
		if _, werr := report.WriteError(cmd.OutOrStdout(), err); werr != nil {
			return werr
		}
		return errReported
	}
	return nil
}

func runReport(cmd *cobra.Command) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	gen := sitemap.NewGenerator(
		os.DirFS(p.settings.BaseDir()),
		p.settings.StaticURL(),
		p.routes,
		sitemap.WithExcludeModules(p.cfg.ExcludeModules...),
		sitemap.WithLogger(p.logger),
	)

	rep, err := gen.Generate()
	if err != nil {
		return err
	}
	p.logger.Debug("report generated",
		"urls", rep.Summary.URLs,
		"templates_found", rep.Summary.TemplatesFound,
		"templates_missing", rep.Summary.TemplatesMissing,
	)

	if _, err := newReportWriter(p.cfg, cmd.OutOrStdout()).Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter selects the writer for the configured output format.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out)
	}
}
