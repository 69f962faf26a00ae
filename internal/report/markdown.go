package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/routemap/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md)
	w.writeSummary(md, report)
	w.writeRoutes(md, report)
	w.writeAssets(md, report)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown) {
	md.H1(Title)
	md.PlainText("")
}

// writeSummary writes the count table, a template coverage chart and an alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	s := report.Summary

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"URLs", strconv.Itoa(s.URLs)},
			{"Templates found", strconv.Itoa(s.TemplatesFound)},
			{"Templates missing", strconv.Itoa(s.TemplatesMissing)},
			{"CSS files", strconv.Itoa(s.CSSFiles)},
			{"JS files", strconv.Itoa(s.JSFiles)},
		},
	})
	md.PlainText("")

	if s.URLs > 0 {
		w.writePieChart(md, s)
	}
	w.writeAlert(md, s)
}

func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Template Coverage"),
		piechart.WithShowData(true),
	)

	if s.TemplatesFound > 0 {
		chart.LabelAndIntValue("Found", uint64(s.TemplatesFound))
	}
	if s.TemplatesMissing > 0 {
		chart.LabelAndIntValue("Missing", uint64(s.TemplatesMissing))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s model.Summary) {
	switch {
	case s.URLs == 0:
		md.Warning("No routes were found outside the admin site.")
	case s.TemplatesMissing > 0:
		md.Notef("%d of %d routes have no template file in the project.", s.TemplatesMissing, s.URLs)
	default:
		md.Tip("Every route has a template file.")
	}
	md.PlainText("")
}

// writeRoutes writes one table row per record.
func (w *MarkdownWriter) writeRoutes(md *markdown.Markdown, report *model.Report) {
	md.H2("Routes")
	md.PlainText("")

	if len(report.Records) == 0 {
		md.PlainText("No routes.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Records))
	for i, rec := range report.Records {
		template := "-"
		if rec.HasTemplate() {
			template = code(rec.Template)
		}
		rows[i] = []string{
			code("/" + rec.URL),
			code(rec.View),
			template,
			strconv.Itoa(len(rec.StaticDependencies.CSS)),
			strconv.Itoa(len(rec.StaticDependencies.JS)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"URL", "View", "Template", "CSS", "JS"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAssets lists the static files of every route that references any.
func (w *MarkdownWriter) writeAssets(md *markdown.Markdown, report *model.Report) {
	var wrote bool
	for _, rec := range report.Records {
		deps := rec.StaticDependencies
		if len(deps.CSS)+len(deps.JS) == 0 {
			continue
		}
		if !wrote {
			md.H2("Static Dependencies")
			md.PlainText("")
			wrote = true
		}

		md.H3(code("/" + rec.URL))
		md.PlainText("")
		items := make([]string, 0, len(deps.CSS)+len(deps.JS))
		for _, css := range deps.CSS {
			items = append(items, "CSS: "+code(css))
		}
		for _, js := range deps.JS {
			items = append(items, "JS: "+code(js))
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

// code formats s as inline code, escaping pipes so tables stay intact.
func code(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
