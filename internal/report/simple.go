package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/routemap/internal/model"
)

// ruleWidth is the width of the banner and separator lines.
const ruleWidth = 50

// Title is the banner title of the console report.
const Title = "Multivendor Site Structure Report"

// SimpleWriter outputs the console report. The layout is relied upon by
// scripts that parse it, so it must not change.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the banner, one block per record and the count line.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	for _, rec := range report.Records {
		w.writeRecord(&sb, rec)
	}
	w.writeFooter(&sb, report)

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

// writeRecord writes one route. Asset lines are omitted when empty.
func (w *SimpleWriter) writeRecord(sb *strings.Builder, rec model.Record) {
	fmt.Fprintf(sb, "URL: %s\n", rec.URL)
	fmt.Fprintf(sb, "View: %s\n", rec.View)
	fmt.Fprintf(sb, "Template: %s\n", rec.Template)
	if len(rec.StaticDependencies.CSS) > 0 {
		fmt.Fprintf(sb, "CSS Files: %s\n", strings.Join(rec.StaticDependencies.CSS, ", "))
	}
	if len(rec.StaticDependencies.JS) > 0 {
		fmt.Fprintf(sb, "JS Files: %s\n", strings.Join(rec.StaticDependencies.JS, ", "))
	}
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFooter(sb *strings.Builder, report *model.Report) {
	fmt.Fprintf(sb, "\nSitemap generated successfully! (Found %d URLs)\n", len(report.Records))
}

// WriteError writes the failure message and the checklist printed when a
// report cannot be generated.
func WriteError(output io.Writer, err error) (int, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nError generating sitemap: %v\n", err)
	sb.WriteString("Please verify:\n")
	sb.WriteString("1. You're running from the project root directory\n")
	sb.WriteString("2. All apps are properly installed in settings.py\n")
	sb.WriteString("3. The virtual environment is activated\n")
	return io.WriteString(output, sb.String())
}
