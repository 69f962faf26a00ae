package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/routemap/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.Report {
	return model.NewReport([]model.Record{
		{
			URL:      "",
			View:     "core.views.home_view",
			Template: "core/templates/home.html",
			StaticDependencies: model.StaticDependencies{
				CSS: []string{"/static/css/main.css", "/static/css/home.css"},
				JS:  []string{"/static/js/main.js"},
			},
		},
		{
			URL:      "vendor/become-vendor/",
			View:     "vendor.views.become_vendor",
			Template: "templates/vendor/become_vendor.html",
			StaticDependencies: model.StaticDependencies{
				CSS: []string{},
				JS:  []string{},
			},
		},
		{
			URL:      "cart/",
			View:     "cart.views.cart_detail",
			Template: model.TemplateNotFound,
		},
	})
}

// TestSimpleWriter tests the console report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the exact console layout", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rule := strings.Repeat("=", 50)
		sep := strings.Repeat("-", 50)
		want := "\n" + rule + "\n" +
			"Multivendor Site Structure Report\n" +
			rule + "\n\n" +
			"URL: \n" +
			"View: core.views.home_view\n" +
			"Template: core/templates/home.html\n" +
			"CSS Files: /static/css/main.css, /static/css/home.css\n" +
			"JS Files: /static/js/main.js\n" +
			sep + "\n" +
			"URL: vendor/become-vendor/\n" +
			"View: vendor.views.become_vendor\n" +
			"Template: templates/vendor/become_vendor.html\n" +
			sep + "\n" +
			"URL: cart/\n" +
			"View: cart.views.cart_detail\n" +
			"Template: Template not found (admin views use built-in templates)\n" +
			sep + "\n" +
			"\nSitemap generated successfully! (Found 3 URLs)\n"

		if got := buf.String(); got != want {
			t.Errorf("unexpected output:\n%q\nwant:\n%q", got, want)
		}
		if n != len(want) {
			t.Errorf("expected %d bytes written, got %d", len(want), n)
		}
	})

	t.Run("empty report prints only banner and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(model.NewReport(nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "URL:") {
			t.Errorf("expected no records, got %q", output)
		}
		if !strings.HasSuffix(output, "(Found 0 URLs)\n") {
			t.Errorf("expected zero count, got %q", output)
		}
	})
}

// TestWriteError tests the failure message.
func TestWriteError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := WriteError(&buf, errors.New("settings module not found: shop.settings")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\nError generating sitemap: settings module not found: shop.settings\n" +
		"Please verify:\n" +
		"1. You're running from the project root directory\n" +
		"2. All apps are properly installed in settings.py\n" +
		"3. The virtual environment is activated\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got struct {
			Sitemap []map[string]any `json:"sitemap"`
			Summary model.Summary    `json:"summary"`
		}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(got.Sitemap) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got.Sitemap))
		}
		if got.Sitemap[1]["view"] != "vendor.views.become_vendor" {
			t.Errorf("unexpected view: %v", got.Sitemap[1]["view"])
		}
		if got.Summary.TemplatesMissing != 1 || got.Summary.CSSFiles != 2 {
			t.Errorf("unexpected summary: %+v", got.Summary)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected a single line, got %q", buf.String())
		}
	})

	t.Run("missing template renders an empty mapping", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"template":"Template not found (admin views use built-in templates)","static_dependencies":{}`) {
			t.Errorf("expected empty mapping, got %s", buf.String())
		}
		if !strings.Contains(buf.String(), `"static_dependencies":{"css":[],"js":[]}`) {
			t.Errorf("expected scanned empty lists, got %s", buf.String())
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"sitemap\": [") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("uses custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent(">", "\t")).Write(model.NewReport(nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n>\t\"sitemap\": []") {
			t.Errorf("expected custom indentation, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, report *model.Report) string {
		t.Helper()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.String()
	}

	t.Run("writes title and summary", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "# Multivendor Site Structure Report") {
			t.Error("expected title")
		}
		if !strings.Contains(output, "## Summary") {
			t.Error("expected summary section")
		}
		if !strings.Contains(output, "Templates missing") {
			t.Error("expected missing template count")
		}
	})

	t.Run("writes one route row per record", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		for _, want := range []string{"`/cart/`", "`core.views.home_view`", "`templates/vendor/become_vendor.html`"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %s in output", want)
			}
		}
	})

	t.Run("includes template coverage chart", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected mermaid block")
		}
		if !strings.Contains(output, "Template Coverage") {
			t.Error("expected chart title")
		}
	})

	t.Run("notes missing templates", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "[!NOTE]") {
			t.Error("expected note alert")
		}
	})

	t.Run("lists static dependencies of routes that have any", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "## Static Dependencies") {
			t.Fatal("expected static dependency section")
		}
		if !strings.Contains(output, "JS: `/static/js/main.js`") {
			t.Error("expected JS entry")
		}
		if strings.Contains(output, "### `/cart/`") {
			t.Error("expected routes without assets to be left out")
		}
	})

	t.Run("handles report with no routes", func(t *testing.T) {
		t.Parallel()

		output := write(t, model.NewReport(nil))
		if !strings.Contains(output, "[!WARNING]") {
			t.Error("expected warning alert")
		}
		if strings.Contains(output, "```mermaid") {
			t.Error("expected no chart")
		}
	})
}

// TestCode tests inline code escaping.
func TestCode(t *testing.T) {
	t.Parallel()

	if got := code("a|b"); got != "`a\\|b`" {
		t.Errorf("unexpected escape: %q", got)
	}
}
