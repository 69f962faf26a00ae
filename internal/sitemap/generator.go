package sitemap

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/nao1215/routemap/internal/model"
	"github.com/nao1215/routemap/internal/urlconf"
)

// AdminModule identifies the framework's built-in administrative views.
// Routes whose module contains it are never reported.
const AdminModule = "django.contrib.admin"

// Generator produces site structure reports for one route table.
// It keeps no state between Generate calls.
type Generator struct {
	fsys    fs.FS
	scanner *StaticScanner
	routes  []urlconf.Node
	exclude []string
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithExcludeModules skips routes whose module contains any of mods, in
// addition to AdminModule.
func WithExcludeModules(mods ...string) Option {
	return func(g *Generator) {
		g.exclude = append(g.exclude, mods...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator that reads templates from fsys (rooted at
// the site's base directory) and matches assets below staticURL.
func NewGenerator(fsys fs.FS, staticURL string, routes []urlconf.Node, opts ...Option) *Generator {
	g := &Generator{
		fsys:    fsys,
		scanner: NewStaticScanner(staticURL),
		routes:  routes,
		exclude: []string{AdminModule},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate flattens the route table and builds one record per reported
// route, in route table order. The first template that cannot be scanned
// aborts the report.
func (g *Generator) Generate() (*model.Report, error) {
	entries := urlconf.Flatten(g.routes, "")
	records := make([]model.Record, 0, len(entries))

	for _, e := range entries {
		if g.excluded(e.ModuleName) {
			g.logger.Debug("skipping excluded route", "url", e.Pattern, "module", e.ModuleName)
			continue
		}

		template := LocateTemplate(g.fsys, e.HandlerName, e.ModuleName)
		deps, err := g.scanner.Scan(g.fsys, template)
		if err != nil {
			return nil, fmt.Errorf("route %q (%s): %w", e.Pattern, e.View(), err)
		}

		g.logger.Debug("resolved route",
			"url", e.Pattern,
			"view", e.View(),
			"template", template,
			"css", len(deps.CSS),
			"js", len(deps.JS),
		)

		records = append(records, model.Record{
			URL:                e.Pattern,
			View:               e.View(),
			Template:           template,
			StaticDependencies: deps,
		})
	}

	return model.NewReport(records), nil
}

func (g *Generator) excluded(module string) bool {
	for _, m := range g.exclude {
		if strings.Contains(module, m) {
			return true
		}
	}
	return false
}
