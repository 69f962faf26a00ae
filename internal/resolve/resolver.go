package resolve

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nao1215/routemap/internal/urlconf"
)

var (
	// ErrNoMatch is returned when no route matches a URL path.
	ErrNoMatch = errors.New("no route matches")

	// ErrInvalidPattern is returned when chi rejects a translated pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")
)

// Match is the route serving a URL path.
type Match struct {
	// Entry is the matched route.
	Entry urlconf.RouteEntry

	// Pattern is the chi pattern the entry was registered under.
	Pattern string

	// Params holds the captured path parameters by name.
	Params map[string]string
}

// Skipped is a route that could not be registered for matching.
type Skipped struct {
	Entry urlconf.RouteEntry
	Err   error
}

// route is one entry on its own mux. chi ranks static segments above
// parameters within a mux, so sharing one would break declaration order.
type route struct {
	entry    urlconf.RouteEntry
	pattern  string
	wildcard string
	mux      *chi.Mux
}

// Resolver matches URL paths against a route table.
type Resolver struct {
	routes  []route
	skipped []Skipped
}

// noop is registered for every route; the muxes never serve requests.
var noop = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

// New registers entries in declaration order. Resolve returns the first
// entry whose pattern matches, like the framework does. Entries whose
// pattern cannot be translated are recorded in Skipped and logged at debug
// level.
func New(entries []urlconf.RouteEntry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &Resolver{routes: make([]route, 0, len(entries))}
	for _, e := range entries {
		p, err := translate(e.Pattern)
		var mux *chi.Mux
		if err == nil {
			mux, err = register(p.pattern)
		}
		if err != nil {
			logger.Debug("route not resolvable", "url", e.Pattern, "view", e.View(), "error", err)
			r.skipped = append(r.skipped, Skipped{Entry: e, Err: err})
			continue
		}

		r.routes = append(r.routes, route{entry: e, pattern: p.pattern, wildcard: p.wildcard, mux: mux})
	}
	return r
}

// register creates a mux serving only pattern, turning chi's panics into errors.
func register(pattern string) (mux *chi.Mux, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			mux, err = nil, fmt.Errorf("%w: %v", ErrInvalidPattern, rec)
		}
	}()
	mux = chi.NewRouter()
	mux.Handle(pattern, noop)
	return mux, nil
}

// Len returns the number of routes available for matching.
func (r *Resolver) Len() int {
	return len(r.routes)
}

// Skipped returns the routes that could not be registered.
func (r *Resolver) Skipped() []Skipped {
	return append([]Skipped(nil), r.skipped...)
}

// Resolve returns the first declared route serving path. A missing leading
// slash is added.
func (r *Resolver) Resolve(path string) (Match, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	for _, rt := range r.routes {
		rctx := chi.NewRouteContext()
		if !rt.mux.Match(rctx, http.MethodGet, path) {
			continue
		}

		params := make(map[string]string, len(rctx.URLParams.Keys))
		for i, k := range rctx.URLParams.Keys {
			if k == wildcardKey && rt.wildcard != "" {
				k = rt.wildcard
			}
			params[k] = rctx.URLParams.Values[i]
		}
		return Match{Entry: rt.entry, Pattern: rt.pattern, Params: params}, nil
	}

	return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, path)
}
