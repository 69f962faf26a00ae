package urlconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader errors.
var (
	// ErrURLConfNotFound is returned when a URLconf module file does not exist.
	ErrURLConfNotFound = errors.New("URLconf module not found")

	// ErrIncludeCycle is returned when URLconf modules include each other.
	ErrIncludeCycle = errors.New("URLconf include cycle")

	// ErrInvalidView is returned for a view reference without a module part.
	ErrInvalidView = errors.New("invalid view reference")

	// ErrAmbiguousEntry is returned when an entry declares more than one of
	// view, handler, include and patterns.
	ErrAmbiguousEntry = errors.New("ambiguous URL pattern entry")
)

// document is the on-disk shape of a URLconf module.
type document struct {
	URLPatterns []entry `yaml:"urlpatterns"`
}

type entry struct {
	Path     string   `yaml:"path"`
	Name     string   `yaml:"name"`
	View     string   `yaml:"view"`
	Handler  *Handler `yaml:"handler"`
	Include  string   `yaml:"include"`
	Patterns []entry  `yaml:"patterns"`
}

// ModulePath maps a dotted module identifier to its YAML file below root,
// e.g. "vendor.urls" -> root/vendor/urls.yaml.
func ModulePath(root, module string) string {
	return filepath.Join(root, filepath.FromSlash(strings.ReplaceAll(module, ".", "/"))+".yaml")
}

// ParseView splits a dotted view reference such as "core.views.home_view"
// into its module ("core.views") and handler name ("home_view").
func ParseView(ref string) (Handler, error) {
	i := strings.LastIndex(ref, ".")
	if i <= 0 || i == len(ref)-1 {
		return Handler{}, fmt.Errorf("%w: %q", ErrInvalidView, ref)
	}
	return Handler{Module: ref[:i], Name: ref[i+1:]}, nil
}

// Load reads the URLconf module and every module it includes from baseDir.
func Load(baseDir, module string) ([]Node, error) {
	l := &loader{baseDir: baseDir}
	return l.load(module)
}

type loader struct {
	baseDir string

	// stack holds the include chain currently being loaded.
	stack []string
}

func (l *loader) load(module string) ([]Node, error) {
	if slices.Contains(l.stack, module) {
		chain := append(slices.Clone(l.stack), module)
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(chain, " -> "))
	}
	l.stack = append(l.stack, module)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	path := ModulePath(l.baseDir, module)
	data, err := os.ReadFile(path) //nolint:gosec // URLconf path comes from the user's project
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrURLConfNotFound, module, path)
		}
		return nil, fmt.Errorf("failed to read URLconf %s: %w", module, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse URLconf %s: %w", module, err)
	}
	return l.convert(module, doc.URLPatterns)
}

func (l *loader) convert(module string, entries []entry) ([]Node, error) {
	nodes := make([]Node, 0, len(entries))
	for i, e := range entries {
		n, err := l.node(e)
		if err != nil {
			return nil, fmt.Errorf("%s: urlpatterns[%d] (path %q): %w", module, i, e.Path, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (l *loader) node(e entry) (Node, error) {
	kinds := 0
	for _, set := range []bool{e.View != "", e.Handler != nil, e.Include != "", e.Patterns != nil} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, ErrAmbiguousEntry
	}

	switch {
	case e.View != "":
		h, err := ParseView(e.View)
		if err != nil {
			return nil, err
		}
		return &Leaf{Pattern: e.Path, Handler: h, Name: e.Name}, nil

	case e.Handler != nil:
		if e.Handler.Name == "" || e.Handler.Module == "" {
			return nil, fmt.Errorf("%w: handler needs both name and module", ErrInvalidView)
		}
		return &Leaf{Pattern: e.Path, Handler: *e.Handler, Name: e.Name}, nil

	case e.Include != "":
		children, err := l.load(e.Include)
		if err != nil {
			return nil, err
		}
		return &SubTable{Prefix: e.Path, Children: children, Include: e.Include}, nil

	case e.Patterns != nil:
		// Inline patterns belong to the including module for error messages.
		children, err := l.convert(l.stack[len(l.stack)-1], e.Patterns)
		if err != nil {
			return nil, err
		}
		return &SubTable{Prefix: e.Path, Children: children}, nil

	default:
		return &Unrouted{Pattern: e.Path}, nil
	}
}
