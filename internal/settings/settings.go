package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nao1215/routemap/internal/urlconf"
	"gopkg.in/yaml.v3"
)

// DefaultStaticURL is used when the settings module does not set static_url.
const DefaultStaticURL = "/static/"

// Settings errors.
var (
	// ErrNoSettingsModule is returned when Setup is called without a module identifier.
	ErrNoSettingsModule = errors.New("settings are not configured: no settings module given")

	// ErrSettingsNotFound is returned when the settings module file does not exist.
	ErrSettingsNotFound = errors.New("settings module not found")

	// ErrNoRootURLConf is returned when root_urlconf is missing.
	ErrNoRootURLConf = errors.New("settings module does not define root_urlconf")

	// ErrStaticURLSlash is returned when a non-empty static_url does not end in a slash.
	ErrStaticURLSlash = errors.New("static_url must end in a slash")

	// ErrEmptyApp is returned when installed_apps contains an empty entry.
	ErrEmptyApp = errors.New("installed_apps contains an empty application name")

	// ErrDuplicateApp is returned when installed_apps names an application twice.
	ErrDuplicateApp = errors.New("application names aren't unique")
)

// document is the on-disk shape of a settings module.
// Other keys (secret_key, databases, ...) end up in Extra; they are only
// ever logged.
type document struct {
	BaseDir       string         `yaml:"base_dir"`
	StaticURL     *string        `yaml:"static_url"`
	RootURLConf   string         `yaml:"root_urlconf"`
	InstalledApps []string       `yaml:"installed_apps"`
	Extra         map[string]any `yaml:",inline"`
}

// Settings is the configured runtime context of a site.
// It is created once by Setup and never modified afterwards.
type Settings struct {
	module        string
	baseDir       string
	staticURL     string
	rootURLConf   string
	installedApps []string
	extra         map[string]any
}

// Setup loads and validates the settings module identified by module,
// resolving it against projectRoot.
func Setup(projectRoot, module string) (*Settings, error) {
	if module == "" {
		return nil, ErrNoSettingsModule
	}

	path := urlconf.ModulePath(projectRoot, module)
	data, err := os.ReadFile(path) //nolint:gosec // settings path comes from the user's project
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrSettingsNotFound, module, path)
		}
		return nil, fmt.Errorf("failed to read settings module %s: %w", module, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings module %s: %w", module, err)
	}

	s := &Settings{
		module:        module,
		baseDir:       resolveDir(projectRoot, doc.BaseDir),
		staticURL:     DefaultStaticURL,
		rootURLConf:   doc.RootURLConf,
		installedApps: doc.InstalledApps,
		extra:         doc.Extra,
	}
	if doc.StaticURL != nil {
		s.staticURL = *doc.StaticURL
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("improperly configured %s: %w", module, err)
	}
	return s, nil
}

// resolveDir makes dir absolute relative to root. An empty dir means root.
func resolveDir(root, dir string) string {
	switch {
	case dir == "":
		return root
	case filepath.IsAbs(dir):
		return dir
	default:
		return filepath.Join(root, dir)
	}
}

func (s *Settings) validate() error {
	if s.rootURLConf == "" {
		return ErrNoRootURLConf
	}
	if s.staticURL != "" && !strings.HasSuffix(s.staticURL, "/") {
		return ErrStaticURLSlash
	}

	seen := make(map[string]bool, len(s.installedApps))
	for _, app := range s.installedApps {
		if app == "" {
			return ErrEmptyApp
		}
		if seen[app] {
			return fmt.Errorf("%w, duplicates: %s", ErrDuplicateApp, app)
		}
		seen[app] = true
	}
	return nil
}

// Module returns the settings module identifier.
func (s *Settings) Module() string { return s.module }

// BaseDir returns the directory templates are resolved against.
func (s *Settings) BaseDir() string { return s.baseDir }

// StaticURL returns the URL prefix of static files, e.g. "/static/".
func (s *Settings) StaticURL() string { return s.staticURL }

// RootURLConf returns the module identifier of the root route table.
func (s *Settings) RootURLConf() string { return s.rootURLConf }

// InstalledApps returns a copy of the installed application list.
func (s *Settings) InstalledApps() []string {
	return append([]string(nil), s.installedApps...)
}

// LogValue implements slog.LogValuer. Scalar settings outside the known set
// are included in key order so a secure handler can mask credentials.
func (s *Settings) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("module", s.module),
		slog.String("base_dir", s.baseDir),
		slog.String("static_url", s.staticURL),
		slog.String("root_urlconf", s.rootURLConf),
		slog.Int("installed_apps", len(s.installedApps)),
	}

	keys := make([]string, 0, len(s.extra))
	for k := range s.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := s.extra[k].(type) {
		case map[string]any, []any, nil:
			continue
		default:
			attrs = append(attrs, slog.Any(k, v))
		}
	}
	return slog.GroupValue(attrs...)
}

// URLConf loads the route table named by root_urlconf from the base directory.
func (s *Settings) URLConf() ([]urlconf.Node, error) {
	return urlconf.Load(s.baseDir, s.rootURLConf)
}
