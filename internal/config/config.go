package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "routemap"

	// DefaultSettingsModule is the settings module used when neither the
	// --settings flag, DJANGO_SETTINGS_MODULE nor the .routemap file name one.
	DefaultSettingsModule = "simple_multivendor_site.settings"

	// SettingsModuleEnv is the environment variable holding the settings
	// module identifier. It may also be set through a .env file.
	SettingsModuleEnv = "DJANGO_SETTINGS_MODULE"

	// DefaultEnvFile is the dotenv file loaded from the project root.
	DefaultEnvFile = ".env"
)

// Config holds all configuration options for routemap.
// It is populated from CLI flags, the environment and the .routemap file,
// then passed through the application rather than kept in global state.
type Config struct {
	// ProjectRoot is the directory the tool runs against. Settings modules
	// and .env files are looked up relative to it.
	ProjectRoot string

	// SettingsModule is the dotted settings module identifier,
	// e.g. "simple_multivendor_site.settings".
	SettingsModule string

	// ExcludeModules are extra module substrings whose routes are left out
	// of the report, on top of the built-in administrative module.
	ExcludeModules []string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is the explicit .routemap path given with --config.
	// If empty, FindConfigFile searches the usual locations.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ProjectRoot:    ".",
		SettingsModule: DefaultSettingsModule,
	}
}

// ApplyFile merges values from a .routemap file into the configuration.
// File values only fill in what flags and the environment left unset, so
// callers apply the file before environment and flag overrides.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.SettingsModule != "" {
		c.SettingsModule = f.SettingsModule
	}
	c.ExcludeModules = append(c.ExcludeModules, f.ExcludeModules...)
}

// ApplyEnv overrides the settings module with DJANGO_SETTINGS_MODULE when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(SettingsModuleEnv); v != "" {
		c.SettingsModule = v
	}
}

// EnvFilePath returns the path of the .env file inside the project root.
func (c *Config) EnvFilePath() string {
	return filepath.Join(c.ProjectRoot, DefaultEnvFile)
}

// XDGConfigDir returns the XDG config directory for routemap.
// On Linux: ~/.config/routemap
// On macOS: ~/Library/Application Support/routemap
// On Windows: %APPDATA%\routemap
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		return ErrNoProjectRoot
	}
	if c.SettingsModule == "" {
		return ErrNoSettingsModule
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	for _, m := range c.ExcludeModules {
		if m == "" {
			return ErrEmptyExcludeModule
		}
	}
	return nil
}
