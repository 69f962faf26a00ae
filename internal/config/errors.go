package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is.
var (
	// ErrNoProjectRoot is returned when the project root directory is empty.
	ErrNoProjectRoot = errors.New("no project root specified")

	// ErrNoSettingsModule is returned when no settings module identifier
	// could be determined from flags, environment, config file or defaults.
	ErrNoSettingsModule = errors.New("no settings module specified")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyExcludeModule is returned when the .routemap file lists an
	// empty module identifier under excludeModules. An empty substring would
	// match every module and silently empty the report.
	ErrEmptyExcludeModule = errors.New("invalid excludeModules entry: must not be empty")
)
