package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/nao1215/routemap/internal/config"
	"github.com/nao1215/routemap/internal/log"
	"github.com/nao1215/routemap/internal/settings"
	"github.com/nao1215/routemap/internal/urlconf"
	"github.com/spf13/cobra"
)

// project is a configured site ready to be inspected.
type project struct {
	cfg      *config.Config
	settings *settings.Settings
	routes   []urlconf.Node
	logger   *slog.Logger
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the .routemap file, the environment and
// cobra command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ProjectRoot, err = cmd.Flags().GetString("project-root")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; otherwise a missing file
	// just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath, cfg.ProjectRoot)
	switch {
	case configPath != "":
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(cfg.EnvFilePath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.EnvFilePath(), err)
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("settings") {
		cfg.SettingsModule, err = cmd.Flags().GetString("settings")
		if err != nil {
			return nil, err
		}
	}

	if f := cmd.Flags().Lookup("json"); f != nil {
		cfg.JSONReport, err = cmd.Flags().GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// loadProject configures settings and loads the root URLconf.
func loadProject(cmd *cobra.Command) (*project, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)

	root, err := filepath.Abs(cfg.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", cfg.ProjectRoot, err)
	}

	set, err := settings.Setup(root, cfg.SettingsModule)
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "settings", set)

	routes, err := set.URLConf()
	if err != nil {
		return nil, err
	}
	logger.Debug("URLconf loaded", "module", set.RootURLConf(), "top_level_entries", len(routes))

	return &project{cfg: cfg, settings: set, routes: routes, logger: logger}, nil
}
