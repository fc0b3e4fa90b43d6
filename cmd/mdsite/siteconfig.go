package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// loadSiteConfig resolves the configuration for a command.
// Precedence: CLI flags > env vars > config file > defaults.
// Without --config or MDSITE_CONFIG, ./mdsite.yaml (or .yml) is used when present.
func loadSiteConfig(common *commonFlags, site *siteFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Logger)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" && hasLocalConfig() {
		name = config.DefaultFileName
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		env.Logger.Debug("loaded config", "name", name)
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(site, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// hasLocalConfig reports whether the working directory holds a default config file.
func hasLocalConfig() bool {
	return fileutil.FileExists(config.DefaultFileName+".yaml") ||
		fileutil.FileExists(config.DefaultFileName+".yml")
}

// mergeFlags applies CLI flag values to config (CLI wins).
func mergeFlags(f *siteFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Content.Dir, f.content)
	setIfNotEmpty(&cfg.Static.Dir, f.static)
	setIfNotEmpty(&cfg.Output.Dir, f.output)
	setIfNotEmpty(&cfg.Site.Template, f.template)
	setIfNotEmpty(&cfg.Site.Style, f.style)
	setIfNotEmpty(&cfg.Site.BasePath, f.basePath)
	setIfNotEmpty(&cfg.Site.Engine, f.engine)
	setIfNotEmpty(&cfg.Assets.ThemeDir, f.themeDir)
	if f.workers > 0 {
		cfg.Build.Workers = f.workers
	}
}
