package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix marks environment variables read by mdsite.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR: markdown content directory
	StaticDir  string // MDSITE_STATIC_DIR: static files directory
	OutputDir  string // MDSITE_OUTPUT_DIR: output directory
	BasePath   string // MDSITE_BASE_PATH: prefix for root-relative links
	Template   string // MDSITE_TEMPLATE: page template name or path
	Style      string // MDSITE_STYLE: CSS style name or path
	Engine     string // MDSITE_ENGINE: markdown engine
	ThemeDir   string // MDSITE_THEME_DIR: theme directory
	Workers    int    // MDSITE_WORKERS: parallel workers
	Addr       string // MDSITE_ADDR: serve listen address
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_STYLE":       true,
	"MDSITE_ENGINE":      true,
	"MDSITE_THEME_DIR":   true,
	"MDSITE_WORKERS":     true,
	"MDSITE_ADDR":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MDSITE_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDSITE_CONFIG"),
		ContentDir: os.Getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  os.Getenv("MDSITE_STATIC_DIR"),
		OutputDir:  os.Getenv("MDSITE_OUTPUT_DIR"),
		BasePath:   os.Getenv("MDSITE_BASE_PATH"),
		Template:   os.Getenv("MDSITE_TEMPLATE"),
		Style:      os.Getenv("MDSITE_STYLE"),
		Engine:     os.Getenv("MDSITE_ENGINE"),
		ThemeDir:   os.Getenv("MDSITE_THEME_DIR"),
		Addr:       os.Getenv("MDSITE_ADDR"),
	}

	// Parse int for workers
	if workers := os.Getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDSITE_* variables.
// Helps catch typos like MDSITE_OUTPUT instead of MDSITE_OUTPUT_DIR.
func warnUnknownEnvVars(log *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied afterwards.
// Precedence: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfNotEmpty(&cfg.Content.Dir, env.ContentDir)
	setIfNotEmpty(&cfg.Static.Dir, env.StaticDir)
	setIfNotEmpty(&cfg.Output.Dir, env.OutputDir)
	setIfNotEmpty(&cfg.Site.BasePath, env.BasePath)
	setIfNotEmpty(&cfg.Site.Template, env.Template)
	setIfNotEmpty(&cfg.Site.Style, env.Style)
	setIfNotEmpty(&cfg.Site.Engine, env.Engine)
	setIfNotEmpty(&cfg.Assets.ThemeDir, env.ThemeDir)
	setIfNotEmpty(&cfg.Serve.Addr, env.Addr)
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

// setIfNotEmpty overwrites dst when val is set.
func setIfNotEmpty(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
