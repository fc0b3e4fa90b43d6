package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrInvalidEngine   = errors.New("invalid engine")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrUnsafeOutputDir = errors.New("unsafe output directory")
)

// DefaultFileName is the config name looked up when none is given.
const DefaultFileName = "mdsite"

// Field length limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxURLLength  = 2048 // Browser limit
	MaxNameLength = 100  // Asset and engine names
	MaxAddrLength = 255  // host:port
	MaxWorkers    = 64
)

// Config holds all configuration for a site build.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Static  StaticConfig  `yaml:"static"`
	Output  OutputConfig  `yaml:"output"`
	Site    SiteConfig    `yaml:"site"`
	Assets  AssetsConfig  `yaml:"assets"`
	Build   BuildConfig   `yaml:"build"`
	Serve   ServeConfig   `yaml:"serve"`
}

// ContentConfig defines where markdown pages are read from.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the directory copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Empty = no static files
}

// OutputConfig defines the build destination. It is emptied on every build.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// SiteConfig defines how pages are rendered.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // Prefix for root-relative links, e.g. "/blog/"
	Template string `yaml:"template"` // Template name or path to an .html file
	Style    string `yaml:"style"`    // Style name or path to a .css file (empty = none)
	Engine   string `yaml:"engine"`   // native, goldmark or gomarkdown
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	ThemeDir string `yaml:"themeDir"` // Empty = use embedded assets
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// ServeConfig defines the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: "content"},
		Static:  StaticConfig{Dir: "static"},
		Output:  OutputConfig{Dir: "public"},
		Site: SiteConfig{
			BasePath: "/",
			Template: "default",
			Engine:   pipeline.EngineNative,
		},
		Serve: ServeConfig{Addr: ":8888"},
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually or apply overrides.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"static.dir", c.Static.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"site.basePath", c.Site.BasePath, MaxURLLength},
		{"site.template", c.Site.Template, MaxPathLength},
		{"site.style", c.Site.Style, MaxPathLength},
		{"site.engine", c.Site.Engine, MaxNameLength},
		{"assets.themeDir", c.Assets.ThemeDir, MaxPathLength},
		{"serve.addr", c.Serve.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath must start with \"/\", got %q", ErrInvalidBasePath, c.Site.BasePath)
	}
	if c.Site.Engine != "" && !slices.Contains(pipeline.Engines(), c.Site.Engine) {
		return fmt.Errorf("%w: site.engine %q (must be one of %s)",
			ErrInvalidEngine, c.Site.Engine, strings.Join(pipeline.Engines(), ", "))
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Build.Workers)
	}

	return c.validateOutputDir()
}

// validateOutputDir refuses output directories whose removal would destroy
// the site sources or the working directory. Paths are compared in absolute
// form; a path that cannot be resolved is treated as unsafe.
func (c *Config) validateOutputDir() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir is empty", ErrUnsafeOutputDir)
	}
	out, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsafeOutputDir, c.Output.Dir, err)
	}
	if out == filepath.Dir(out) {
		return fmt.Errorf("%w: %q is a filesystem root", ErrUnsafeOutputDir, c.Output.Dir)
	}

	cwd, err := os.Getwd()
	if err != nil || isWithin(cwd, out) {
		return fmt.Errorf("%w: %q contains the working directory", ErrUnsafeOutputDir, c.Output.Dir)
	}

	for _, src := range []struct{ name, dir string }{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
	} {
		if src.dir == "" {
			continue
		}
		if isWithin(src.dir, out) {
			return fmt.Errorf("%w: %q contains %s %q", ErrUnsafeOutputDir, c.Output.Dir, src.name, src.dir)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it. Relative paths
// are resolved against the working directory first. When either path cannot
// be resolved or related, it reports true so callers fail closed.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return true
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML, as written by "mdsite init".
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory first and then
// in the user config directory (~/.config/mdsite/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DefaultFileName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
