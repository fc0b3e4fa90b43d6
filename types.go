package mdsite

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown document (a "# " title is required)
	CSS      string // Extra page CSS, appended after the converter style (optional)
}

// Page is the result of converting one document.
type Page struct {
	Title   string // Text of the first "# " heading
	Content string // Engine output placed in the template's {{ Content }}
	HTML    []byte // Complete page after CSS injection and base path rewrite
}

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implementations may load from filesystem, embedded assets, a database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine           string
	templateInput    string
	styleInput       string
	basePath         string
	themeDir         string
	resolvedStyle    string
	resolvedTemplate string
}

// defaultBasePath leaves root-relative URLs unchanged.
const defaultBasePath = "/"

// WithEngine selects the markdown engine by name ("native", "goldmark",
// "gomarkdown"). Unknown names fail in NewConverter with ErrUnknownEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate sets the page template.
// Accepts a template name ("default"), a file path ("./page.html"), or
// template text containing {{ Title }} and {{ Content }}.
func WithTemplate(input string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = input
	}
}

// WithStyle sets the page CSS.
// Accepts a style name ("minimal"), a file path ("./site.css"), or CSS content.
func WithStyle(input string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = input
	}
}

// WithBasePath prefixes root-relative href and src values with basePath.
// The path must start with "/". "/" leaves URLs unchanged.
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithThemeDir loads named styles and templates from dir, falling back to the
// built-in theme. Ignored when WithAssetLoader is also given.
func WithThemeDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.themeDir = dir
	}
}

// WithAssetLoader sets a custom loader for named styles and templates.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}

// validateBasePath checks that a base path is absolute within the site.
func validateBasePath(basePath string) error {
	if !strings.HasPrefix(basePath, "/") {
		return fmt.Errorf("%w: %q must start with \"/\"", ErrInvalidBasePath, basePath)
	}
	return nil
}

// Engines returns the names accepted by WithEngine, sorted.
func Engines() []string {
	return pipeline.Engines()
}
