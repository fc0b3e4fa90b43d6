package mdsite

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.PageInjector         = (*pipeline.PageTemplate)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ AssetLoader                   = (*assets.AssetResolver)(nil)
)

// Converter orchestrates the markdown-to-page conversion pipeline.
// Create with NewConverter and use Convert for each document.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pageInjector  pipeline.PageInjector
	cssInjector   pipeline.CSSInjector
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithTemplate, WithStyle).
// Returns error if the engine is unknown, the base path is invalid, or asset
// loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:   pipeline.EngineNative,
			basePath: defaultBasePath,
		},
		preprocessor: &pipeline.SourcePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := validateBasePath(c.cfg.basePath); err != nil {
		return nil, err
	}

	// Theme directory applies only when no loader was given.
	if c.assetLoader == nil {
		resolver, err := assets.NewAssetResolver(c.cfg.themeDir)
		if err != nil {
			return nil, err
		}
		c.assetLoader = resolver
	}

	// Create engine if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		conv, err := pipeline.NewHTMLConverter(c.cfg.engine)
		if err != nil {
			return nil, err
		}
		c.htmlConverter = conv
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	if c.pageInjector == nil {
		page, err := pipeline.NewPageTemplate(c.cfg.resolvedTemplate)
		if err != nil {
			return nil, fmt.Errorf("initializing page template: %w", err)
		}
		c.pageInjector = page
	}

	return c, nil
}

// Convert runs the full pipeline and returns the page for one document.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title, err := markdown.ExtractTitle(mdContent)
	if err != nil {
		return nil, err
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, err := c.pageInjector.InjectPage(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("injecting page: %w", err)
	}

	// Converter style first (base), input CSS last (can override)
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err = pipeline.RewriteBasePath(htmlContent, c.cfg.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &Page{
		Title:   title,
		Content: content,
		HTML:    []byte(htmlContent),
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// An empty input leaves the page unstyled.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveTemplate resolves the template input (name, path, or template text)
// to template text. An empty input selects the built-in default template.
func (c *Converter) resolveTemplate() error {
	input := c.cfg.templateInput
	if input == "" {
		input = assets.DefaultTemplateName
	}

	// Template text? (contains {{)
	if fileutil.IsTemplate(input) {
		c.cfg.resolvedTemplate = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading template file %q: %w", input, err)
		}
		c.cfg.resolvedTemplate = string(content)
		return nil
	}

	tmpl, err := c.assetLoader.LoadTemplate(input)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", input, err)
	}
	c.cfg.resolvedTemplate = tmpl
	return nil
}
