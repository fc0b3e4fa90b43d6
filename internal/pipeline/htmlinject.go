package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Sentinel errors for page template handling.
var (
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrTemplateRender = errors.New("page template rendering failed")
)

// Placeholder names available in page templates as {{ Title }} and {{ Content }}.
const (
	titlePlaceholder   = "Title"
	contentPlaceholder = "Content"
)

// PageInjector defines the contract for placing converted content in a page.
type PageInjector interface {
	InjectPage(ctx context.Context, title, content string) (string, error)
}

// PageTemplate renders a page from a template using the {{ Title }} and
// {{ Content }} placeholders. Values are inserted verbatim.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate parses a page template.
func NewPageTemplate(tmplContent string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Funcs(placeholders("", "")).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// InjectPage executes the template with the given title and content.
// Safe for concurrent use: each call binds placeholders on its own clone.
func (p *PageTemplate) InjectPage(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := p.tmpl.Clone()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	tmpl.Funcs(placeholders(title, content))

	var sb strings.Builder
	if err := tmpl.Execute(&sb, nil); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return sb.String(), nil
}

func placeholders(title, content string) template.FuncMap {
	return template.FuncMap{
		titlePlaceholder:   func() string { return title },
		contentPlaceholder: func() string { return content },
	}
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface checks.
var (
	_ PageInjector = (*PageTemplate)(nil)
	_ CSSInjector  = (*CSSInjection)(nil)
)
