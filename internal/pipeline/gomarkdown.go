package pipeline

import (
	"context"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
)

// GomarkdownConverter converts markdown using gomarkdown. Parsers and
// renderers are stateful, so each call builds its own.
type GomarkdownConverter struct{}

// ToHTML converts Markdown content to an HTML fragment rooted at a <div>.
func (c *GomarkdownConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return convertWithContext(ctx, func() (string, error) {
		p := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.AutoHeadingIDs)
		doc := p.Parse(markdown.NormalizeNewlines([]byte(content)))

		renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
		return rootOpen + string(markdown.Render(doc, renderer)) + rootClose, nil
	})
}
