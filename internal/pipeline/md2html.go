package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/alnah/go-mdsite/internal/markdown"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownEngine  = errors.New("unknown markdown engine")
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative     = "native"
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

// rootTag wraps every engine's output so pages look the same regardless of
// the engine used.
const (
	rootOpen  = "<div>"
	rootClose = "</div>"
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

var engines = map[string]func() HTMLConverter{
	EngineNative:     func() HTMLConverter { return &NativeConverter{} },
	EngineGoldmark:   func() HTMLConverter { return NewGoldmarkConverter() },
	EngineGomarkdown: func() HTMLConverter { return &GomarkdownConverter{} },
}

// Engines returns the sorted list of engine names.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewHTMLConverter returns the converter registered under engine. An empty
// name selects the native engine.
func NewHTMLConverter(engine string) (HTMLConverter, error) {
	if engine == "" {
		engine = EngineNative
	}
	newConverter, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	return newConverter(), nil
}

// NativeConverter converts the block/inline dialect handled by the markdown
// package. Errors keep their markdown sentinel in the chain.
type NativeConverter struct{}

// ToHTML converts Markdown content to an HTML fragment rooted at a <div>.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := markdown.Render(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// convertWithContext runs convert in a goroutine so callers can give up on
// cancellation. Third-party engines do not accept a context.
func convertWithContext(ctx context.Context, convert func() (string, error)) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		html, err := convert()
		done <- result{html: html, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
	_ HTMLConverter = (*GomarkdownConverter)(nil)
)
