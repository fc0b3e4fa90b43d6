package markdown

import (
	"fmt"
	"strings"
)

// TokenType is the kind of an inline run.
type TokenType int

const (
	Text TokenType = iota
	Bold
	Italic
	CodeSpan
	Link
	Image
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case CodeSpan:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Token is an inline run of text. URL is set for links and images only;
// for images Content holds the alt text.
type Token struct {
	Type    TokenType
	Content string
	URL     string
}

// delimiterPasses are applied in order. Later passes only see text left
// over by earlier ones, so markup does not nest.
var delimiterPasses = []struct {
	delim string
	typ   TokenType
}{
	{"**", Bold},
	{"_", Italic},
	{"`", CodeSpan},
}

// Tokenize converts a block's text into inline tokens. Empty tokens are
// dropped; text that produces no tokens yields a single empty text token.
func Tokenize(text string) ([]Token, error) {
	tokens := []Token{{Type: Text, Content: text}}

	var err error
	for _, pass := range delimiterPasses {
		tokens, err = SplitDelimiter(tokens, pass.delim, pass.typ)
		if err != nil {
			return nil, err
		}
	}
	tokens = SplitImages(tokens)
	tokens = SplitLinks(tokens)

	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Content != "" {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return []Token{{Type: Text}}, nil
	}
	return out, nil
}

// SplitDelimiter splits every text token on delim. Pieces at even positions
// stay text, pieces at odd positions become typ. Other tokens pass through.
// A delimiter without its closing partner yields ErrUnclosedDelimiter.
func SplitDelimiter(tokens []Token, delim string, typ TokenType) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != Text {
			out = append(out, tok)
			continue
		}
		parts := strings.Split(tok.Content, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnclosedDelimiter, delim, tok.Content)
		}
		for i, part := range parts {
			if i%2 == 1 {
				out = append(out, Token{Type: typ, Content: part})
				continue
			}
			if part != "" {
				out = append(out, Token{Type: Text, Content: part})
			}
		}
	}
	return out, nil
}

// SplitImages replaces image markup inside text tokens with image tokens.
func SplitImages(tokens []Token) []Token {
	return splitMarkup(tokens, Image, ExtractImages, func(m Match) string {
		return "![" + m.Label + "](" + m.URL + ")"
	})
}

// SplitLinks replaces link markup inside text tokens with link tokens.
func SplitLinks(tokens []Token) []Token {
	return splitMarkup(tokens, Link, ExtractLinks, func(m Match) string {
		return "[" + m.Label + "](" + m.URL + ")"
	})
}

func splitMarkup(tokens []Token, typ TokenType, extract func(string) []Match, markup func(Match) string) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != Text {
			out = append(out, tok)
			continue
		}
		matches := extract(tok.Content)
		if len(matches) == 0 {
			out = append(out, tok)
			continue
		}

		rest := tok.Content
		for _, m := range matches {
			before, after, found := strings.Cut(rest, markup(m))
			if !found {
				break
			}
			if before != "" {
				out = append(out, Token{Type: Text, Content: before})
			}
			out = append(out, Token{Type: typ, Content: m.Label, URL: m.URL})
			rest = after
		}
		if rest != "" {
			out = append(out, Token{Type: Text, Content: rest})
		}
	}
	return out
}
