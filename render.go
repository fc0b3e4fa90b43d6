package mdsite

import "github.com/alnah/go-mdsite/internal/markdown"

// Render converts a markdown document into the HTML of its document tree,
// a single <div> holding one element per block.
//
// Returns ErrUnclosedDelimiter if a **, _ or ` delimiter is left open.
func Render(document string) (string, error) {
	return markdown.Render(document)
}

// ExtractTitle returns the text of the first level-1 heading ("# ") in the
// document, trimmed of surrounding whitespace.
//
// Returns ErrMissingTitle if no block starts with "# ".
func ExtractTitle(document string) (string, error) {
	return markdown.ExtractTitle(document)
}
