package markdown

import "strings"

// ExtractTitle returns the text of the first level-1 heading in doc.
func ExtractTitle(doc string) (string, error) {
	for _, block := range SplitBlocks(doc) {
		kind := Classify(block)
		if kind.Type == Heading && kind.Level == 1 {
			return strings.TrimSpace(strings.TrimPrefix(block, "# ")), nil
		}
	}
	return "", ErrMissingTitle
}
