package markdown

import "strings"

const blockSeparator = "\n\n"

// SplitBlocks splits a document into blocks separated by a blank line.
// Blocks are trimmed and empty ones are dropped. Newlines inside a block are
// preserved.
func SplitBlocks(doc string) []string {
	parts := strings.Split(doc, blockSeparator)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}
