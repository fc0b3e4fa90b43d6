package markdown

import (
	"strconv"
	"strings"
)

// BlockType is the structural kind of a block.
type BlockType int

const (
	Paragraph BlockType = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the name of the block type.
func (t BlockType) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// BlockKind is the result of classifying a block. Level is 1..6 for headings
// and 0 for every other type.
type BlockKind struct {
	Type  BlockType
	Level int
}

const (
	codeFence       = "```"
	maxHeadingLevel = 6
)

// Classify returns the kind of a block. Rules are tried in order and the
// first match wins; anything else is a paragraph.
func Classify(block string) BlockKind {
	if level := headingLevel(block); level > 0 {
		return BlockKind{Type: Heading, Level: level}
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return BlockKind{Type: Code}
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, ">") }):
		return BlockKind{Type: Quote}
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, "- ") }):
		return BlockKind{Type: UnorderedList}
	case allLines(lines, func(i int, line string) bool { return strings.HasPrefix(line, orderedPrefix(i+1)) }):
		return BlockKind{Type: OrderedList}
	}
	return BlockKind{Type: Paragraph}
}

// headingLevel returns the number of leading '#' characters when they are
// followed by a space and there are at most six of them, or 0.
func headingLevel(block string) int {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0
	}
	if level >= len(block) || block[level] != ' ' {
		return 0
	}
	return level
}

func orderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}

func allLines(lines []string, match func(i int, line string) bool) bool {
	for i, line := range lines {
		if !match(i, line) {
			return false
		}
	}
	return true
}
