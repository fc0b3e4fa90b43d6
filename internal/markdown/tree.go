package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// Render converts a document to an HTML string wrapped in a root <div>.
func Render(doc string) (string, error) {
	root, err := ToHTMLNode(doc)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// ToHTMLNode builds the element tree for a document: a root div holding one
// node per block, in document order.
func ToHTMLNode(doc string) (*htmlnode.Parent, error) {
	blocks := SplitBlocks(doc)
	children := make([]htmlnode.Node, 0, len(blocks))
	for _, block := range blocks {
		n, err := BlockToNode(block, Classify(block))
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return htmlnode.NewParent("div", children), nil
}

// BlockToNode builds the element for a single classified block.
func BlockToNode(block string, kind BlockKind) (htmlnode.Node, error) {
	switch kind.Type {
	case Heading:
		return headingNode(block, kind.Level)
	case Code:
		return codeNode(block), nil
	case Quote:
		return quoteNode(block)
	case UnorderedList:
		return listNode(block, "ul", func(line string) string { return strings.TrimPrefix(line, "- ") })
	case OrderedList:
		return listNode(block, "ol", func(line string) string {
			_, item, _ := strings.Cut(line, ". ")
			return item
		})
	default:
		return inlineParent("p", block)
	}
}

// TokenToNode maps an inline token to a leaf.
func TokenToNode(tok Token) (htmlnode.Node, error) {
	switch tok.Type {
	case Text:
		return htmlnode.NewText(tok.Content), nil
	case Bold:
		return htmlnode.NewLeaf("b", tok.Content), nil
	case Italic:
		return htmlnode.NewLeaf("i", tok.Content), nil
	case CodeSpan:
		return htmlnode.NewLeaf("code", tok.Content), nil
	case Link:
		return htmlnode.NewLeaf("a", tok.Content, htmlnode.Attr{Key: "href", Val: tok.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Val: tok.URL},
			htmlnode.Attr{Key: "alt", Val: tok.Content},
		), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownToken, tok.Type)
	}
}

// inlineChildren tokenizes text and maps every token to a leaf.
func inlineChildren(text string) ([]htmlnode.Node, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(tokens))
	for _, tok := range tokens {
		n, err := TokenToNode(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func inlineParent(tag, text string) (htmlnode.Node, error) {
	children, err := inlineChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func headingNode(block string, level int) (htmlnode.Node, error) {
	var text string
	if level+1 <= len(block) {
		text = block[level+1:]
	}
	return inlineParent("h"+strconv.Itoa(level), text)
}

// codeNode strips the fences and a language line, then wraps the text in
// <pre><code>. Code text is never tokenized.
func codeNode(block string) htmlnode.Node {
	var inner string
	if len(block) >= 2*len(codeFence) {
		inner = block[len(codeFence) : len(block)-len(codeFence)]
	}

	lines := strings.Split(inner, "\n")
	if first := lines[0]; strings.TrimSpace(first) != "" && !strings.HasPrefix(first, " ") {
		lines = lines[1:]
	}
	text := strings.TrimSpace(strings.Join(lines, "\n")) + "\n"

	code := htmlnode.NewLeaf("code", text)
	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

func quoteNode(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "> "):
			stripped = append(stripped, line[2:])
		case strings.HasPrefix(line, ">"):
			stripped = append(stripped, line[1:])
		}
	}
	return inlineParent("blockquote", strings.Join(stripped, "\n"))
}

func listNode(block, tag string, itemText func(line string) string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		item, err := inlineParent("li", itemText(line))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}
