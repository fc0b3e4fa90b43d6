package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedNode is returned when a tree cannot be serialized.
var ErrMalformedNode = errors.New("malformed node")

// voidElements render without a closing tag when their value is empty.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// Render serializes n to HTML. Values and attribute values are written as-is,
// without escaping.
func Render(n Node) (string, error) {
	var sb strings.Builder
	if err := write(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func write(sb *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return fmt.Errorf("%w: nil leaf", ErrMalformedNode)
		}
		writeLeaf(sb, n)
		return nil
	case *Parent:
		if n == nil {
			return fmt.Errorf("%w: nil parent", ErrMalformedNode)
		}
		return writeParent(sb, n)
	case nil:
		return fmt.Errorf("%w: nil node", ErrMalformedNode)
	default:
		return fmt.Errorf("%w: unexpected node type %T", ErrMalformedNode, n)
	}
}

func writeLeaf(sb *strings.Builder, n *Leaf) {
	if n.Tag == "" {
		sb.WriteString(n.Value)
		return
	}
	openTag(sb, n.Tag, n.Attrs)
	if voidElements[n.Tag] && n.Value == "" {
		return
	}
	sb.WriteString(n.Value)
	closeTag(sb, n.Tag)
}

func writeParent(sb *strings.Builder, n *Parent) error {
	if n.Tag == "" {
		return fmt.Errorf("%w: parent without tag", ErrMalformedNode)
	}
	if n.Children == nil {
		return fmt.Errorf("%w: <%s> has no children list", ErrMalformedNode, n.Tag)
	}
	openTag(sb, n.Tag, n.Attrs)
	for _, child := range n.Children {
		if err := write(sb, child); err != nil {
			return err
		}
	}
	closeTag(sb, n.Tag)
	return nil
}

func openTag(sb *strings.Builder, tag string, attrs []Attr) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	sb.WriteString(RenderAttrs(attrs))
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// RenderAttrs returns attrs as ` key="value"` pairs in order, or "" when
// there are none.
func RenderAttrs(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	return sb.String()
}
