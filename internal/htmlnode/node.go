// Package htmlnode models the element tree produced by the markdown core and
// serializes it to HTML text.
package htmlnode

// Node is an element of the tree. It is implemented by *Leaf and *Parent only.
type Node interface {
	node()
}

// Attr is a single HTML attribute. Attributes are kept in a slice so that
// rendering follows insertion order.
type Attr struct {
	Key string
	Val string
}

// Leaf is a node without children. A Leaf with an empty Tag renders its
// Value verbatim.
type Leaf struct {
	Tag   string
	Value string
	Attrs []Attr
}

// Parent is a node holding an ordered list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// NewText returns an untagged leaf rendered as raw text.
func NewText(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewParent returns a parent node. A nil children slice is normalized to an
// empty one; build a Parent literal to represent a missing child list.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	if children == nil {
		children = []Node{}
	}
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}
