package xmlconv

// Attr is a single XML attribute as a name/value pair. Names are unique
// within a node and appear in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed XML document: its tag name, attributes and
// child elements in document order, and its character data. Namespace
// prefixes are already stripped by the parser. The tree is read-only input
// for the converter and is never mutated.
//
// Text holds the element's trimmed character data; an empty string means the
// element has no text content. Text extracted from CDATA sections may be
// malformed — a known limitation inherited from the upstream parser.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// HasText reports whether the node carries non-whitespace character data.
func (n *Node) HasText() bool {
	return n.Text != ""
}

// IsEmpty reports whether the node has no attributes, no child elements and
// no text, i.e. an element like <x/>.
func (n *Node) IsEmpty() bool {
	return len(n.Attrs) == 0 && len(n.Children) == 0 && n.Text == ""
}
