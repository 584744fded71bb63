package fbx

import (
	"bytes"
	"unicode/utf8"

	"github.com/scigolib/fbx/internal/core"
)

// NodeView is a read-only handle onto a parsed Node, offering name-based
// traversal (§4.6) over the tree that ReadFBX produced.
type NodeView struct {
	node *core.Node
}

func wrapNode(n *core.Node) *NodeView {
	if n == nil {
		return nil
	}
	return &NodeView{node: n}
}

func wrapNodes(nodes []*core.Node) []*NodeView {
	views := make([]*NodeView, len(nodes))
	for i, n := range nodes {
		views[i] = wrapNode(n)
	}
	return views
}

// Name returns the node's raw name bytes.
func (n *NodeView) Name() []byte {
	return n.node.Name
}

// Attributes returns the node's attribute list, in file order.
func (n *NodeView) Attributes() []Attribute {
	return n.node.Attributes
}

// SingleAttribute returns the node's sole attribute. ok is false unless the
// node has exactly one attribute.
func (n *NodeView) SingleAttribute() (Attribute, bool) {
	if len(n.node.Attributes) != 1 {
		return Attribute{}, false
	}
	return n.node.Attributes[0], true
}

// AllChildren returns every immediate child, in file order, regardless of
// name.
func (n *NodeView) AllChildren() []*NodeView {
	return wrapNodes(n.node.Children)
}

// Children returns every immediate child named name, in file order.
func (n *NodeView) Children(name []byte) []*NodeView {
	var matches []*core.Node
	for _, c := range n.node.Children {
		if bytes.Equal(c.Name, name) {
			matches = append(matches, c)
		}
	}
	return wrapNodes(matches)
}

// FindChild returns the first immediate child named name. ok is false if no
// such child exists.
func (n *NodeView) FindChild(name []byte) (*NodeView, bool) {
	for _, c := range n.node.Children {
		if bytes.Equal(c.Name, name) {
			return wrapNode(c), true
		}
	}
	return nil, false
}

// Find returns the first root-level node named name. ok is false if no such
// root exists.
func (d *Document) Find(name []byte) (*NodeView, bool) {
	for _, r := range d.doc.Roots {
		if bytes.Equal(r.Name, name) {
			return wrapNode(r), true
		}
	}
	return nil, false
}

// DecodeUTF8String validates and converts a Str attribute's raw bytes to a
// Go string. ok is false iff a is not a Str attribute; this is the only
// path that can produce InvalidUTF8Error, since the parser itself never
// validates Str payload encoding (§4.2.3: Str is an arbitrary byte string).
func DecodeUTF8String(a Attribute) (value string, ok bool, err error) {
	b, ok := a.AsBytesString()
	if !ok {
		return "", false, nil
	}
	if !utf8.Valid(b) {
		return "", true, &InvalidUTF8Error{Context: "string attribute"}
	}
	return string(b), true, nil
}
