package core

// Node is a named record with attributes and ordered children — the
// recursive unit of an FBX document. A Node is immutable once parsed; it
// never references its parent or siblings, so the tree is acyclic by
// construction.
type Node struct {
	Name       []byte
	Attributes []Attribute
	Children   []*Node
}
