// Package dom provides DOM node types for the HTML5 parser.
package dom

// NodeType mirrors the DOM specification's nodeType integers, used by
// serializers and test fixtures that key off the numeric value rather than
// a Go type switch.
type NodeType int

const (
	ElementNodeType  NodeType = 1
	TextNodeType     NodeType = 3
	CommentNodeType  NodeType = 8
	DocumentNodeType NodeType = 9
	DoctypeNodeType  NodeType = 10
)

// Node is implemented by every tree-construction output type: Element,
// Text, Comment, Document, DocumentFragment, DocumentType. The tree
// builder operates almost entirely through this interface rather than
// concrete types, so that "append to the current node" works the same
// whether the current node is the document, a regular element, or a
// template's content fragment.
type Node interface {
	Type() NodeType

	Parent() Node
	SetParent(parent Node)
	Children() []Node

	AppendChild(child Node)
	InsertBefore(newChild, refChild Node)
	RemoveChild(child Node)
	ReplaceChild(newChild, oldChild Node) Node
	HasChildNodes() bool

	// Clone copies this node; with deep set, its whole subtree comes with
	// it. Used by the adoption agency algorithm, which clones formatting
	// elements rather than moving the originals (SPEC_FULL.md §4.3).
	Clone(deep bool) Node
}

// baseNode implements the child-list bookkeeping shared by every concrete
// Node type; each type embeds it and adds its own payload (TagName,
// Attributes, Data, ...).
type baseNode struct {
	self     Node
	parent   Node
	children []Node
}

// init records self so AppendChild/InsertBefore/ReplaceChild can set a
// child's parent pointer to the owning concrete node rather than to the
// embedded baseNode itself.
func (n *baseNode) init(self Node) {
	n.self = self
}

func (n *baseNode) Parent() Node       { return n.parent }
func (n *baseNode) SetParent(p Node)   { n.parent = p }
func (n *baseNode) Children() []Node   { return n.children }
func (n *baseNode) HasChildNodes() bool { return len(n.children) > 0 }

func (n *baseNode) AppendChild(child Node) {
	if n.self != nil {
		child.SetParent(n.self)
	}
	n.children = append(n.children, child)
}

func (n *baseNode) InsertBefore(newChild, refChild Node) {
	if refChild == nil {
		n.AppendChild(newChild)
		return
	}
	for i, child := range n.children {
		if child != refChild {
			continue
		}
		if n.self != nil {
			newChild.SetParent(n.self)
		}
		n.children = append(n.children[:i], append([]Node{newChild}, n.children[i:]...)...)
		return
	}
	// refChild isn't actually a child of n; fall back to appending rather
	// than silently dropping newChild.
	n.AppendChild(newChild)
}

func (n *baseNode) RemoveChild(child Node) {
	for i, c := range n.children {
		if c == child {
			child.SetParent(nil)
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *baseNode) ReplaceChild(newChild, oldChild Node) Node {
	for i, c := range n.children {
		if c != oldChild {
			continue
		}
		if n.self != nil {
			newChild.SetParent(n.self)
		}
		oldChild.SetParent(nil)
		n.children[i] = newChild
		return oldChild
	}
	return nil
}
