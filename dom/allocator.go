package dom

import "strings"

// Chunk sizes for each node kind's arena, sized roughly by how often real
// documents use that kind: plenty of elements and text runs, comparatively
// few doctypes or whole documents.
const (
	elementChunkSize   = 128
	textChunkSize      = 256
	commentChunkSize   = 64
	doctypeChunkSize   = 32
	documentChunkSize  = 8
	fragmentChunkSize  = 64
	attributeChunkSize = 128
)

// pool hands out pointers into fixed-size chunks of T, growing by one new
// chunk (abandoning whatever's left of the previous one) once exhausted.
// Used by NodeAllocator to keep parsing a large document from issuing one
// heap allocation per node.
type pool[T any] struct {
	chunk []T
	at    int
	size  int
}

func (p *pool[T]) next() *T {
	if p.at >= len(p.chunk) {
		p.chunk = make([]T, p.size)
		p.at = 0
	}
	v := &p.chunk[p.at]
	p.at++
	return v
}

// NodeAllocator provides arena-style allocation for DOM nodes: one pool per
// concrete node type, since Element/Text/Comment/etc. have different sizes
// and are produced in very different quantities during parsing.
type NodeAllocator struct {
	elements   pool[Element]
	texts      pool[Text]
	comments   pool[Comment]
	doctypes   pool[DocumentType]
	documents  pool[Document]
	fragments  pool[DocumentFragment]
	attributes pool[Attributes]
}

// NewNodeAllocator creates a new allocator for DOM nodes.
func NewNodeAllocator() *NodeAllocator {
	return &NodeAllocator{
		elements:   pool[Element]{size: elementChunkSize},
		texts:      pool[Text]{size: textChunkSize},
		comments:   pool[Comment]{size: commentChunkSize},
		doctypes:   pool[DocumentType]{size: doctypeChunkSize},
		documents:  pool[Document]{size: documentChunkSize},
		fragments:  pool[DocumentFragment]{size: fragmentChunkSize},
		attributes: pool[Attributes]{size: attributeChunkSize},
	}
}

// NewDocument creates a new document node.
func (a *NodeAllocator) NewDocument() *Document {
	d := a.documents.next()
	d.baseNode = baseNode{}
	d.Doctype = nil
	d.QuirksMode = NoQuirks
	d.init(d)
	return d
}

// NewDocumentFragment creates a new document fragment.
func (a *NodeAllocator) NewDocumentFragment() *DocumentFragment {
	df := a.fragments.next()
	df.baseNode = baseNode{}
	df.init(df)
	return df
}

// NewElement creates a new HTML-namespace element; tagName is lowercased
// per the tree construction algorithm's element-creation step.
func (a *NodeAllocator) NewElement(tagName string) *Element {
	e := a.elements.next()
	e.baseNode = baseNode{}
	e.TagName = strings.ToLower(tagName)
	e.Namespace = NamespaceHTML
	e.Attributes = a.newAttributes()
	e.TemplateContent = nil
	e.init(e)
	return e
}

// NewElementNS creates a new element in an explicit namespace (SVG,
// MathML), with tagName used verbatim — foreign tag names carry
// significant casing the caller has already adjusted.
func (a *NodeAllocator) NewElementNS(tagName, namespace string) *Element {
	e := a.elements.next()
	e.baseNode = baseNode{}
	e.TagName = tagName
	e.Namespace = namespace
	e.Attributes = a.newAttributes()
	e.TemplateContent = nil
	e.init(e)
	return e
}

// NewText creates a new text node.
func (a *NodeAllocator) NewText(data string) *Text {
	t := a.texts.next()
	t.parent = nil
	t.Data = data
	return t
}

// NewComment creates a new comment node.
func (a *NodeAllocator) NewComment(data string) *Comment {
	c := a.comments.next()
	c.parent = nil
	c.Data = data
	return c
}

// NewDocumentType creates a new DOCTYPE node.
func (a *NodeAllocator) NewDocumentType(name, publicID, systemID string) *DocumentType {
	dt := a.doctypes.next()
	dt.parent = nil
	dt.Name = name
	dt.PublicID = publicID
	dt.SystemID = systemID
	return dt
}

func (a *NodeAllocator) newAttributes() *Attributes {
	attr := a.attributes.next()
	attr.items = attr.items[:0]
	return attr
}
