// Package tokenizer implements the HTML5 tokenization algorithm.
package tokenizer

// TokenKind tags the Token sum type with one of the six token classes
// "13.2.5 Tokenization" defines the tree builder ever sees: DOCTYPE,
// StartTag, EndTag, Comment, Character, EOF. Error is this package's own
// addition for consumers that want a token-shaped view of a parse error;
// the Tokenizer itself never emits an Error token and reports parse errors
// only through Tokenizer.Errors.
type TokenKind int

const (
	Error TokenKind = iota
	DOCTYPE
	StartTag
	EndTag
	Comment
	Character
	EOF
)

var tokenKindNames = map[TokenKind]string{
	Error:     "Error",
	DOCTYPE:   "DOCTYPE",
	StartTag:  "StartTag",
	EndTag:    "EndTag",
	Comment:   "Comment",
	Character: "Character",
	EOF:       "EOF",
}

func (t TokenKind) String() string {
	if name, ok := tokenKindNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Attr is a single HTML attribute: a name/value pair, plus a namespace for
// the handful of foreign (SVG/MathML) attributes the standard assigns one
// (xlink:href and friends).
type Attr struct {
	Namespace string
	Name      string
	Value     string
}

// Tag is the payload shared by start and end tag tokens: a name, its
// attribute list (end tags never carry attributes in conformant markup but
// the tokenizer still parses them off a bogus end tag, see
// SPEC_FULL.md §4.2), and the self-closing flag from a trailing "/>".
type Tag struct {
	Name        string
	Attrs       []Attr
	SelfClosing bool
}

// CharacterToken is a run of character data as the tokenizer buffers it;
// CharacterToken.Data is never empty, since adjacent characters coalesce
// into one token rather than one-token-per-rune.
type CharacterToken struct {
	Data string
}

// CommentToken is a parsed, decoded comment body (the opening "<!--" and
// closing "-->" are already stripped).
type CommentToken struct {
	Data string
}

// DoctypeToken carries a DOCTYPE declaration's name and optional PUBLIC/
// SYSTEM identifiers. ForceQuirks mirrors the "force-quirks flag" the
// standard threads through DOCTYPE parsing; the tree builder consults it
// when picking a document mode (SPEC_FULL.md §4.3).
type DoctypeToken struct {
	Name        string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

// Token is every token kind flattened into one struct, tagged by Type. A
// Tokenizer emits a stream of these; which fields are meaningful depends on
// Type:
//
//   - StartTag/EndTag: Name, Attrs, SelfClosing
//   - Character:       Data
//   - Comment:         Data, CommentEOF
//   - DOCTYPE:         Name, PublicID, SystemID, ForceQuirks
//   - Error:           ErrorCode
//
// Flattening avoids a pointer-chasing interface dispatch on the hottest
// path in the package; Tag/CharacterToken/CommentToken/DoctypeToken above
// document the per-kind field groupings even though Next returns Token
// directly.
type Token struct {
	Type TokenKind

	Name string
	Data string

	Attrs       []Attr
	SelfClosing bool

	PublicID    *string
	SystemID    *string
	ForceQuirks bool

	ErrorCode string

	// CommentEOF marks a bogus comment that was cut short by end-of-file
	// rather than a closing "-->".
	CommentEOF bool
}

func NewStartTagToken(name string) Token {
	return Token{Type: StartTag, Name: name}
}

func NewEndTagToken(name string) Token {
	return Token{Type: EndTag, Name: name}
}

func NewCharacterToken(data string) Token {
	return Token{Type: Character, Data: data}
}

func NewCommentToken(data string) Token {
	return Token{Type: Comment, Data: data}
}

func NewDoctypeToken(name string, publicID, systemID *string, forceQuirks bool) Token {
	return Token{
		Type:        DOCTYPE,
		Name:        name,
		PublicID:    publicID,
		SystemID:    systemID,
		ForceQuirks: forceQuirks,
	}
}

// AttrVal returns the value of the (non-namespaced) attribute named name,
// or "" if t carries no such attribute.
func (t *Token) AttrVal(name string) string {
	for _, a := range t.Attrs {
		if a.Namespace == "" && a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether t carries a (non-namespaced) attribute named
// name.
func (t *Token) HasAttr(name string) bool {
	for _, a := range t.Attrs {
		if a.Namespace == "" && a.Name == name {
			return true
		}
	}
	return false
}

// IsNamed reports whether t is a StartTag or EndTag whose Name matches any
// of names. Insertion-mode handlers dispatch on long "is this one of these
// tag names" checks (SPEC_FULL.md §4.3's per-mode token switches); IsNamed
// collapses those into one call instead of a chain of "||"-ed comparisons.
func (t *Token) IsNamed(names ...string) bool {
	if t.Type != StartTag && t.Type != EndTag {
		return false
	}
	for _, n := range names {
		if t.Name == n {
			return true
		}
	}
	return false
}

// AttrsToMap flattens a non-namespaced attribute list into a name->value
// map, discarding duplicates (last one wins) and any namespaced attrs.
// Used by conformance-fixture serialization, where attribute order is
// normalized separately from lookup.
func AttrsToMap(attrs []Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		out[a.Name] = a.Value
	}
	return out
}
