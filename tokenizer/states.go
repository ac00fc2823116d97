package tokenizer

// State is a tokenizer state: one node of the ~80-state machine the HTML
// Living Standard defines in "13.2.5 Tokenization". SPEC_FULL.md §4.2 lists
// the key states and transitions this package implements in full.
type State int

// InvalidState marks a Tokenizer that has not yet been assigned a starting
// state, or a state value that failed to round-trip through String.
const InvalidState State = -1

// PlaintextState and RawtextState are the html5lib conformance-fixture
// spellings ("PLAINTEXT state", "RAWTEXT state" in lowercase-tokenized
// form) of DataState's two content-only siblings; fixture-driving test code
// expects these names.
const (
	PlaintextState = PLAINTEXTState
	RawtextState   = RAWTEXTState
)

// Data dispatch: the states reachable directly from character content
// without having first entered a tag, comment, or declaration.
const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
)

// Tag and attribute parsing: from the first "<" through a complete
// start/end tag, including every attribute sub-state.
const (
	TagOpenState State = iota + 5
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
)

// RCDATA re-entry: the "<" handling used inside <title>/<textarea> content,
// mirroring TagOpen/EndTagOpen/TagName but only ever producing the matching
// end tag (see "appropriate end tag" in SPEC_FULL.md §4.2).
const (
	RCDATALessThanSignState State = iota + 17
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
)

// RAWTEXT re-entry: the same shape as the RCDATA block above, for
// <style>/<xmp>/<iframe>/<noembed>/<noframes> content.
const (
	RAWTEXTLessThanSignState State = iota + 20
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
)

// Script data and its escaped/double-escaped sub-states implement the
// <script> re-entry rule and the "<!--"..."-->" escape dance from
// SPEC_FULL.md §4.2.
const (
	ScriptDataLessThanSignState State = iota + 23
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
)

// Markup declarations: comments and the branch point that separates them
// from DOCTYPE and CDATA.
const (
	BogusCommentState State = iota + 40
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
)

// DOCTYPE: name, PUBLIC/SYSTEM identifier sub-states, feeding the tree
// builder's quirks-mode determination (SPEC_FULL.md §4.3).
const (
	DOCTYPEState State = iota + 52
	BeforeDOCTYPENameState
	DOCTYPENameState
	AfterDOCTYPENameState
	AfterDOCTYPEPublicKeywordState
	BeforeDOCTYPEPublicIdentifierState
	DOCTYPEPublicIdentifierDoubleQuotedState
	DOCTYPEPublicIdentifierSingleQuotedState
	AfterDOCTYPEPublicIdentifierState
	BetweenDOCTYPEPublicAndSystemIdentifiersState
	AfterDOCTYPESystemKeywordState
	BeforeDOCTYPESystemIdentifierState
	DOCTYPESystemIdentifierDoubleQuotedState
	DOCTYPESystemIdentifierSingleQuotedState
	AfterDOCTYPESystemIdentifierState
	BogusDOCTYPEState
)

// CDATA sections, only reachable when the tree builder reports a foreign
// (SVG/MathML) current node via AllowCDATA.
const (
	CDATASectionState State = iota + 68
	CDATASectionBracketState
	CDATASectionEndState
)

// Character-reference resolution, shared by data, RCDATA, and attribute
// value consumption (SPEC_FULL.md §4.2, "Character reference resolution").
const (
	CharacterReferenceState State = iota + 71
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

var stateNames = map[State]string{
	DataState:       "Data",
	RCDATAState:     "RCDATA",
	RAWTEXTState:    "RAWTEXT",
	ScriptDataState: "ScriptData",
	PLAINTEXTState:  "PLAINTEXT",

	TagOpenState:                   "TagOpen",
	EndTagOpenState:                "EndTagOpen",
	TagNameState:                   "TagName",
	BeforeAttributeNameState:       "BeforeAttributeName",
	AttributeNameState:             "AttributeName",
	AfterAttributeNameState:        "AfterAttributeName",
	BeforeAttributeValueState:      "BeforeAttributeValue",
	AttributeValueDoubleQuotedState: "AttributeValueDoubleQuoted",
	AttributeValueSingleQuotedState: "AttributeValueSingleQuoted",
	AttributeValueUnquotedState:    "AttributeValueUnquoted",
	AfterAttributeValueQuotedState: "AfterAttributeValueQuoted",
	SelfClosingStartTagState:       "SelfClosingStartTag",

	RCDATALessThanSignState:  "RCDATALessThanSign",
	RCDATAEndTagOpenState:    "RCDATAEndTagOpen",
	RCDATAEndTagNameState:    "RCDATAEndTagName",
	RAWTEXTLessThanSignState: "RAWTEXTLessThanSign",
	RAWTEXTEndTagOpenState:   "RAWTEXTEndTagOpen",
	RAWTEXTEndTagNameState:   "RAWTEXTEndTagName",

	ScriptDataLessThanSignState:              "ScriptDataLessThanSign",
	ScriptDataEndTagOpenState:                "ScriptDataEndTagOpen",
	ScriptDataEndTagNameState:                "ScriptDataEndTagName",
	ScriptDataEscapeStartState:               "ScriptDataEscapeStart",
	ScriptDataEscapeStartDashState:           "ScriptDataEscapeStartDash",
	ScriptDataEscapedState:                   "ScriptDataEscaped",
	ScriptDataEscapedDashState:               "ScriptDataEscapedDash",
	ScriptDataEscapedDashDashState:           "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSignState:       "ScriptDataEscapedLessThanSign",
	ScriptDataEscapedEndTagOpenState:         "ScriptDataEscapedEndTagOpen",
	ScriptDataEscapedEndTagNameState:         "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStartState:         "ScriptDataDoubleEscapeStart",
	ScriptDataDoubleEscapedState:             "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDashState:         "ScriptDataDoubleEscapedDash",
	ScriptDataDoubleEscapedDashDashState:     "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSignState: "ScriptDataDoubleEscapedLessThanSign",
	ScriptDataDoubleEscapeEndState:           "ScriptDataDoubleEscapeEnd",

	BogusCommentState:                   "BogusComment",
	MarkupDeclarationOpenState:          "MarkupDeclarationOpen",
	CommentStartState:                   "CommentStart",
	CommentStartDashState:               "CommentStartDash",
	CommentState:                        "Comment",
	CommentLessThanSignState:            "CommentLessThanSign",
	CommentLessThanSignBangState:        "CommentLessThanSignBang",
	CommentLessThanSignBangDashState:    "CommentLessThanSignBangDash",
	CommentLessThanSignBangDashDashState: "CommentLessThanSignBangDashDash",
	CommentEndDashState:                 "CommentEndDash",
	CommentEndState:                     "CommentEnd",
	CommentEndBangState:                 "CommentEndBang",

	DOCTYPEState:                                   "DOCTYPE",
	BeforeDOCTYPENameState:                         "BeforeDOCTYPEName",
	DOCTYPENameState:                               "DOCTYPEName",
	AfterDOCTYPENameState:                          "AfterDOCTYPEName",
	AfterDOCTYPEPublicKeywordState:                 "AfterDOCTYPEPublicKeyword",
	BeforeDOCTYPEPublicIdentifierState:             "BeforeDOCTYPEPublicIdentifier",
	DOCTYPEPublicIdentifierDoubleQuotedState:       "DOCTYPEPublicIdentifierDoubleQuoted",
	DOCTYPEPublicIdentifierSingleQuotedState:       "DOCTYPEPublicIdentifierSingleQuoted",
	AfterDOCTYPEPublicIdentifierState:              "AfterDOCTYPEPublicIdentifier",
	BetweenDOCTYPEPublicAndSystemIdentifiersState:  "BetweenDOCTYPEPublicAndSystemIdentifiers",
	AfterDOCTYPESystemKeywordState:                 "AfterDOCTYPESystemKeyword",
	BeforeDOCTYPESystemIdentifierState:             "BeforeDOCTYPESystemIdentifier",
	DOCTYPESystemIdentifierDoubleQuotedState:       "DOCTYPESystemIdentifierDoubleQuoted",
	DOCTYPESystemIdentifierSingleQuotedState:       "DOCTYPESystemIdentifierSingleQuoted",
	AfterDOCTYPESystemIdentifierState:              "AfterDOCTYPESystemIdentifier",
	BogusDOCTYPEState:                              "BogusDOCTYPE",

	CDATASectionState:        "CDATASection",
	CDATASectionBracketState: "CDATASectionBracket",
	CDATASectionEndState:     "CDATASectionEnd",

	CharacterReferenceState:                  "CharacterReference",
	NamedCharacterReferenceState:              "NamedCharacterReference",
	AmbiguousAmpersandState:                   "AmbiguousAmpersand",
	NumericCharacterReferenceState:            "NumericCharacterReference",
	HexadecimalCharacterReferenceStartState:   "HexadecimalCharacterReferenceStart",
	DecimalCharacterReferenceStartState:       "DecimalCharacterReferenceStart",
	HexadecimalCharacterReferenceState:        "HexadecimalCharacterReference",
	DecimalCharacterReferenceState:            "DecimalCharacterReference",
	NumericCharacterReferenceEndState:         "NumericCharacterReferenceEnd",
}

// String renders a state's spec-section name, e.g. "TagOpen" for the state
// the standard calls "the tag open state". Used only for diagnostics; the
// tokenizer itself never branches on this string.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsScriptDataFamily reports whether s is ScriptDataState or one of the
// states of the script-data escape dance (SPEC_FULL.md §4.2).
func (s State) IsScriptDataFamily() bool {
	return s == ScriptDataState || (s >= ScriptDataLessThanSignState && s <= ScriptDataDoubleEscapeEndState)
}

// IsCharacterReferenceFamily reports whether s is one of the character-
// reference consumption states shared by data, RCDATA, and attribute-value
// contexts.
func (s State) IsCharacterReferenceFamily() bool {
	return s >= CharacterReferenceState && s <= NumericCharacterReferenceEndState
}
