package treebuilder

// InsertionMode is one of the 23 tree-construction modes
// "13.2.4.1 The insertion mode" defines. It is the single biggest piece of
// state ProcessToken threads through: every token is handled relative to
// whichever mode is current, and most tokens change the mode as a
// side effect.
type InsertionMode int

// Before the first tag: nothing has been inserted into the document yet.
const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
)

// Building <head> and the run between it and <body>.
const (
	InHead InsertionMode = iota + 3
	InHeadNoscript
	AfterHead
)

// The main body of the document, and the bare "text" mode used while
// inside a RAWTEXT/RCDATA element's content.
const (
	InBody InsertionMode = iota + 6
	Text
)

// Table construction: from <table> itself down through captions, column
// groups, sections, rows, and cells.
const (
	InTable InsertionMode = iota + 8
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
)

// <select>, including the nested-in-table variant, and <template>'s own
// mode stack (SPEC_FULL.md §4.3, "template insertion mode").
const (
	InSelect InsertionMode = iota + 15
	InSelectInTable
	InTemplate
)

// Trailing modes once </body> (or a frameset document) has been seen.
const (
	AfterBody InsertionMode = iota + 18
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

var insertionModeNames = map[InsertionMode]string{
	Initial:    "initial",
	BeforeHTML: "before html",
	BeforeHead: "before head",

	InHead:         "in head",
	InHeadNoscript: "in head noscript",
	AfterHead:      "after head",

	InBody: "in body",
	Text:   "text",

	InTable:       "in table",
	InTableText:   "in table text",
	InCaption:     "in caption",
	InColumnGroup: "in column group",
	InTableBody:   "in table body",
	InRow:         "in row",
	InCell:        "in cell",

	InSelect:        "in select",
	InSelectInTable: "in select in table",
	InTemplate:      "in template",

	AfterBody:          "after body",
	InFrameset:         "in frameset",
	AfterFrameset:      "after frameset",
	AfterAfterBody:     "after after body",
	AfterAfterFrameset: "after after frameset",
}

// String renders m's spec name, used in error messages and test failures;
// ProcessToken's dispatch never branches on it.
func (m InsertionMode) String() string {
	if name, ok := insertionModeNames[m]; ok {
		return name
	}
	return "unknown"
}
