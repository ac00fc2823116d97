// Package treebuilder implements the HTML5 tree construction algorithm.
package treebuilder

// FragmentContext names the element fragment parsing behaves as if it
// were inserting into — the equivalent of assigning to that element's
// innerHTML in a browser (SPEC_FULL.md §4.4, "fragment parsing algorithm").
// The tree builder never sees a real start tag for this element; TagName
// and Namespace stand in for one when picking the initial insertion mode
// and namespace.
type FragmentContext struct {
	TagName string

	// Namespace is "html" (the zero value also means html), "svg", or
	// "mathml".
	Namespace string
}

// IsHTML reports whether ctx names an element in the HTML namespace, as
// opposed to an SVG or MathML context.
func (ctx *FragmentContext) IsHTML() bool {
	return ctx.Namespace == "" || ctx.Namespace == "html"
}
