package constants

// Scope terminator sets for the tree builder's "has an element in scope"
// family of checks (SPEC_FULL.md §4.3, "the specific scope"). Each scope is
// a set of tag names that stop the stack-of-open-elements walk: once one
// of these names is hit without finding the target first, the target is
// not in that scope.
//
// The default, list-item and button scopes share a common core (the
// elements that terminate each of them) plus MathML and SVG embedding
// points, so they're built from toSet plus that shared core rather than
// three independent literal maps. The table scopes build on TableScope
// instead.

func toSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func union(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			out[k] = true
		}
	}
	return out
}

var scopeCore = toSet("applet", "caption", "html", "table", "td", "th", "marquee", "object", "template")

var mathMLScopeTerminators = toSet("mi", "mo", "mn", "ms", "mtext", "annotation-xml")

var svgScopeTerminators = toSet("foreignObject", "desc", "title")

// DefaultScope is used by most "in scope" checks: format elements, most
// end-tag handlers.
var DefaultScope = union(scopeCore, mathMLScopeTerminators, svgScopeTerminators)

// ListItemScope additionally terminates at "ol"/"ul", for </li> handling.
var ListItemScope = union(scopeCore, mathMLScopeTerminators, svgScopeTerminators, toSet("ol", "ul"))

// ButtonScope additionally terminates at "button", for implied </p> closing.
var ButtonScope = union(scopeCore, mathMLScopeTerminators, svgScopeTerminators, toSet("button"))

// TableScope is the narrow scope table-structure end tags use: only table
// containers terminate it, not arbitrary formatting elements.
var TableScope = toSet("html", "table", "template")

// TableBodyScope additionally terminates at the three section elements.
var TableBodyScope = union(TableScope, toSet("tbody", "tfoot", "thead"))

// TableRowScope additionally terminates at "tr".
var TableRowScope = union(TableBodyScope, toSet("tr"))

// SelectScope is inverted relative to the others: hasElementInScope with
// this set treats it as the complement (everything except optgroup/option
// terminates select scope).
var SelectScope = toSet("optgroup", "option")
