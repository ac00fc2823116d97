package constants

// Tokenizing a large document allocates a fresh Go string for every tag and
// attribute name it scans, even though the overwhelming majority of real
// markup reuses a small vocabulary ("div", "class", "href", ...). Interning
// that vocabulary ahead of time lets InternTagName/InternAttributeName hand
// back the same backing string instead of letting each occurrence produce
// its own allocation.

func internTable(names ...string) map[string]string {
	table := make(map[string]string, len(names))
	for _, n := range names {
		table[n] = n
	}
	return table
}

// CommonTagNames is the interning table InternTagName consults, grouped by
// the rough HTML content category each name belongs to (purely for this
// file's readability; the lookup itself is flat).
var CommonTagNames = internTable(
	// document structure
	"html", "head", "body", "title", "meta", "link", "style",
	// sectioning
	"header", "footer", "nav", "section", "article", "aside", "main",
	// text content
	"div", "p", "span", "h1", "h2", "h3", "h4", "h5", "h6",
	"blockquote", "pre", "code",
	// lists
	"ul", "ol", "li", "dl", "dt", "dd",
	// tables
	"table", "thead", "tbody", "tfoot", "tr", "th", "td",
	"caption", "colgroup", "col",
	// forms
	"form", "input", "button", "select", "option", "textarea",
	"label", "fieldset", "legend",
	// media
	"img", "video", "audio", "source", "track", "canvas", "svg",
	// interactive
	"a", "script", "noscript", "iframe",
	// text formatting
	"b", "i", "u", "s", "em", "strong", "small", "mark", "del", "ins", "sub", "sup",
	// everything else common enough to matter
	"br", "hr", "template", "slot", "base",
)

// CommonAttributeNames is the interning table InternAttributeName
// consults.
var CommonAttributeNames = internTable(
	// global
	"id", "class", "style", "title", "lang", "dir",
	// data-* patterns seen often enough to special-case
	"data-id", "data-name", "data-value",
	// links
	"href", "rel", "target", "type",
	// media
	"src", "alt", "width", "height",
	// forms
	"name", "value", "placeholder", "disabled", "readonly", "required",
	"checked", "selected", "action", "method", "for",
	// interactive / ARIA
	"onclick", "onchange", "onsubmit", "onload", "tabindex", "aria-label", "role",
	// meta
	"content", "charset", "property",
	// the rest
	"hidden", "data", "download", "enctype", "accept", "autocomplete",
	"autofocus", "maxlength", "minlength", "pattern", "multiple", "size",
	"min", "max", "step", "colspan", "rowspan", "scope", "headers",
)

// InternTagName returns name's interned copy if it is a common tag name,
// otherwise name itself unmodified.
func InternTagName(name string) string {
	if interned, ok := CommonTagNames[name]; ok {
		return interned
	}
	return name
}

// InternAttributeName returns name's interned copy if it is a common
// attribute name, otherwise name itself unmodified.
func InternAttributeName(name string) string {
	if interned, ok := CommonAttributeNames[name]; ok {
		return interned
	}
	return name
}
