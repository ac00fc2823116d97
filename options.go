package gosub

import (
	"github.com/jaytaph/gosub-engine/treebuilder"
)

// config holds parser configuration.
type config struct {
	fragmentContext  *treebuilder.FragmentContext
	iframeSrcdoc     bool
	scriptingEnabled bool
	maxStackDepth    int
	xmlCoercion      bool
	strict           bool
	collectErrors    bool
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithScriptingEnabled controls whether the parser behaves as if scripting
// were enabled in the consuming user agent. This only affects elements whose
// tree-construction behavior depends on it, such as <noscript>: with
// scripting enabled, <noscript> content is tokenized as raw text instead of
// being parsed as markup. Disabled by default, matching a user agent with
// scripting support turned off.
func WithScriptingEnabled() Option {
	return func(c *config) {
		c.scriptingEnabled = true
	}
}

// WithMaxStackDepth bounds the depth of the open-elements stack. Parsing
// stops and reports an error once the bound is exceeded, which protects
// against unbounded memory growth on deeply (and often maliciously) nested
// malformed markup. Defaults to treebuilder.DefaultMaxStackDepth; a value of
// 0 or less keeps that default, so this option cannot disable the bound.
func WithMaxStackDepth(depth int) Option {
	return func(c *config) {
		c.maxStackDepth = depth
	}
}

// WithXMLCoercion enables XML output coercions for text and comment content,
// used by callers that feed this parser's output into an XML serializer.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, parsing still runs to completion, and the first parse error
// the tokenizer recorded is returned as Parse's error alongside the result.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues. The tree builder reports no parse errors.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors recorded by the tokenizer are collected and returned as a
// ParseErrors error (which can be unwrapped to get individual errors); the
// tree builder reports no parse errors.
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}
