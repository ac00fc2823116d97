// Package gosub implements the HTML5 tree construction algorithm from the
// WHATWG HTML Living Standard: a tokenizer and tree builder that turn a
// stream of characters into a DOM, recovering from malformed markup exactly
// as the algorithm specifies rather than rejecting it.
//
// # Basic usage
//
//	doc, err := gosub.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := doc.FindFirst(func(e *dom.Element) bool { return e.TagName == "p" })
//	fmt.Println(p.Text())
//
// # Streaming usage
//
// Parser exposes the lower-level New/Feed/Finish surface for callers that
// receive input incrementally (e.g. reading off a network connection) and
// want to avoid buffering the whole document themselves before parsing
// starts.
package gosub

import (
	"strings"

	"github.com/jaytaph/gosub-engine/dom"
	htmlerrors "github.com/jaytaph/gosub-engine/errors"
	"github.com/jaytaph/gosub-engine/tokenizer"
	"github.com/jaytaph/gosub-engine/treebuilder"
)

// Version is the current version of this module.
const Version = "0.1.0-dev"

// Parser is a stateful HTML5 parser. Feed chunks of input to it as they
// arrive, then call Finish to drain the tokenizer, run EOF handling, and
// obtain the constructed document.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	cfg      *config
	input    strings.Builder
	fragment bool
}

// New creates a Parser configured with opts. Scripting is disabled and the
// open-elements stack is bounded by treebuilder.DefaultMaxStackDepth unless
// overridden.
func New(opts ...Option) *Parser {
	return &Parser{cfg: newConfig(opts...)}
}

// Feed appends chars to the parser's pending input. It may be called any
// number of times before Finish.
func (p *Parser) Feed(chars string) {
	p.input.WriteString(chars)
}

// Finish drives tokenization and tree construction over everything fed so
// far, runs end-of-file handling, and returns the resulting document.
func (p *Parser) Finish() (*dom.Document, error) {
	return parse(p.input.String(), p.cfg)
}

// ParseFragment parses chars as an HTML fragment in the context of an
// element named contextElement (e.g. "td", "select"), the equivalent of
// assigning to that element's innerHTML in a browser. The context
// determines the initial insertion mode and namespace: parsing "<td>" in a
// "tr" context produces different results than in a "div" context.
func (p *Parser) ParseFragment(contextElement, chars string) ([]*dom.Element, error) {
	cfg := *p.cfg
	if cfg.fragmentContext == nil {
		cfg.fragmentContext = &treebuilder.FragmentContext{
			TagName:   contextElement,
			Namespace: "html",
		}
	}
	return parseFragment(chars, &cfg)
}

// Parse parses a complete HTML document in one call.
//
// Example:
//
//	doc, err := gosub.Parse("<html><body><p>Hello!</p></body></html>")
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := gosub.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	if cfg.fragmentContext == nil {
		cfg.fragmentContext = &treebuilder.FragmentContext{
			TagName:   context,
			Namespace: "html",
		}
	}
	return parseFragment(html, cfg)
}

func newTreeBuilder(tok *tokenizer.Tokenizer, cfg *config) *treebuilder.TreeBuilder {
	tb := treebuilder.New(tok)
	tb.SetScriptingEnabled(cfg.scriptingEnabled)
	if cfg.maxStackDepth > 0 {
		tb.SetMaxStackDepth(cfg.maxStackDepth)
	}
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	return tb
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := newTreeBuilder(tok, cfg)

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tb.StackOverflowed() {
			return tb.Document(), &htmlerrors.ParseError{
				Code:    htmlerrors.MaxStackDepthExceeded,
				Message: htmlerrors.Message(htmlerrors.MaxStackDepthExceeded),
			}
		}
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	return finalizeErrors(tb.Document(), tok, cfg)
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	tb.SetScriptingEnabled(cfg.scriptingEnabled)
	if cfg.maxStackDepth > 0 {
		tb.SetMaxStackDepth(cfg.maxStackDepth)
	}
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tb.StackOverflowed() {
			return tb.FragmentNodes(), &htmlerrors.ParseError{
				Code:    htmlerrors.MaxStackDepthExceeded,
				Message: htmlerrors.Message(htmlerrors.MaxStackDepthExceeded),
			}
		}
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	nodes := tb.FragmentNodes()
	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nodes, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return nodes, htmlerrors.ParseErrors(parseErrs)
		}
	}

	return nodes, nil
}

func finalizeErrors(doc *dom.Document, tok *tokenizer.Tokenizer, cfg *config) (*dom.Document, error) {
	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return doc, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return doc, htmlerrors.ParseErrors(parseErrs)
		}
	}
	return doc, nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
