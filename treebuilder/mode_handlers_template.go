package treebuilder

import "github.com/jaytaph/gosub-engine/tokenizer"

// The in-template insertion mode. A </template> end tag closes the template
// and returns to "in head", EOF stops, and every other token is reprocessed
// "in body". The template insertion mode stack (templateModes) is neither
// consulted nor changed here.

func (tb *TreeBuilder) processInTemplate(tok tokenizer.Token) bool {
	switch tok.Type {
	case tokenizer.EndTag:
		if tok.Name == "template" {
			tb.popUntil("template")
			tb.mode = InHead
			return false
		}
	case tokenizer.EOF:
		return false
	}
	// For now, treat template contents like "in body".
	tb.mode = InBody
	return true
}

