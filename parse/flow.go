package parse

import "github.com/secretscan/yamlline/token"

// flowCorrector decides when scalar values inside a flow mapping
// should be stamped with the line the mapping starts on rather than
// their own token line.  Multi-line flow entries written one per line
// keep their own lines; entries on the opening line or separated by
// commas take the mapping's line, since that is where a reader finds
// the value in context of its key.
type flowCorrector struct {
	pending bool
}

// evaluate runs before a flow-mapping key is composed.  pi indexes the
// key token for the first entry and the comma token for later entries.
// The pending flag ends up set when the first key sits on the mapping's
// opening line, or when a comma is directly followed by another key.
// It ends up clear otherwise, an entry that fails both rules cancels
// any correction queued by an enclosing mapping.
func (c *flowCorrector) evaluate(first bool, startLine int, toks []token.Token, pi int) {
	// comments are invisible to the lookahead, they never separate
	// the comma from the key it introduces
	c.pending = first && startLine == toks[pi].Pos.Line() ||
		toks[pi].Type == token.TComma && isKeyAt(toks, skipCommentTokens(toks, pi+1))
}

// reset clears the pending flag.  It runs whenever any mapping
// finishes composing, empty mappings included, so a correction queued
// in an outer mapping never leaks past a nested one.
func (c *flowCorrector) reset() {
	c.pending = false
}
