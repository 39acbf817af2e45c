package parse

import (
	"fmt"
	"os"

	"github.com/secretscan/yamlline/debug"
	"github.com/secretscan/yamlline/ir"
	"github.com/secretscan/yamlline/token"
)

// Parse composes a single document from src.  An empty document, a
// lone document marker included, gives a nil node and nil error.  All
// errors wrap ErrParse.
func Parse(src []byte, opts ...ParseOption) (*ir.Node, error) {
	var o parseOpts
	for _, opt := range opts {
		opt(&o)
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Tokens() {
		for i := range toks {
			fmt.Fprintln(os.Stderr, toks[i].Info())
		}
	}
	p := &parser{toks: toks, opts: o}
	p.skipComments()
	if !p.eof() && p.peekType() == token.TDocStart {
		p.next()
		p.skipComments()
	}
	if p.eof() {
		return nil, nil
	}
	if p.peekType() == token.TDocEnd {
		p.next()
		p.skipComments()
		if p.eof() {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: expected a single document, found %s at %s", ErrParse, p.peek().Type, p.peek().Pos)
	}
	root, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	p.skipComments()
	if !p.eof() && p.peekType() == token.TDocEnd {
		p.next()
		p.skipComments()
	}
	if !p.eof() {
		return nil, fmt.Errorf("%w: expected a single document, found %s at %s", ErrParse, p.peek().Type, p.peek().Pos)
	}
	return root, nil
}

type parser struct {
	toks       []token.Token
	pi         int
	opts       parseOpts
	fc         flowCorrector
	flowStarts []int
}

func (p *parser) eof() bool {
	return p.pi >= len(p.toks)
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.pi]
}

func (p *parser) peekType() token.TokenType {
	return p.toks[p.pi].Type
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.pi]
	p.pi++
	return t
}

func (p *parser) skipComments() {
	p.pi = skipCommentTokens(p.toks, p.pi)
}

// skipCommentTokens returns the index of the first non-comment token
// at or after i.
func skipCommentTokens(toks []token.Token, i int) int {
	for i < len(toks) && toks[i].Type == token.TComment {
		i++
	}
	return i
}

func (p *parser) isKey(i int) bool {
	return isKeyAt(p.toks, i)
}

// isKeyAt reports whether the token at i opens a mapping entry: a
// scalar directly followed by a colon on the same line.
func isKeyAt(toks []token.Token, i int) bool {
	if i < 0 || i+1 >= len(toks) {
		return false
	}
	t := &toks[i]
	if t.Type != token.TScalar && t.Type != token.TString {
		return false
	}
	c := &toks[i+1]
	return c.Type == token.TColon && c.Pos.Line() == t.Pos.Line()
}

// valueLine is the 1-based line stamped on a scalar node.  A pending
// flow correction overrides the token's own line with the line the
// enclosing flow mapping starts on.
func (p *parser) valueLine(t *token.Token) int {
	if p.fc.pending && len(p.flowStarts) > 0 {
		return p.flowStarts[len(p.flowStarts)-1] + 1
	}
	return t.Pos.Line() + 1
}

func (p *parser) scalarNode(t *token.Token, tag string) (*ir.Node, error) {
	var n *ir.Node
	switch {
	case tag != "":
		var err error
		n, err = resolveTagged(tag, t.String(), t.Pos)
		if err != nil {
			return nil, err
		}
	case t.Type == token.TString:
		n = ir.FromString(t.String())
	case t.Type == token.TBlockScalar:
		n = ir.FromString(string(t.Bytes))
	default:
		n = resolvePlain(string(t.Bytes))
	}
	n.Line = p.valueLine(t)
	return n, nil
}

// Mapping keys are kept as their literal text.  A key spelled `true:`
// or `10:` names the field "true" or "10".
func keyNode(t *token.Token) *ir.Node {
	return ir.FromString(t.String())
}

func (p *parser) parseBlock() (*ir.Node, error) {
	p.skipComments()
	if p.eof() {
		return ir.Null(), nil
	}
	t := p.peek()
	switch t.Type {
	case token.TDash:
		return p.parseBlockSeq(t.Pos.Col())
	case token.TLCurl:
		return p.parseFlowMap()
	case token.TLSquare:
		return p.parseFlowSeq()
	case token.TBlockScalar:
		p.next()
		return p.scalarNode(t, "")
	case token.TTag:
		return p.parseTagged()
	case token.TScalar, token.TString:
		if p.isKey(p.pi) {
			return p.parseBlockMap(t.Pos.Col())
		}
		p.next()
		return p.scalarNode(t, "")
	}
	return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, t.Type, t.Pos)
}

func (p *parser) parseBlockMap(col int) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for {
		p.skipComments()
		if p.eof() {
			break
		}
		t := p.peek()
		if t.Type == token.TDocStart || t.Type == token.TDocEnd {
			break
		}
		c := t.Pos.Col()
		if c < col {
			break
		}
		if c > col {
			return nil, fmt.Errorf("%w: bad indentation at %s", ErrParse, t.Pos)
		}
		if !p.isKey(p.pi) {
			return nil, fmt.Errorf("%w: expected a mapping key at %s", ErrParse, t.Pos)
		}
		keyTok := p.next()
		p.next() // colon
		val, err := p.parseBlockValue(keyTok, col)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: keyNode(keyTok), Val: val})
	}
	return p.finishObject(ir.FromKeyVals(kvs)), nil
}

func (p *parser) parseBlockValue(keyTok *token.Token, keyCol int) (*ir.Node, error) {
	p.skipComments()
	if p.eof() {
		return ir.Null(), nil
	}
	t := p.peek()
	if t.Type == token.TBlockScalar {
		// The token's position is its first content line, always below
		// the key, so the line test does not apply.
		p.next()
		return p.scalarNode(t, "")
	}
	if t.Pos.Line() == keyTok.Pos.Line() {
		if p.isKey(p.pi) {
			return nil, fmt.Errorf("%w: mapping values are not allowed here at %s", ErrParse, t.Pos)
		}
		return p.parseInline()
	}
	c := t.Pos.Col()
	if t.Type == token.TDash && c >= keyCol {
		return p.parseBlockSeq(c)
	}
	if c > keyCol {
		return p.parseBlock()
	}
	return ir.Null(), nil
}

func (p *parser) parseBlockSeq(col int) (*ir.Node, error) {
	var vals []*ir.Node
	for {
		p.skipComments()
		if p.eof() {
			break
		}
		t := p.peek()
		if t.Type != token.TDash || t.Pos.Col() != col {
			break
		}
		dashTok := p.next()
		v, err := p.parseSeqValue(dashTok, col)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return ir.FromSlice(vals), nil
}

func (p *parser) parseSeqValue(dashTok *token.Token, dashCol int) (*ir.Node, error) {
	p.skipComments()
	if p.eof() {
		return ir.Null(), nil
	}
	t := p.peek()
	if t.Type == token.TBlockScalar {
		p.next()
		return p.scalarNode(t, "")
	}
	if t.Pos.Line() == dashTok.Pos.Line() {
		if p.isKey(p.pi) {
			return p.parseBlockMap(t.Pos.Col())
		}
		if t.Type == token.TDash {
			return p.parseBlockSeq(t.Pos.Col())
		}
		return p.parseInline()
	}
	if t.Pos.Col() > dashCol {
		return p.parseBlock()
	}
	return ir.Null(), nil
}

// parseInline composes a value that starts on its key's line.
func (p *parser) parseInline() (*ir.Node, error) {
	t := p.peek()
	switch t.Type {
	case token.TLCurl:
		return p.parseFlowMap()
	case token.TLSquare:
		return p.parseFlowSeq()
	case token.TTag:
		return p.parseTagged()
	case token.TScalar, token.TString:
		p.next()
		return p.scalarNode(t, "")
	}
	return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, t.Type, t.Pos)
}

func (p *parser) parseFlowMap() (*ir.Node, error) {
	open := p.next()
	p.flowStarts = append(p.flowStarts, open.Pos.Line())
	defer func() {
		p.flowStarts = p.flowStarts[:len(p.flowStarts)-1]
	}()

	var kvs []ir.KeyVal
	first := true
	for {
		p.skipComments()
		if p.eof() {
			return nil, fmt.Errorf("%w: unterminated flow mapping at %s", ErrParse, open.Pos)
		}
		if p.peekType() == token.TRCurl {
			p.next()
			break
		}
		if first {
			p.fc.evaluate(true, open.Pos.Line(), p.toks, p.pi)
		} else {
			if p.peekType() != token.TComma {
				return nil, fmt.Errorf("%w: expected ',' or '}' at %s", ErrParse, p.peek().Pos)
			}
			p.fc.evaluate(false, open.Pos.Line(), p.toks, p.pi)
			p.next()
			p.skipComments()
			if p.eof() {
				return nil, fmt.Errorf("%w: unterminated flow mapping at %s", ErrParse, open.Pos)
			}
			if p.peekType() == token.TRCurl {
				p.next()
				break
			}
		}
		keyTok := p.next()
		if keyTok.Type != token.TScalar && keyTok.Type != token.TString {
			return nil, fmt.Errorf("%w: expected a mapping key at %s", ErrParse, keyTok.Pos)
		}
		var val *ir.Node
		if !p.eof() && p.peekType() == token.TColon {
			p.next()
			var err error
			val, err = p.parseFlowValue()
			if err != nil {
				return nil, err
			}
		} else {
			// `{a}` entries have null values
			val = ir.Null()
		}
		kvs = append(kvs, ir.KeyVal{Key: keyNode(keyTok), Val: val})
		first = false
	}
	return p.finishObject(ir.FromKeyVals(kvs)), nil
}

func (p *parser) parseFlowSeq() (*ir.Node, error) {
	open := p.next()
	var vals []*ir.Node
	first := true
	for {
		p.skipComments()
		if p.eof() {
			return nil, fmt.Errorf("%w: unterminated flow sequence at %s", ErrParse, open.Pos)
		}
		if p.peekType() == token.TRSquare {
			p.next()
			break
		}
		if !first {
			if p.peekType() != token.TComma {
				return nil, fmt.Errorf("%w: expected ',' or ']' at %s", ErrParse, p.peek().Pos)
			}
			p.next()
			p.skipComments()
			if p.eof() {
				return nil, fmt.Errorf("%w: unterminated flow sequence at %s", ErrParse, open.Pos)
			}
			if p.peekType() == token.TRSquare {
				p.next()
				break
			}
		}
		v, err := p.parseFlowElement()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		first = false
	}
	return ir.FromSlice(vals), nil
}

// parseFlowElement handles the single-pair mapping shorthand `[a: 1]`
// in addition to plain flow values.
func (p *parser) parseFlowElement() (*ir.Node, error) {
	if p.isKey(p.pi) {
		keyTok := p.next()
		p.next() // colon
		val, err := p.parseFlowValue()
		if err != nil {
			return nil, err
		}
		return p.finishObject(ir.FromKeyVals([]ir.KeyVal{{Key: keyNode(keyTok), Val: val}})), nil
	}
	return p.parseFlowValue()
}

func (p *parser) parseFlowValue() (*ir.Node, error) {
	p.skipComments()
	if p.eof() {
		return nil, fmt.Errorf("%w: unexpected end of document in flow value", ErrParse)
	}
	t := p.peek()
	switch t.Type {
	case token.TComma, token.TRCurl, token.TRSquare:
		// `{a: ,}` has a null value, the delimiter is the caller's
		return ir.Null(), nil
	case token.TLCurl:
		return p.parseFlowMap()
	case token.TLSquare:
		return p.parseFlowSeq()
	case token.TTag:
		return p.parseTagged()
	case token.TScalar, token.TString:
		p.next()
		return p.scalarNode(t, "")
	}
	return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, t.Type, t.Pos)
}

func (p *parser) parseTagged() (*ir.Node, error) {
	tagTok := p.next()
	tag := string(tagTok.Bytes)
	p.skipComments()
	if p.eof() {
		return p.taggedEmpty(tag, tagTok)
	}
	t := p.peek()
	if t.Type == token.TBlockScalar {
		p.next()
		return p.scalarNode(t, tag)
	}
	if t.Pos.Line() != tagTok.Pos.Line() {
		return p.taggedEmpty(tag, tagTok)
	}
	switch t.Type {
	case token.TLCurl:
		n, err := p.parseFlowMap()
		if err != nil {
			return nil, err
		}
		return applyCollectionTag(tag, n, tagTok.Pos)
	case token.TLSquare:
		n, err := p.parseFlowSeq()
		if err != nil {
			return nil, err
		}
		return applyCollectionTag(tag, n, tagTok.Pos)
	case token.TScalar, token.TString:
		p.next()
		return p.scalarNode(t, tag)
	}
	return nil, fmt.Errorf("%w: unexpected %s after tag at %s", ErrParse, t.Type, t.Pos)
}

// taggedEmpty resolves a tag with no content on its line.  The node is
// stamped with the tag token's line so an empty tagged value still
// lands where it appears in the source.
func (p *parser) taggedEmpty(tag string, tagTok *token.Token) (*ir.Node, error) {
	n, err := resolveTagged(tag, "", tagTok.Pos)
	if err != nil {
		return nil, err
	}
	n.Line = p.valueLine(tagTok)
	return n, nil
}
