package token

import (
	"bytes"
)

type scanner struct {
	pd   *PosDoc
	d    []byte
	flow int
}

// Tokenize scans src and appends the resulting tokens to dst.  Anchors,
// aliases and complex mapping keys are not part of the supported
// grammar and produce errors.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	s := &scanner{pd: pd, d: pd.Doc()}
	return s.run(dst)
}

func (s *scanner) run(dst []Token) ([]Token, error) {
	d := s.d
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch c {
		case '\n', ' ', '\r':
			i++
			continue
		case '\t':
			if s.flow == 0 && atIndent(d, s.pd, i) {
				return nil, NewTokenizeErr(ErrTabIndent, s.pd.Pos(i))
			}
			i++
			continue
		}
		pos := s.pd.Pos(i)
		switch {
		case c == '#':
			j := eol(d, i)
			dst = append(dst, Token{Type: TComment, Pos: pos, Bytes: bytes.TrimRight(d[i:j], "\r")})
			i = j
		case c == '{':
			s.flow++
			dst = append(dst, Token{Type: TLCurl, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == '}':
			s.flow = max(0, s.flow-1)
			dst = append(dst, Token{Type: TRCurl, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == '[':
			s.flow++
			dst = append(dst, Token{Type: TLSquare, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == ']':
			s.flow = max(0, s.flow-1)
			dst = append(dst, Token{Type: TRSquare, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == ',' && s.flow > 0:
			dst = append(dst, Token{Type: TComma, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == ':' && sepAfter(d, i, s.flow):
			dst = append(dst, Token{Type: TColon, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == '-' && s.flow == 0 && docMarker(d, s.pd, i, '-'):
			dst = append(dst, Token{Type: TDocStart, Pos: pos, Bytes: d[i : i+3]})
			i += 3
		case c == '.' && s.flow == 0 && docMarker(d, s.pd, i, '.'):
			dst = append(dst, Token{Type: TDocEnd, Pos: pos, Bytes: d[i : i+3]})
			i += 3
		case c == '-' && s.flow == 0 && wsAfter(d, i):
			dst = append(dst, Token{Type: TDash, Pos: pos, Bytes: d[i : i+1]})
			i++
		case c == '%' && pos.Col() == 0:
			// directives are consumed and ignored
			i = eol(d, i)
		case c == '!':
			j := i
			for j < n && !tagEnd(d[j], s.flow) {
				j++
			}
			dst = append(dst, Token{Type: TTag, Pos: pos, Bytes: d[i:j]})
			i = j
		case c == '&':
			return nil, UnexpectedErr("anchor (not supported)", pos)
		case c == '*':
			return nil, UnexpectedErr("alias (not supported)", pos)
		case c == '?' && wsAfter(d, i):
			return nil, UnexpectedErr("complex mapping key (not supported)", pos)
		case c == '"' || c == '\'':
			j, err := scanQuoted(d, i)
			if err != nil {
				return nil, NewTokenizeErr(err, pos)
			}
			dst = append(dst, Token{Type: TString, Pos: pos, Bytes: d[i:j]})
			i = j
		case c == '|' || c == '>':
			if s.flow > 0 {
				return nil, UnexpectedErr("block scalar in flow context", pos)
			}
			tok, j, err := scanBlockScalar(d, s.pd, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = j
		default:
			j := scanPlain(d, i, s.flow)
			if j == i {
				return nil, UnexpectedErr("character", pos)
			}
			dst = append(dst, Token{Type: TScalar, Pos: pos, Bytes: bytes.TrimRight(d[i:j], " \t\r")})
			i = j
		}
	}
	return dst, nil
}

// sepAfter reports whether a ':' at offset i separates a key from a
// value, as opposed to being part of a plain scalar like a URL.
func sepAfter(d []byte, i, flow int) bool {
	if i+1 >= len(d) {
		return true
	}
	switch d[i+1] {
	case ' ', '\t', '\n', '\r':
		return true
	case ',', '}', ']':
		return flow > 0
	}
	return false
}

func wsAfter(d []byte, i int) bool {
	if i+1 >= len(d) {
		return true
	}
	switch d[i+1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func docMarker(d []byte, pd *PosDoc, i int, c byte) bool {
	if _, col := pd.LineCol(i); col != 0 {
		return false
	}
	if i+3 > len(d) || d[i+1] != c || d[i+2] != c {
		return false
	}
	return i+3 == len(d) || d[i+3] == ' ' || d[i+3] == '\t' || d[i+3] == '\n' || d[i+3] == '\r'
}

// atIndent reports whether offset i is still in the indentation of its
// line, with nothing but whitespace before it.
func atIndent(d []byte, pd *PosDoc, i int) bool {
	_, col := pd.LineCol(i)
	for j := i - col; j < i; j++ {
		switch d[j] {
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}

func tagEnd(c byte, flow int) bool {
	switch c {
	case ' ', '\t', '\n':
		return true
	case ',', '{', '}', '[', ']':
		return flow > 0
	}
	return false
}

func scanPlain(d []byte, i, flow int) int {
	j := i
	n := len(d)
	for j < n {
		switch d[j] {
		case '\n':
			return j
		case ':':
			if sepAfter(d, j, flow) {
				return j
			}
		case '#':
			if j > i && (d[j-1] == ' ' || d[j-1] == '\t') {
				return j
			}
		case ',', '{', '}', '[', ']':
			if flow > 0 {
				return j
			}
		}
		j++
	}
	return j
}

func eol(d []byte, i int) int {
	for i < len(d) && d[i] != '\n' {
		i++
	}
	return i
}
