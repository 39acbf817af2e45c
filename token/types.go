package token

import "fmt"

type TokenType int

const (
	TScalar TokenType = iota
	TString
	TBlockScalar
	TColon
	TDash
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TTag
	TComment
	TDocStart
	TDocEnd
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TScalar:      "TScalar",
		TString:      "TString",
		TBlockScalar: "TBlockScalar",
		TColon:       "TColon",
		TDash:        "TDash",
		TComma:       "TComma",
		TLCurl:       "TLCurl",
		TRCurl:       "TRCurl",
		TLSquare:     "TLSquare",
		TRSquare:     "TRSquare",
		TTag:         "TTag",
		TComment:     "TComment",
		TDocStart:    "TDocStart",
		TDocEnd:      "TDocEnd",
	}[t]
}

// Token is a single lexical element.  Bytes holds the raw source text,
// except for TBlockScalar where it holds the decoded scalar text and
// Pos addresses the first line of the literal rather than the header.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the scalar text of the token, unquoting quoted scalars.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}
