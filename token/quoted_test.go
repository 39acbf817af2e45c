package token

import "testing"

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"hello"`, want: "hello"},
		{in: `"a\nb"`, want: "a\nb"},
		{in: `"a\tb"`, want: "a\tb"},
		{in: `"say \"hi\""`, want: `say "hi"`},
		{in: `"back\\slash"`, want: `back\slash`},
		{in: `"\x41"`, want: "A"},
		{in: `"A"`, want: "A"},
		{in: `'plain'`, want: "plain"},
		{in: `'it''s'`, want: "it's"},
		{in: `'no \n escape'`, want: `no \n escape`},
		// flow folding: one break folds to a space, an extra break
		// keeps a newline
		{in: "\"a\n  b\"", want: "a b"},
		{in: "\"a\n\n  b\"", want: "a\nb"},
		{in: "'a\n  b'", want: "a b"},
	}
	for _, tt := range tests {
		if got := QuotedToString([]byte(tt.in)); got != tt.want {
			t.Errorf("QuotedToString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
