package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		vals []Value
		want []string
	}{
		{
			name: "empty",
			vals: nil,
			want: nil,
		},
		{
			name: "gap filled with empty lines",
			vals: []Value{{Key: "k", Value: "v", Line: 3}},
			want: []string{"", "", `k: "v"`},
		},
		{
			name: "consecutive lines",
			vals: []Value{
				{Key: "a", Value: "1", Line: 1},
				{Key: "b", Value: "2", Line: 2},
			},
			want: []string{`a: "1"`, `b: "2"`},
		},
		{
			name: "same line appends",
			vals: []Value{
				{Key: "a", Value: "1", Line: 1},
				{Key: "b", Value: "2", Line: 1},
			},
			want: []string{`a: "1"`, `b: "2"`},
		},
		{
			name: "quotes escaped",
			vals: []Value{{Key: "k", Value: `say "hi"`, Line: 1}},
			want: []string{`k: "say \"hi\""`},
		},
		{
			name: "binary rendered as base64",
			vals: []Value{{Key: "data", Binary: []byte("hello"), Line: 1}},
			want: []string{`data: "aGVsbG8="`},
		},
		{
			name: "trailing comment carried over",
			vals: []Value{{Key: "k", Value: "v", Line: 1, SourceLine: "k: v  # rotate me"}},
			want: []string{`k: "v"  # rotate me`},
		},
		{
			name: "hash inside value is not a comment",
			vals: []Value{{Key: "k", Value: "a#b", Line: 1, SourceLine: "k: a#b"}},
			want: []string{`k: "a#b"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.vals)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrailingComment(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "key: value # note", want: " # note"},
		{line: "  key: value  # note", want: "  # note"},
		{line: "key: a#b", want: ""},
		{line: "key: value", want: ""},
		{line: "", want: ""},
	}
	for _, tt := range tests {
		if got := trailingComment(tt.line); got != tt.want {
			t.Errorf("trailingComment(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestColorLines(t *testing.T) {
	vals := []Value{{Key: "k", Value: "v", Line: 1, SourceLine: "k: v # note"}}
	got := ColorLines(vals, NewColors())
	if len(got) != 1 {
		t.Fatalf("got %d lines", len(got))
	}
	// colors are disabled outside a terminal, the text is unchanged
	if want := `k: "v" # note`; stripFormatting(got[0]) != want {
		t.Errorf("line = %q, want %q", got[0], want)
	}
}

func stripFormatting(s string) string {
	out := make([]rune, 0, len(s))
	esc := false
	for _, r := range s {
		switch {
		case esc:
			if r == 'm' {
				esc = false
			}
		case r == '\x1b':
			esc = true
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
