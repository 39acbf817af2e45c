package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/secretscan/yamlline/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{
			name: "flat mapping",
			in:   "a: 1\nb: two\nc: true\n",
			want: map[string]any{"a": int64(1), "b": "two", "c": true},
		},
		{
			name: "nested mapping",
			in:   "a:\n  b:\n    c: deep\n",
			want: map[string]any{"a": map[string]any{"b": map[string]any{"c": "deep"}}},
		},
		{
			name: "block sequence",
			in:   "- one\n- 2\n- true\n",
			want: []any{"one", int64(2), true},
		},
		{
			name: "sequence under key",
			in:   "items:\n- a\n- b\n",
			want: map[string]any{"items": []any{"a", "b"}},
		},
		{
			name: "indented sequence under key",
			in:   "items:\n  - a\n  - b\n",
			want: map[string]any{"items": []any{"a", "b"}},
		},
		{
			name: "sequence of mappings",
			in:   "- a: 1\n  b: 2\n- a: 3\n",
			want: []any{
				map[string]any{"a": int64(1), "b": int64(2)},
				map[string]any{"a": int64(3)},
			},
		},
		{
			name: "flow mapping",
			in:   "a: {x: 1, y: two}\n",
			want: map[string]any{"a": map[string]any{"x": int64(1), "y": "two"}},
		},
		{
			name: "flow sequence",
			in:   "a: [1, two, true]\n",
			want: map[string]any{"a": []any{int64(1), "two", true}},
		},
		{
			name: "empty flow collections",
			in:   "a: {}\nb: []\n",
			want: map[string]any{"a": map[string]any{}, "b": []any{}},
		},
		{
			name: "flow trailing comma",
			in:   "a: {x: 1,}\n",
			want: map[string]any{"a": map[string]any{"x": int64(1)}},
		},
		{
			name: "flow key without value",
			in:   "a: {x}\n",
			want: map[string]any{"a": map[string]any{"x": nil}},
		},
		{
			name: "null values",
			in:   "a:\nb: ~\nc: null\n",
			want: map[string]any{"a": nil, "b": nil, "c": nil},
		},
		{
			name: "bool spellings",
			in:   "a: yes\nb: Off\nc: TRUE\n",
			want: map[string]any{"a": true, "b": false, "c": true},
		},
		{
			name: "numbers",
			in:   "a: -3\nb: 1.5\nc: 1e3\n",
			want: map[string]any{"a": int64(-3), "b": 1.5, "c": 1000.0},
		},
		{
			name: "numeric lookalikes stay strings",
			in:   "a: 1.2.3\nb: v2\n",
			want: map[string]any{"a": "1.2.3", "b": "v2"},
		},
		{
			name: "quoted strings",
			in:   "a: \"10\"\nb: 'true'\n",
			want: map[string]any{"a": "10", "b": "true"},
		},
		{
			name: "block scalar",
			in:   "a: |\n  line1\n  line2\n",
			want: map[string]any{"a": "line1\nline2\n"},
		},
		{
			name: "tagged scalars",
			in:   "a: !!str 10\nb: !!int '3'\nc: !!null x\n",
			want: map[string]any{"a": "10", "b": int64(3), "c": nil},
		},
		{
			name: "binary tag",
			in:   "data: !!binary aGVsbG8=\n",
			want: map[string]any{"data": []byte("hello")},
		},
		{
			name: "document markers",
			in:   "---\na: 1\n...\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "comments ignored",
			in:   "# head\na: 1 # trail\n# tail\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "bare scalar document",
			in:   "just a scalar\n",
			want: "just a scalar",
		},
		{
			name: "single pair in flow sequence",
			in:   "a: [x: 1]\n",
			want: map[string]any{"a": []any{map[string]any{"x": int64(1)}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, node.Interface()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "# only a comment\n", "---\n"} {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
		}
		if node != nil {
			t.Errorf("Parse(%q) = %v, want nil", in, node)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "bad indentation", in: "a: 1\n  b: 2\n"},
		{name: "value after value", in: "a: b: c\n"},
		{name: "unterminated flow mapping", in: "a: {x: 1\n"},
		{name: "unterminated flow sequence", in: "a: [1, 2\n"},
		{name: "unknown tag", in: "a: !!timestamp 2001-12-15\n"},
		{name: "bad binary", in: "a: !!binary ???\n"},
		{name: "anchor", in: "a: &x 1\n"},
		{name: "alias", in: "a: *x\n"},
		{name: "multiple documents", in: "a: 1\n---\nb: 2\n"},
		{name: "tab indentation", in: "a:\n\tb: 1\n"},
		{name: "tag type mismatch", in: "a: !!map [1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.in)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) = %v, does not wrap ErrParse", tt.in, err)
			}
		})
	}
}

func valueAt(t *testing.T, root *ir.Node, path ...string) *ir.Node {
	t.Helper()
	n := root
	for _, f := range path {
		n = ir.Get(n, f)
		if n == nil {
			t.Fatalf("no value at %v", path)
		}
	}
	return n
}

func TestScalarLines(t *testing.T) {
	in := "a: x\nb:\n  c: y\nd: |\n  z\n"
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path []string
		line int
	}{
		{path: []string{"a"}, line: 1},
		{path: []string{"b", "c"}, line: 3},
		// block scalar values sit on the line below their key
		{path: []string{"d"}, line: 5},
	}
	for _, tt := range tests {
		if got := valueAt(t, root, tt.path...).Line; got != tt.line {
			t.Errorf("line of %v = %d, want %d", tt.path, got, tt.line)
		}
	}
}

// A tag with nothing after it resolves to an empty value stamped with
// the tag's own line.
func TestEmptyTaggedValueLine(t *testing.T) {
	root, err := Parse([]byte("a: x\nb: !!str\nc: y\n"))
	if err != nil {
		t.Fatal(err)
	}
	b := valueAt(t, root, "b")
	if b.Type != ir.StringType || b.String != "" {
		t.Errorf("b = %+v, want empty string", b)
	}
	if b.Line != 2 {
		t.Errorf("b line = %d, want 2", b.Line)
	}
	if got := valueAt(t, root, "c").Line; got != 3 {
		t.Errorf("c line = %d, want 3", got)
	}
}
