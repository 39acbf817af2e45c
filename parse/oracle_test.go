package parse

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

// Cross-check composition against an independent YAML implementation.
// The documents hold only string scalars, keeping the comparison free
// of numeric representation differences.
func TestParseAgainstYAMLDecoder(t *testing.T) {
	docs := []string{
		"a: x\nb: y\n",
		"a:\n  b: c\n  d:\n    e: f\n",
		"list:\n- one\n- two\nother: val\n",
		"a: {x: one, y: two}\n",
		"a: [one, two]\n",
		"a: \"quoted value\"\nb: 'single'\n",
		"- a: one\n- b: two\n",
		"deep:\n  - k: v\n  - k: w\n",
	}
	for _, doc := range docs {
		node, err := Parse([]byte(doc))
		if err != nil {
			t.Errorf("Parse(%q): %v", doc, err)
			continue
		}
		var want any
		if err := yaml.Unmarshal([]byte(doc), &want); err != nil {
			t.Fatalf("yaml.Unmarshal(%q): %v", doc, err)
		}
		if diff := cmp.Diff(want, node.Interface()); diff != "" {
			t.Errorf("Parse(%q) disagrees with reference decoder (-want +got):\n%s", doc, diff)
		}
	}
}
