package encode

import (
	"sort"

	"github.com/secretscan/yamlline/ir"
)

// Value is one annotated mapping value pulled out of a document tree.
type Value struct {
	// Key is the mapping key the value was found under.
	Key string
	// Value holds string values.  Empty when Binary is set.
	Value string
	// Binary holds decoded !!binary values.  Nil for string values.
	Binary []byte
	// Line is the 1-based source line the value token begins on.
	Line int
	// SourceLine is the raw text of that line, kept for trailing
	// comment recovery.  Empty when Line falls outside src.
	SourceLine string
}

// Flatten collects every annotated value in the tree rooted at root,
// ordered by source line.  src holds the document's lines, used to
// attach each value's raw source text.  Bare scalar documents and
// sequence elements carry no annotations and so contribute nothing.
func Flatten(root *ir.Node, src []string) []Value {
	if root == nil {
		return nil
	}
	var vals []Value
	queue := []*ir.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		switch n.Type {
		case ir.AnnotatedType:
			v := Value{
				Key:  n.OriginalKey,
				Line: n.Line,
			}
			if n.Bytes != nil {
				v.Binary = n.Bytes
			} else {
				v.Value = n.String
			}
			if v.Line >= 1 && v.Line <= len(src) {
				v.SourceLine = src[v.Line-1]
			}
			vals = append(vals, v)
		case ir.ObjectType, ir.ArrayType:
			queue = append(queue, n.Values...)
		}
	}
	// Sibling subtrees can interleave line ranges, so the sort is
	// required, traversal order is not enough.
	sort.SliceStable(vals, func(i, j int) bool {
		return vals[i].Line < vals[j].Line
	})
	return vals
}
