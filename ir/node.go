package ir

import (
	"strconv"
)

// Node is a single value in a composed document.  It is a tagged
// union: Type selects which value fields are meaningful.  Object nodes
// keep Fields[i] as the key for the value at Values[i].  Scalar nodes
// carry the 1-based source line their value token begins on in Line
// (0 when never stamped).  Annotated nodes are leaves wrapping a string
// or binary mapping value together with its provenance.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	Tag     string
	String  string
	Bytes   []byte
	Bool    bool
	Int64   *int64
	Float64 *float64

	Line        int
	OriginalKey string
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromBinary(d []byte) *Node {
	return &Node{
		Type:  BinaryType,
		Bytes: d,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = &Node{Type: NullType}
		}
		field := kv.Key.KeyString()
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Key.ParentField = field
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = field
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Annotate wraps a string or binary mapping value in an Annotated node
// carrying its line and the key it was found under.  The wrapper takes
// the value's place in the parent mapping.
func Annotate(key, val *Node) *Node {
	return &Node{
		Type:        AnnotatedType,
		Parent:      val.Parent,
		ParentIndex: val.ParentIndex,
		ParentField: val.ParentField,
		Tag:         val.Tag,
		String:      val.String,
		Bytes:       val.Bytes,
		Line:        val.Line,
		OriginalKey: key.KeyString(),
	}
}

// KeyString renders a key node as the field text used for provenance
// and for object field lookup.
func (y *Node) KeyString() string {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	}
	return y.String
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := 0; i < n; i++ {
		if y.Fields[i].KeyString() == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Interface converts the subtree to plain Go values.  Annotated nodes
// unwrap to their underlying string or byte value.
func (y *Node) Interface() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case StringType:
		return y.String
	case BinaryType:
		return append([]byte(nil), y.Bytes...)
	case AnnotatedType:
		if y.Bytes != nil {
			return append([]byte(nil), y.Bytes...)
		}
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Values))
		for i, v := range y.Values {
			res[y.Fields[i].KeyString()] = v.Interface()
		}
		return res
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
