// Package ir provides the document tree produced by composition.
//
// A document is represented as a tree of Node values.  The tree is a
// recursive tagged union: the Type field selects the node kind and
// which value fields are meaningful.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - BinaryType: decoded !!binary value
//   - ObjectType: key-value pairs (fields and values)
//   - ArrayType: ordered list of nodes
//   - AnnotatedType: a string or binary mapping value wrapped together
//     with the 1-based source line its value token begins on and the
//     key it was found under
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always as many fields as values.
//
// Annotated nodes are produced during composition when value
// annotation is enabled; see the parse package.  They are first-class
// leaves rather than sentinel-keyed mappings, so they can never
// collide with document keys.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//
// # Thread Safety
//
// Node structures are not thread-safe.  A tree is built once per parse
// and should be treated as immutable afterwards.
//
// # Related Packages
//
//   - github.com/secretscan/yamlline/parse - parses text into ir nodes
//   - github.com/secretscan/yamlline/encode - flattens and renders trees
package ir
