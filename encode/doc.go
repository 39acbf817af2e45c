// Package encode flattens an annotated document tree and renders it
// back as one line of text per source line.
//
// Flatten walks a composed tree breadth first, collecting every
// annotated mapping value together with its source line.  Lines turns
// the collected values into a slice of reconstructed lines, one per
// value, placed at the index of the value's source line with empty
// strings filling the gaps.  Each reconstructed line has the shape
//
//	key: "value" # trailing comment
//
// where the comment, if any, is lifted verbatim from the source line.
//
// # Related Packages
//
//   - github.com/secretscan/yamlline/ir - the tree being flattened
//   - github.com/secretscan/yamlline/parse - produces annotated trees
package encode
