// Package parse composes yamlline documents from text.
//
// Parse accepts a single document using block mappings, block
// sequences, flow mappings, flow sequences, plain and quoted scalars,
// block scalars, and a small set of !! tags.  Anchors, aliases,
// complex keys, and multi-document streams are rejected with errors.
//
// Every scalar node is stamped with the 1-based source line its value
// token begins on.  Values inside flow mappings are stamped with the
// line the flow mapping starts on when its entries are written inline
// or comma-separated, matching where a reader would point at the
// value in the source.
//
// With WithValueAnnotations, string and binary values of mappings are
// replaced by ir Annotated nodes carrying the value, its line, and the
// key it was found under.
//
// # Related Packages
//
//   - github.com/secretscan/yamlline/token - tokenization and positions
//   - github.com/secretscan/yamlline/ir - the composed document tree
//   - github.com/secretscan/yamlline/encode - flattening and rendering
package parse
