// Package token tokenizes YAML documents while preserving byte-offset
// positions.
//
// Mainstream YAML decoders resolve scalars to native values and discard
// where in the source they came from.  This tokenizer keeps a Pos on
// every token, backed by a PosDoc newline index, so later composition
// stages can stamp values with the exact line their token begins on.
//
// The grammar covered is the subset needed for configuration scanning:
// block and flow collections, plain and quoted scalars, literal and
// folded block scalars, tags and comments.  Anchors, aliases and
// complex keys are rejected.
//
// # Related Packages
//
//   - github.com/secretscan/yamlline/parse - composition into ir nodes
//   - github.com/secretscan/yamlline/ir - document tree representation
package token
