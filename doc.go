// Package yamlline recovers the source line of every string value in
// a YAML file.
//
// Secret scanners work line by line, but YAML mapping values can sit
// far from where a naive line scan expects them: flow mappings fold
// several values onto one line, block scalars push a value below its
// key, and nested mappings interleave.  YAMLTransformer parses a
// document, tracks the line each value token begins on, and emits one
// reconstructed `key: "value"` line per value at the index of its
// source line, so a line-oriented scanner can attribute findings to
// the right place in the original file.
//
// # Usage
//
//	t := yamlline.YAMLTransformer{}
//	lines, err := t.TransformFile("config.yaml")
//	if err != nil {
//	    // errors.Is(err, yamlline.ErrParsing) for unparseable input
//	}
//	for i, line := range lines {
//	    // line i corresponds to line i of config.yaml
//	}
//
// # Related Packages
//
//   - github.com/secretscan/yamlline/parse - tokenizing and composing
//   - github.com/secretscan/yamlline/encode - flattening and rendering
//   - github.com/secretscan/yamlline/ir - the document tree
//   - github.com/secretscan/yamlline/debug - env-gated diagnostics
package yamlline
