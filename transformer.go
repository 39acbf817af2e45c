package yamlline

// Transformer rewrites a structured file into lines a line-oriented
// scanner can process.
type Transformer interface {
	// ShouldTransform reports whether this transformer handles the
	// file at path, judged by name alone.
	ShouldTransform(path string) bool
	// Transform parses src and returns the rewritten lines.  Line i
	// of the result corresponds to line i+1 of src.
	Transform(src []byte) ([]string, error)
}
