package yamlline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/secretscan/yamlline/debug"
	"github.com/secretscan/yamlline/encode"
	"github.com/secretscan/yamlline/parse"
)

// YAMLTransformer rewrites a YAML file so that every string mapping
// value appears as a `key: "value"` line at the index of its source
// line.  Values that span flow mappings, block scalars, or nested
// mappings all land where the value token starts in the original
// file, with trailing comments carried over.
type YAMLTransformer struct{}

var _ Transformer = YAMLTransformer{}

// ShouldTransform accepts .yaml and .yml files, case insensitively.
func (YAMLTransformer) ShouldTransform(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Transform parses src and returns the reconstructed lines.  Any
// parse failure wraps ErrParsing.
func (YAMLTransformer) Transform(src []byte) ([]string, error) {
	node, err := parse.Parse(src, parse.WithValueAnnotations())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	if debug.Tree() && node != nil {
		debug.LogAny(node.Interface())
	}
	vals := encode.Flatten(node, sourceLines(src))
	lines := encode.Lines(vals)
	if debug.Recon() {
		logRecon(src, vals, lines)
	}
	return lines, nil
}

// TransformFile reads and transforms the file at path.
func (t YAMLTransformer) TransformFile(path string) ([]string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return t.Transform(d)
}

func sourceLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func logRecon(src []byte, vals []encode.Value, lines []string) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		for _, line := range encode.ColorLines(vals, encode.NewColors()) {
			fmt.Fprintln(os.Stderr, line)
		}
		return
	}
	fmt.Fprintln(os.Stderr, debug.Diff(string(src), strings.Join(lines, "\n")))
}
