package debug

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a character diff between two texts for debug output,
// insertions and deletions marked with terminal colors.
func Diff(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	return diffCfg.DiffPrettyText(diffs)
}
