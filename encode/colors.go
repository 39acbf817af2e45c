package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Colors renders the parts of a reconstructed line for terminal debug
// output.
type Colors struct {
	Key     func(string, ...any) string
	Value   func(string, ...any) string
	Comment func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Key:     color.RGB(196, 96, 16).SprintfFunc(),
		Value:   color.RGB(128, 216, 236).SprintfFunc(),
		Comment: color.BlueString,
	}
	c.Key = escapePct(c.Key)
	c.Value = escapePct(c.Value)
	c.Comment = escapePct(c.Comment)
	return c
}

func escapePct(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

// ColorLines renders each value as its reconstructed line with the
// key, quoted value, and trailing comment colored separately.  Line
// gaps are not filled, the result has one entry per value.
func ColorLines(vals []Value, colors *Colors) []string {
	res := make([]string, len(vals))
	for i := range vals {
		v := &vals[i]
		line := renderValue(v)
		comment := trailingComment(v.SourceLine)
		body := line[:len(line)-len(comment)]
		quoted := body[len(v.Key)+2:]
		res[i] = colors.Key(v.Key) + ": " + colors.Value(quoted) + colors.Comment(comment)
	}
	return res
}
