package encode

import (
	"encoding/base64"
	"strings"
)

// Lines renders flattened values as reconstructed source lines.  The
// values must already be ordered by Line.  Each value lands at index
// Line-1 with empty strings filling the gaps.  A value whose line is
// already occupied, two values stamped with the same line, is appended
// after it instead.
func Lines(vals []Value) []string {
	var lines []string
	for i := range vals {
		v := &vals[i]
		for len(lines) < v.Line-1 {
			lines = append(lines, "")
		}
		lines = append(lines, renderValue(v))
	}
	return lines
}

func renderValue(v *Value) string {
	var val string
	if v.Binary != nil {
		// binary scalars are scanned in their base64 source form
		val = base64.StdEncoding.EncodeToString(v.Binary)
	} else {
		val = strings.ReplaceAll(v.Value, `"`, `\"`)
	}
	return v.Key + `: "` + val + `"` + trailingComment(v.SourceLine)
}
