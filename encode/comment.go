package encode

import (
	"regexp"
	"strings"
)

// A trailing comment is the first '#' preceded by whitespace.  A '#'
// embedded in a plain scalar, as in a#b, has no whitespace before it
// and is not a comment.  The match keeps its leading whitespace so it
// can be appended to a reconstructed line as is.
var commentRE = regexp.MustCompile(`\s+#[\S ]*`)

func trailingComment(sourceLine string) string {
	return commentRE.FindString(strings.TrimSpace(sourceLine))
}
