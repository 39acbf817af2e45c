package token

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// scanQuoted scans a quoted scalar starting at the opening quote and
// returns the offset one past the closing quote.  Double quotes use
// backslash escapes, single quotes escape only the quote itself by
// doubling.  Newlines inside quotes are permitted and folded later.
func scanQuoted(d []byte, i int) (int, error) {
	q := d[i]
	j := i + 1
	n := len(d)
	if q == '\'' {
		for j < n {
			if d[j] != '\'' {
				j++
				continue
			}
			if j+1 < n && d[j+1] == '\'' {
				j += 2
				continue
			}
			return j + 1, nil
		}
		return 0, ErrUnterminated
	}
	for j < n {
		switch d[j] {
		case '"':
			return j + 1, nil
		case '\\':
			if j+1 >= n {
				return 0, ErrUnterminated
			}
			switch d[j+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', '0':
				j += 2
			case 'x':
				if j+4 > n || !allHex(d[j+2:j+4]) {
					return 0, ErrBadUnicode
				}
				j += 4
			case 'u':
				if j+6 > n || !allHex(d[j+2:j+6]) {
					return 0, ErrBadUnicode
				}
				j += 6
			default:
				return 0, ErrBadEscape
			}
		default:
			j++
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a scanned quoted scalar, quotes included.
func QuotedToString(d []byte) string {
	body := foldFlow(d[1 : len(d)-1])
	if d[0] == '\'' {
		return strings.ReplaceAll(string(body), "''", "'")
	}
	return unescapeDouble(body)
}

// foldFlow applies flow line folding: a single line break with its
// surrounding indentation becomes one space, k+1 consecutive breaks
// become k newlines.
func foldFlow(d []byte) []byte {
	if !bytes.ContainsRune(d, '\n') {
		return d
	}
	var out []byte
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\n' {
			out = append(out, c)
			i++
			continue
		}
		for len(out) > 0 && (out[len(out)-1] == ' ' || out[len(out)-1] == '\t' || out[len(out)-1] == '\r') {
			out = out[:len(out)-1]
		}
		nl := 0
		for i < len(d) {
			if d[i] == '\n' {
				nl++
				i++
				continue
			}
			if d[i] == ' ' || d[i] == '\t' {
				i++
				continue
			}
			break
		}
		if nl > 1 {
			out = append(out, bytes.Repeat([]byte{'\n'}, nl-1)...)
		} else {
			out = append(out, ' ')
		}
	}
	return out
}

func unescapeDouble(body []byte) string {
	b := &strings.Builder{}
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			b.WriteByte('\\')
			break
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '0':
			b.WriteByte(0)
		case 'x':
			dst := []byte{0}
			if _, err := hex.Decode(dst, body[i+1:i+3]); err == nil {
				b.WriteByte(dst[0])
			}
			i += 2
		case 'u':
			dst := []byte{0, 0}
			if _, err := hex.Decode(dst, body[i+1:i+5]); err == nil {
				b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
			}
			i += 4
		default:
			b.WriteByte(body[i])
		}
		i++
	}
	return b.String()
}
