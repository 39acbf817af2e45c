package token

import (
	"bytes"
	"strings"
)

// scanBlockScalar scans a literal (|) or folded (>) block scalar whose
// header starts at offset i.  The returned token carries the decoded
// text in Bytes and its Pos addresses the first line of the literal,
// which is the line a downstream consumer should attribute the value to.
func scanBlockScalar(d []byte, pd *PosDoc, i int) (Token, int, error) {
	style := d[i]
	hdrIndent := lineIndent(d, pd, i)
	j := i + 1
	chomp := byte(0)
	explicit := 0
hdr:
	for j < len(d) {
		switch c := d[j]; {
		case c == '+' || c == '-':
			if chomp != 0 {
				return Token{}, 0, UnexpectedErr("chomping indicator", pd.Pos(j))
			}
			chomp = c
			j++
		case c >= '1' && c <= '9':
			if explicit != 0 {
				return Token{}, 0, UnexpectedErr("indentation indicator", pd.Pos(j))
			}
			explicit = int(c - '0')
			j++
		default:
			break hdr
		}
	}
	for j < len(d) && (d[j] == ' ' || d[j] == '\t') {
		j++
	}
	if j < len(d) && d[j] == '#' {
		j = eol(d, j)
	}
	if j < len(d) && d[j] == '\r' {
		j++
	}
	if j >= len(d) || d[j] != '\n' {
		return Token{}, 0, ExpectedErr("newline after block scalar header", pd.Pos(j))
	}
	j++

	contentStart := j
	blockIndent := -1
	if explicit > 0 {
		blockIndent = hdrIndent + explicit
	}
	var lines []string
	end := contentStart
	for j < len(d) {
		le := eol(d, j)
		line := bytes.TrimRight(d[j:le], "\r")
		ind := leadingSpaces(line)
		switch {
		case len(bytes.TrimLeft(line, " \t")) == 0:
			lines = append(lines, "")
		case blockIndent < 0 && ind > hdrIndent:
			blockIndent = ind
			lines = append(lines, string(line[blockIndent:]))
		case blockIndent >= 0 && ind >= blockIndent:
			lines = append(lines, string(line[blockIndent:]))
		default:
			return Token{
				Type:  TBlockScalar,
				Pos:   pd.Pos(contentStart),
				Bytes: []byte(blockText(style, chomp, lines)),
			}, end, nil
		}
		j = le + 1
		end = j
	}
	return Token{
		Type:  TBlockScalar,
		Pos:   pd.Pos(min(contentStart, len(d))),
		Bytes: []byte(blockText(style, chomp, lines)),
	}, end, nil
}

func blockText(style, chomp byte, lines []string) string {
	trail := 0
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
		trail++
	}
	var body string
	if style == '>' {
		b := &strings.Builder{}
		prevText := false
		for _, ln := range lines {
			switch {
			case ln == "":
				b.WriteByte('\n')
				prevText = false
			case prevText:
				b.WriteByte(' ')
				b.WriteString(ln)
			default:
				b.WriteString(ln)
				prevText = true
			}
		}
		body = b.String()
	} else {
		body = strings.Join(lines, "\n")
	}
	switch {
	case body == "" && chomp != '+':
		return ""
	case chomp == '-':
		return body
	case chomp == '+':
		return body + strings.Repeat("\n", trail+1)
	default:
		return body + "\n"
	}
}

// lineIndent is the number of leading spaces on the line containing
// offset i.
func lineIndent(d []byte, pd *PosDoc, i int) int {
	_, col := pd.LineCol(i)
	ls := i - col
	j := ls
	for j < len(d) && d[j] == ' ' {
		j++
	}
	return j - ls
}

func leadingSpaces(line []byte) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}
