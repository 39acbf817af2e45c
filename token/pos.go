package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets in a document to line/column positions.  The
// offset of every newline is indexed up front so LineCol is a binary
// search.
type PosDoc struct {
	d []byte
	n []int
}

// NewPosDoc indexes src.  A trailing newline is added when src does not
// end with one, so every line, the last included, is terminated.
func NewPosDoc(src []byte) *PosDoc {
	d := src
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(append([]byte(nil), src...), '\n')
	}
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// Doc returns the indexed document, including the added trailing newline
// if any.
func (p *PosDoc) Doc() []byte { return p.d }

// LineCol returns the 0-based line and column of a byte offset.
func (p *PosDoc) LineCol(off int) (int, int) {
	n := len(p.n)
	di := sort.Search(n, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
