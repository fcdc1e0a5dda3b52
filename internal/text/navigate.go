package text

import (
	"bytes"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Navigation primitives. All of them are total: any input position is
// clamped and the result is a valid position on a character boundary.
// Character steps advance over grapheme clusters so combining sequences are
// never split.

// CharNext returns the position after the character at pos.
func (t *Text) CharNext(pos int) int {
	pos = t.clamp(pos)
	if pos >= len(t.content) {
		return pos
	}
	gr, _, _, _ := uniseg.FirstGraphemeCluster(t.content[pos:], -1)
	return pos + len(gr)
}

// CharPrev returns the position of the character before pos.
func (t *Text) CharPrev(pos int) int {
	pos = t.clamp(pos)
	if pos == 0 {
		return 0
	}
	// Walk graphemes from the start of the line; the previous boundary is
	// the answer. A position at line begin steps over the newline.
	begin := t.LineBegin(pos)
	if pos == begin {
		return pos - 1
	}
	prev := begin
	rest := t.content[begin:pos]
	for len(rest) > 0 {
		gr, r, _, _ := uniseg.FirstGraphemeCluster(rest, -1)
		if len(rest) == len(gr) {
			return prev
		}
		prev += len(gr)
		rest = r
	}
	return prev
}

// CharUnder returns the range of the character at pos.
func (t *Text) CharUnder(pos int) Range {
	pos = t.clamp(pos)
	return Range{Start: pos, End: t.CharNext(pos)}
}

// LineBegin returns the position just after the previous newline.
func (t *Text) LineBegin(pos int) int {
	pos = t.clamp(pos)
	if i := bytes.LastIndexByte(t.content[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// LineEnd returns the position of the newline terminating the line, or the
// buffer end for the last line.
func (t *Text) LineEnd(pos int) int {
	pos = t.clamp(pos)
	if i := bytes.IndexByte(t.content[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(t.content)
}

// LineNext returns the begin of the following line.
func (t *Text) LineNext(pos int) int {
	end := t.LineEnd(pos)
	if end < len(t.content) {
		return end + 1
	}
	return end
}

// LinePrev returns the begin of the preceding line.
func (t *Text) LinePrev(pos int) int {
	begin := t.LineBegin(pos)
	if begin == 0 {
		return 0
	}
	return t.LineBegin(begin - 1)
}

// LineStart returns the first non-blank character of the line.
func (t *Text) LineStart(pos int) int {
	p := t.LineBegin(pos)
	end := t.LineEnd(p)
	for p < end && (t.content[p] == ' ' || t.content[p] == '\t') {
		p++
	}
	return p
}

// LineFinish returns the last non-blank character of the line, or the line
// begin when the line is all blank.
func (t *Text) LineFinish(pos int) int {
	begin := t.LineBegin(pos)
	p := t.LineEnd(pos)
	for p > begin {
		prev := t.CharPrev(p)
		if c := t.content[prev]; c != ' ' && c != '\t' {
			return prev
		}
		p = prev
	}
	return begin
}

// LineLastChar returns the position of the last character of the line, or
// the line begin for an empty line.
func (t *Text) LineLastChar(pos int) int {
	begin := t.LineBegin(pos)
	end := t.LineEnd(pos)
	if end == begin {
		return begin
	}
	return t.CharPrev(end)
}

// LineCharNext advances one character without leaving the line.
func (t *Text) LineCharNext(pos int) int {
	next := t.CharNext(pos)
	if next > t.LineLastChar(pos) && next >= t.LineEnd(pos) {
		return pos
	}
	return next
}

// LineCharPrev steps back one character without leaving the line.
func (t *Text) LineCharPrev(pos int) int {
	pos = t.clamp(pos)
	if pos == t.LineBegin(pos) {
		return pos
	}
	return t.CharPrev(pos)
}

// LineUp moves to the previous line, preserving the display column.
func (t *Text) LineUp(pos int) int {
	begin := t.LineBegin(pos)
	if begin == 0 {
		return pos
	}
	return t.ColumnSet(begin-1, t.ColumnGet(pos))
}

// LineDown moves to the next line, preserving the display column.
func (t *Text) LineDown(pos int) int {
	next := t.LineNext(pos)
	if next == t.LineEnd(pos) {
		return pos
	}
	return t.ColumnSet(next, t.ColumnGet(pos))
}

// LineNo returns the 1-based line number containing pos.
func (t *Text) LineNo(pos int) int {
	pos = t.clamp(pos)
	return bytes.Count(t.content[:pos], []byte{'\n'}) + 1
}

// LineCount returns the number of lines in the buffer.
func (t *Text) LineCount() int {
	n := bytes.Count(t.content, []byte{'\n'}) + 1
	if len(t.content) > 0 && t.content[len(t.content)-1] == '\n' {
		n--
	}
	return n
}

// PosByLine returns the begin of the 1-based line n, clamped to the last
// line.
func (t *Text) PosByLine(n int) int {
	if n <= 1 {
		return 0
	}
	pos := 0
	for line := 1; line < n; line++ {
		next := t.LineNext(pos)
		if next == pos || next >= len(t.content) && t.LineEnd(pos) == len(t.content) {
			break
		}
		pos = next
	}
	return pos
}

// ColumnGet returns the display column of pos within its line, accounting
// for character widths.
func (t *Text) ColumnGet(pos int) int {
	pos = t.clamp(pos)
	begin := t.LineBegin(pos)
	col := 0
	rest := t.content[begin:pos]
	for len(rest) > 0 {
		gr, r, _, _ := uniseg.FirstGraphemeCluster(rest, -1)
		col += runewidth.StringWidth(string(gr))
		rest = r
	}
	return col
}

// ColumnSet returns the position at display column col of the line
// containing pos, clamped to the line's last character.
func (t *Text) ColumnSet(pos, col int) int {
	begin := t.LineBegin(pos)
	end := t.LineEnd(pos)
	p := begin
	cur := 0
	rest := t.content[begin:end]
	for len(rest) > 0 && cur < col {
		gr, r, _, _ := uniseg.FirstGraphemeCluster(rest, -1)
		cur += runewidth.StringWidth(string(gr))
		p += len(gr)
		rest = r
	}
	if p >= end && end > begin {
		return t.LineLastChar(pos)
	}
	return p
}

// LineFindNext searches forward for the byte sequence within the current
// line, starting at pos. Returns the match position or pos when not found.
func (t *Text) LineFindNext(pos int, seq []byte) int {
	pos = t.clamp(pos)
	end := t.LineEnd(pos)
	if len(seq) == 0 || pos >= end {
		return pos
	}
	if i := bytes.Index(t.content[pos:end], seq); i >= 0 {
		return pos + i
	}
	return pos
}

// LineFindPrev searches backward for the byte sequence within the current
// line, ending the search at pos.
func (t *Text) LineFindPrev(pos int, seq []byte) int {
	pos = t.clamp(pos)
	begin := t.LineBegin(pos)
	if len(seq) == 0 || pos <= begin {
		return pos
	}
	limit := pos + len(seq)
	if limit > t.LineEnd(pos) {
		limit = t.LineEnd(pos)
	}
	if i := bytes.LastIndex(t.content[begin:limit], seq); i >= 0 {
		return begin + i
	}
	return pos
}

// NewlineType reports the dominant line ending of the buffer.
func (t *Text) NewlineType() string {
	if i := bytes.IndexByte(t.content, '\n'); i > 0 && t.content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
