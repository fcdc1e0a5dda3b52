package editor

import (
	"bytes"

	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text"
)

// Operator identifiers. The case, cursor, and put variants share one
// implementation selected by the variant field of the context.
const (
	opDelete = iota
	opChange
	opYank
	opPutAfter
	opShiftRight
	opShiftLeft
	opJoin
	opRepeatInsert
	opRepeatReplace
	opCursorSOL
	opCaseSwap
	// Variant-only ids resolved onto the shared implementations above.
	opCaseLower
	opCaseUpper
	opCursorEOL
	opPutAfterEnd
	opPutBefore
	opPutBeforeEnd
)

// opContext carries everything an operator needs for one cursor.
type opContext struct {
	rng      text.Range
	pos      int
	count    int
	linewise bool
	variant  int
	reg      *register.Register
	index    int
	regCount int
}

// operatorDef binds an implementation to its dispatch properties.
type operatorDef struct {
	exec func(ed *Editor, c *opContext) int
	// needsRange operators discard the command on an empty range; put and
	// the repeat operators execute regardless.
	needsRange bool
	// yanks operators capture the covered bytes into the register.
	yanks bool
}

var operators = map[int]*operatorDef{
	opDelete:        {exec: execDelete, needsRange: true, yanks: true},
	opChange:        {exec: execChange, needsRange: true, yanks: true},
	opYank:          {exec: execYank, needsRange: true, yanks: true},
	opPutAfter:      {exec: execPut},
	opShiftRight:    {exec: execShiftRight, needsRange: true},
	opShiftLeft:     {exec: execShiftLeft, needsRange: true},
	opJoin:          {exec: execJoin, needsRange: true},
	opRepeatInsert:  {exec: execRepeatInsert},
	opRepeatReplace: {exec: execRepeatReplace},
	opCursorSOL:     {exec: execCursorLines, needsRange: true},
	opCaseSwap:      {exec: execCaseChange, needsRange: true},
}

// deleteRange removes the range and keeps the view's cursors consistent.
func (ed *Editor) deleteRange(r text.Range) {
	if !r.Valid() || r.Empty() {
		return
	}
	if err := ed.txt.DeleteRange(r); err != nil {
		ed.Info(err.Error())
		return
	}
	ed.view.AdjustForEdit(r, 0)
	ed.changes.note()
}

// insertAt places data at pos and keeps the view's cursors consistent.
func (ed *Editor) insertAt(pos int, data []byte) {
	if len(data) == 0 {
		return
	}
	if err := ed.txt.Insert(pos, data); err != nil {
		ed.Info(err.Error())
		return
	}
	ed.view.AdjustForEdit(text.Range{Start: pos, End: pos}, len(data))
	ed.changes.note()
}

func execDelete(ed *Editor, c *opContext) int {
	ed.deleteRange(c.rng)
	pos := c.rng.Start
	if c.linewise && pos == ed.txt.Size() {
		pos = ed.txt.LineBegin(ed.txt.LinePrev(pos))
	}
	return pos
}

func execChange(ed *Editor, c *opContext) int {
	r := c.rng
	if c.linewise && !r.Empty() {
		// Changing lines keeps the trailing newline so insert starts on
		// an empty line of its own.
		if b, ok := ed.txt.Byte(r.End - 1); ok && b == '\n' {
			r.End--
		}
	}
	ed.deleteRange(r)
	return r.Start
}

func execYank(ed *Editor, c *opContext) int {
	return c.pos
}

func execPut(ed *Editor, c *opContext) int {
	reg := c.reg
	if reg == nil {
		ed.Info("register empty")
		return c.pos
	}
	data := reg.Bytes
	// A multi-cursor yank distributes its slices when the cursor counts
	// match.
	if len(reg.Slices) == c.regCount && c.regCount > 1 {
		data = reg.Slices[c.index]
	}
	if len(data) == 0 {
		ed.Info("register empty")
		return c.pos
	}

	pos := c.pos
	linewise := reg.Kind == register.Linewise
	switch c.variant {
	case opPutAfter, opPutAfterEnd:
		if linewise {
			pos = ed.txt.LineNext(pos)
		} else {
			pos = ed.txt.CharNext(pos)
		}
	case opPutBefore, opPutBeforeEnd:
		if linewise {
			pos = ed.txt.LineBegin(pos)
		}
	}
	if linewise && !bytes.HasSuffix(data, []byte("\n")) {
		data = append(append([]byte(nil), data...), '\n')
	}

	insert := pos
	for i := 0; i < c.count; i++ {
		ed.insertAt(insert, data)
		insert += len(data)
	}

	if linewise {
		switch c.variant {
		case opPutBeforeEnd, opPutAfterEnd:
			return ed.txt.LineStart(insert)
		case opPutAfter:
			return ed.txt.LineStart(ed.txt.LineNext(c.pos))
		default:
			return ed.txt.LineStart(pos)
		}
	}
	if c.variant == opPutAfterEnd || c.variant == opPutBeforeEnd {
		return insert
	}
	return pos
}

// tabText returns the indentation unit honoring expandtab.
func (ed *Editor) tabText() []byte {
	if ed.expandtab {
		return bytes.Repeat([]byte(" "), ed.tabwidth)
	}
	return []byte("\t")
}

// shiftLines visits the begin of every line covered by the range from the
// last line upward, so inserts and deletes do not disturb pending visits.
func (ed *Editor) shiftLines(r text.Range, visit func(lineBegin int)) {
	pos := ed.txt.LineBegin(r.End)
	if pos == r.End && pos > r.Start {
		// The range ends at a line begin; skip that line.
		pos = ed.txt.LineBegin(ed.txt.LinePrev(pos))
	}
	for {
		visit(pos)
		if pos <= r.Start {
			return
		}
		prev := ed.txt.LineBegin(ed.txt.LinePrev(pos))
		if prev == pos {
			return
		}
		pos = prev
	}
}

func execShiftRight(ed *Editor, c *opContext) int {
	tab := ed.tabText()
	ed.shiftLines(c.rng, func(lineBegin int) {
		ed.insertAt(lineBegin, tab)
	})
	return c.pos + len(tab)
}

func execShiftLeft(ed *Editor, c *opContext) int {
	tabwidth := ed.tabwidth
	removed := 0
	ed.shiftLines(c.rng, func(lineBegin int) {
		n := 0
		if b, ok := ed.txt.Byte(lineBegin); ok && b == '\t' {
			n = 1
		} else {
			for n < tabwidth {
				b, ok := ed.txt.Byte(lineBegin + n)
				if !ok || b != ' ' {
					break
				}
				n++
			}
		}
		if n > 0 {
			ed.deleteRange(text.Range{Start: lineBegin, End: lineBegin + n})
			removed = n
		}
	})
	pos := c.pos - removed
	if pos < 0 {
		pos = 0
	}
	return pos
}

func execCaseChange(ed *Editor, c *opContext) int {
	buf := ed.txt.Bytes(c.rng.Start, c.rng.End)
	for i, b := range buf {
		switch c.variant {
		case opCaseLower:
			buf[i] = toLower(b)
		case opCaseUpper:
			buf[i] = toUpper(b)
		default:
			if b >= 'a' && b <= 'z' {
				buf[i] = toUpper(b)
			} else if b >= 'A' && b <= 'Z' {
				buf[i] = toLower(b)
			}
		}
	}
	ed.deleteRange(c.rng)
	ed.insertAt(c.rng.Start, buf)
	return c.pos
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func execJoin(ed *Editor, c *opContext) int {
	r := c.rng
	end := ed.txt.LineBegin(r.End)
	// A linewise range covers the trailing newline of its last line;
	// joining stops one line earlier so the block keeps its final break.
	if c.linewise && ed.txt.IsLinewise(r) {
		prev := ed.txt.LineBegin(ed.txt.LinePrev(end))
		if prev >= r.Start {
			end = prev
		}
	}
	joinPos := -1
	for end > r.Start {
		lineBegin := end
		prevFinish := ed.txt.LineEnd(ed.txt.LinePrev(lineBegin))
		if prevFinish >= lineBegin {
			break
		}
		// Replace the newline and the following indentation with a
		// single space.
		wsEnd := lineBegin
		for {
			b, ok := ed.txt.Byte(wsEnd)
			if !ok || (b != ' ' && b != '\t') {
				break
			}
			wsEnd++
		}
		ed.deleteRange(text.Range{Start: prevFinish, End: wsEnd})
		ed.insertAt(prevFinish, []byte(" "))
		joinPos = prevFinish
		end = ed.txt.LineBegin(prevFinish)
	}
	if joinPos >= 0 {
		return joinPos
	}
	return c.rng.Start
}

func execRepeatInsert(ed *Editor, c *opContext) int {
	if len(ed.repeatBuf) == 0 {
		return c.pos
	}
	data := append([]byte(nil), ed.repeatBuf...)
	ed.insertAt(c.pos, data)
	return c.pos + len(data)
}

func execRepeatReplace(ed *Editor, c *opContext) int {
	if len(ed.repeatBuf) == 0 {
		return c.pos
	}
	data := append([]byte(nil), ed.repeatBuf...)
	ed.replaceAt(c.pos, data)
	return c.pos
}

// replaceAt overwrites the characters starting at pos with data, the way
// replace mode types over existing text.
func (ed *Editor) replaceAt(pos int, data []byte) {
	end := pos
	lineEnd := ed.txt.LineEnd(pos)
	for consumed := 0; consumed < len(data) && end < lineEnd; {
		next := ed.txt.CharNext(end)
		consumed += next - end
		end = next
		if consumed >= len(data) {
			break
		}
	}
	// Do not type over line breaks.
	if n := bytes.IndexByte(data, '\n'); n >= 0 {
		end = pos
	}
	ed.deleteRange(text.Range{Start: pos, End: end})
	ed.insertAt(pos, data)
}

func execCursorLines(ed *Editor, c *opContext) int {
	r := ed.txt.RangeLinewise(c.rng)
	line := r.Start
	for line < r.End {
		var pos int
		if c.variant == opCursorEOL {
			pos = ed.txt.LineFinish(line)
		} else {
			pos = ed.txt.LineStart(line)
		}
		ed.view.CursorNew(pos)
		next := ed.txt.LineNext(line)
		if next == line {
			break
		}
		line = next
	}
	// The originating cursor dissolves into the new set.
	return text.EPos
}

// indentOf returns the leading whitespace of the line containing pos.
func (ed *Editor) indentOf(pos int) []byte {
	begin := ed.txt.LineBegin(pos)
	start := ed.txt.LineStart(pos)
	return ed.txt.Bytes(begin, start)
}

// joinCount lowers the pending count by one so "3J" joins three lines into
// one, matching the J semantics.
func (ed *Editor) joinCount() {
	if c := ed.action.count; c > 0 {
		ed.action.count = c - 1
	}
}
