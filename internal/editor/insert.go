package editor

import (
	"sort"

	"github.com/vixedit/vix/internal/text"
	"github.com/vixedit/vix/internal/view"
)

// InsertKey inserts data at every cursor, advancing each past its own
// insertion. Edits run highest cursor first so lower offsets stay valid.
func (ed *Editor) InsertKey(data []byte) {
	if len(data) == 0 {
		return
	}
	ed.txt.NoteCursor(ed.view.Primary().Pos)
	cursors := append([]*view.Cursor(nil), ed.view.Cursors()...)
	sort.SliceStable(cursors, func(i, j int) bool { return cursors[i].Pos > cursors[j].Pos })
	for _, c := range cursors {
		pos := c.Pos
		ed.insertAt(pos, data)
		c.Pos = pos + len(data)
	}
	ed.view.Normalize()
	ed.ui.Draw()
}

// ReplaceKey types over the character under every cursor, advancing each.
func (ed *Editor) ReplaceKey(data []byte) {
	if len(data) == 0 {
		return
	}
	ed.txt.NoteCursor(ed.view.Primary().Pos)
	cursors := append([]*view.Cursor(nil), ed.view.Cursors()...)
	sort.SliceStable(cursors, func(i, j int) bool { return cursors[i].Pos > cursors[j].Pos })
	for _, c := range cursors {
		pos := c.Pos
		ed.replaceAt(pos, data)
		c.Pos = pos + len(data)
	}
	ed.view.Normalize()
	ed.ui.Draw()
}

// ReplaceChar replaces the character under every cursor without moving it,
// the r command.
func (ed *Editor) ReplaceChar(data []byte) {
	ed.txt.NoteCursor(ed.view.Primary().Pos)
	cursors := append([]*view.Cursor(nil), ed.view.Cursors()...)
	sort.SliceStable(cursors, func(i, j int) bool { return cursors[i].Pos > cursors[j].Pos })
	for _, c := range cursors {
		pos := c.Pos
		under := ed.txt.CharUnder(pos)
		if under.Empty() {
			continue
		}
		if b, ok := ed.txt.Byte(pos); ok && b == '\n' {
			continue
		}
		ed.deleteRange(under)
		ed.insertAt(pos, data)
		c.Pos = pos
	}
	ed.view.Normalize()
	ed.ui.Draw()
}

// Insert places data at an absolute position, used by insert-register and
// the exposed editing API.
func (ed *Editor) Insert(pos int, data []byte) {
	ed.insertAt(pos, data)
	ed.ui.Draw()
}

// Delete removes n bytes at pos through the exposed editing API.
func (ed *Editor) Delete(pos, n int) {
	ed.deleteRange(text.Range{Start: pos, End: pos + n})
	ed.ui.Draw()
}

// InsertNewline inserts a line break matching the buffer's newline type,
// copying the previous line's indentation when autoindent is set.
func (ed *Editor) InsertNewline() {
	nl := []byte(ed.txt.NewlineType())
	ed.InsertKey(nl)
	if ed.autoindent {
		pos := ed.view.Primary().Pos
		prev := ed.txt.LinePrev(pos)
		if prev != pos {
			if indent := ed.indentOf(prev); len(indent) > 0 {
				ed.InsertKey(indent)
			}
		}
	}
}

// InsertTab inserts a tab or the equivalent spaces.
func (ed *Editor) InsertTab() {
	ed.InsertKey(ed.tabText())
}

