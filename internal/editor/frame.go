package editor

import (
	"strings"

	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/ui"
)

// Frame renders the editor state into the structure the terminal backend
// draws. The view's scroll anchor picks the first line; the frame covers at
// most the view height.
func (ed *Editor) Frame() ui.Frame {
	height := ed.view.Height()
	anchor := ed.txt.LineBegin(ed.view.Anchor())

	// Keep the primary cursor visible.
	primaryLine := ed.txt.LineNo(ed.view.Primary().Pos)
	anchorLine := ed.txt.LineNo(anchor)
	if primaryLine < anchorLine {
		anchor = ed.txt.LineBegin(ed.view.Primary().Pos)
		anchorLine = primaryLine
	} else if primaryLine >= anchorLine+height {
		anchor = ed.txt.PosByLine(primaryLine - height + 1)
		anchorLine = primaryLine - height + 1
	}

	var lines []string
	pos := anchor
	for i := 0; i < height; i++ {
		end := ed.txt.LineEnd(pos)
		lines = append(lines, string(ed.txt.Bytes(pos, end)))
		next := ed.txt.LineNext(pos)
		if next == end && end >= ed.txt.Size() {
			break
		}
		pos = next
	}

	frame := ui.Frame{
		Lines:  lines,
		Status: ed.statusLine(),
		Prompt: ed.prompt.leader + ed.prompt.line,
	}
	for _, c := range ed.view.Cursors() {
		line := ed.txt.LineNo(c.Pos) - anchorLine
		col := ed.txt.ColumnGet(c.Pos)
		fp := ui.FramePos{Line: line, Col: col}
		frame.Cursors = append(frame.Cursors, fp)
		if c == ed.view.Primary() {
			frame.Primary = fp
		}
	}
	frame.ShowPrompt = ed.curMode.ID == mode.Prompt
	return frame
}

// statusLine assembles the mode indicator and recording flag.
func (ed *Editor) statusLine() string {
	var parts []string
	if s := ed.curMode.Status; s != "" {
		parts = append(parts, s)
	}
	if ed.recorder.Recording() {
		parts = append(parts, "recording")
	}
	return strings.Join(parts, " ")
}
