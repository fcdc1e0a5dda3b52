package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal implements UI on a tcell screen. The editor supplies frames
// through the source callback; key events flow the other way through the
// host's event loop.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	source func() Frame

	info       string
	prompt     string
	showPrompt bool
}

// NewTerminal creates and initializes a terminal UI.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// SetSource installs the frame supplier.
func (t *Terminal) SetSource(source func() Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.source = source
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// PollEvent blocks for the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostQuit interrupts a pending PollEvent.
func (t *Terminal) PostQuit() {
	t.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

// Width returns the screen width in cells.
func (t *Terminal) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, _ := t.screen.Size()
	return w
}

// Height returns the text-area height: the screen minus the status line.
func (t *Terminal) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, h := t.screen.Size()
	if h > 1 {
		return h - 1
	}
	return h
}

// Draw renders the current frame.
func (t *Terminal) Draw() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.source == nil {
		return
	}
	frame := t.source()
	t.screen.Clear()
	width, height := t.screen.Size()
	textHeight := height - 1
	if textHeight < 1 {
		textHeight = height
	}

	for y := 0; y < textHeight && y < len(frame.Lines); y++ {
		t.drawString(0, y, frame.Lines[y], tcell.StyleDefault, width)
	}

	// Secondary cursors render as reverse cells; the primary uses the
	// hardware cursor.
	rev := tcell.StyleDefault.Reverse(true)
	for _, c := range frame.Cursors {
		if c == frame.Primary {
			continue
		}
		if c.Line >= 0 && c.Line < textHeight {
			r, _, _, _ := t.screen.GetContent(c.Col, c.Line)
			t.screen.SetContent(c.Col, c.Line, r, nil, rev)
		}
	}
	if frame.Primary.Line >= 0 && frame.Primary.Line < textHeight {
		t.screen.ShowCursor(frame.Primary.Col, frame.Primary.Line)
	} else {
		t.screen.HideCursor()
	}

	// Bottom line: prompt when active, otherwise status and info.
	bottom := height - 1
	switch {
	case t.showPrompt || frame.ShowPrompt:
		line := frame.Prompt
		if t.prompt != "" {
			line = t.prompt
		}
		t.drawString(0, bottom, line, tcell.StyleDefault, width)
		t.screen.ShowCursor(runewidth.StringWidth(line), bottom)
	case t.info != "":
		t.drawString(0, bottom, t.info, tcell.StyleDefault.Bold(true), width)
	default:
		status := frame.Status
		t.drawString(0, bottom, status, tcell.StyleDefault.Reverse(true), width)
	}

	t.screen.Show()
}

// drawString writes s at the given cell, clipping at maxWidth.
func (t *Terminal) drawString(x, y int, s string, style tcell.Style, maxWidth int) {
	col := x
	for _, r := range s {
		if col >= maxWidth {
			return
		}
		t.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// ShowInfo displays a message on the bottom line until the next keypress.
func (t *Terminal) ShowInfo(msg string) {
	t.mu.Lock()
	t.info = msg
	t.mu.Unlock()
	t.Draw()
}

// HideInfo clears the info message.
func (t *Terminal) HideInfo() {
	t.mu.Lock()
	t.info = ""
	t.mu.Unlock()
}

// PromptShow displays the prompt line.
func (t *Terminal) PromptShow(leader, content string) {
	t.mu.Lock()
	t.showPrompt = true
	t.prompt = leader + content
	t.mu.Unlock()
	t.Draw()
}

// PromptHide removes the prompt line.
func (t *Terminal) PromptHide() {
	t.mu.Lock()
	t.showPrompt = false
	t.prompt = ""
	t.mu.Unlock()
	t.Draw()
}

// Suspend hands the terminal back to the shell until the process resumes.
func (t *Terminal) Suspend() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Suspend()
	_ = t.screen.Resume()
}

// KeyEventSymbol translates a tcell key event into the editor's key-symbol
// grammar.
func KeyEventSymbol(ev *tcell.EventKey) string {
	mods := ""
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods += "C-"
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods += "M-"
	}

	var name string
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods == "" {
			return string(r)
		}
		return "<" + mods + string(r) + ">"
	case tcell.KeyEnter:
		name = "Enter"
	case tcell.KeyEscape:
		name = "Escape"
	case tcell.KeyTab:
		name = "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = "Backspace"
	case tcell.KeyDelete:
		name = "Delete"
	case tcell.KeyInsert:
		name = "Insert"
	case tcell.KeyHome:
		name = "Home"
	case tcell.KeyEnd:
		name = "End"
	case tcell.KeyPgUp:
		name = "PageUp"
	case tcell.KeyPgDn:
		name = "PageDown"
	case tcell.KeyUp:
		name = "Up"
	case tcell.KeyDown:
		name = "Down"
	case tcell.KeyLeft:
		name = "Left"
	case tcell.KeyRight:
		name = "Right"
	default:
		// Ctrl-letter combinations arrive as dedicated key codes.
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			letter := rune('a' + int(ev.Key()-tcell.KeyCtrlA))
			return "<C-" + string(letter) + ">"
		}
		if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
			name = "F" + string(rune('1'+int(ev.Key()-tcell.KeyF1)))
			if ev.Key() >= tcell.KeyF10 {
				name = []string{"F10", "F11", "F12"}[int(ev.Key()-tcell.KeyF10)]
			}
		}
	}
	if name == "" {
		return ""
	}
	return "<" + mods + name + ">"
}
