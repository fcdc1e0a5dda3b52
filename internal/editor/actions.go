package editor

import (
	"sort"
	"unicode/utf8"

	"github.com/vixedit/vix/internal/key"
	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text/motion"
	"github.com/vixedit/vix/internal/text/object"
)

// Arg is the small payload an action is registered with. Exactly one of the
// fields is meaningful per handler shape.
type Arg struct {
	I int
	S string
	F func(*Editor)
}

// ActionFunc consumes zero or more leading key symbols from keys and
// returns the unconsumed tail. ok=false means more input is needed: the
// dispatcher buffers the command and waits.
type ActionFunc func(ed *Editor, keys string, arg *Arg) (rest string, ok bool)

// Action is one entry of the action table, addressable by name from
// bindings, config, and the command line.
type Action struct {
	Name string
	Help string
	Do   ActionFunc
	Arg  Arg
}

// Register adds an action to the table. Names are unique; re-registering
// replaces the previous entry.
func (ed *Editor) Register(a *Action) {
	ed.actions[a.Name] = a
}

// LookupAction resolves an action by name.
func (ed *Editor) LookupAction(name string) *Action {
	return ed.actions[name]
}

// ActionNames returns all registered action names, sorted.
func (ed *Editor) ActionNames() []string {
	names := make([]string, 0, len(ed.actions))
	for name := range ed.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handler shapes. Each is a single implementation parameterized by Arg.

func actNop(ed *Editor, keys string, arg *Arg) (string, bool) {
	return keys, true
}

func actMovement(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.Motion(motion.Kind(arg.I))
	return keys, true
}

// actMovementKey consumes one key symbol as the motion's character
// argument (f, F, t, T).
func actMovementKey(ed *Editor, keys string, arg *Arg) (string, bool) {
	if keys == "" {
		return "", false
	}
	sym, rest := key.Next(keys)
	if key.IsSpecial(sym) {
		// A special key aborts the motion and whatever command it was
		// part of.
		ed.action.reset()
		if ed.curMode.ID == mode.Operator {
			ed.setMode(ed.prevMode)
		}
		return rest, true
	}
	ed.Motion(motion.Kind(arg.I), sym)
	return rest, true
}

func actTextObj(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.TextObject(object.Kind(arg.I))
	return keys, true
}

func actOperator(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.Operator(arg.I)
	return keys, true
}

// actGotoLine moves to the line given by the count, or to the file begin or
// end when no count is pending.
func actGotoLine(ed *Editor, keys string, arg *Arg) (string, bool) {
	switch {
	case ed.CountGet() != 0:
		ed.Motion(motion.Line)
	case arg.I < 0:
		ed.Motion(motion.FileBegin)
	default:
		ed.Motion(motion.FileEnd)
	}
	return keys, true
}

func actSwitchMode(ed *Editor, keys string, arg *Arg) (string, bool) {
	// Escaping to normal mode cancels whatever command was pending.
	if mode.ID(arg.I) == mode.Normal {
		ed.action.reset()
	}
	ed.ModeSwitch(mode.ID(arg.I))
	return keys, true
}

// actCount accumulates the pending count, into the post-operator slot when
// an operator is pending so the two counts multiply. A leading zero is the
// line-begin motion instead.
func actCount(ed *Editor, keys string, arg *Arg) (string, bool) {
	digit := arg.I
	slot := &ed.action.count
	if ed.action.op != nil {
		slot = &ed.action.countOp
	}
	if digit == 0 && *slot == 0 {
		ed.Motion(motion.LineBegin)
		return keys, true
	}
	*slot = *slot*10 + digit
	return keys, true
}

func actMotionType(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.MotionType(motion.Flags(arg.I))
	return keys, true
}

// key2register consumes one key naming a register.
func key2register(keys string) (rune, string, bool) {
	if keys == "" {
		return 0, "", false
	}
	sym, rest := key.Next(keys)
	r := key.Rune(sym)
	if r == utf8.RuneError {
		return 0, rest, true
	}
	return r, rest, true
}

func actRegister(ed *Editor, keys string, arg *Arg) (string, bool) {
	id, rest, ok := key2register(keys)
	if !ok {
		return "", false
	}
	ed.RegisterSet(id)
	return rest, true
}

// key2mark consumes one key naming a mark.
func key2mark(keys string) (rune, string, bool) {
	if keys == "" {
		return 0, "", false
	}
	sym, rest := key.Next(keys)
	r := key.Rune(sym)
	if r == utf8.RuneError || !register.ValidMark(r) {
		return 0, rest, true
	}
	return r, rest, true
}

func actMarkSet(ed *Editor, keys string, arg *Arg) (string, bool) {
	id, rest, ok := key2mark(keys)
	if !ok {
		return "", false
	}
	if id != 0 {
		ed.MarkSet(id, ed.view.Primary().Pos)
	}
	return rest, true
}

// actMarkMotion consumes a mark name and jumps to it (arg selects position
// or first-non-blank-of-line).
func actMarkMotion(ed *Editor, keys string, arg *Arg) (string, bool) {
	id, rest, ok := key2mark(keys)
	if !ok {
		return "", false
	}
	if id == 0 {
		ed.action.reset()
		return rest, true
	}
	pos := ed.marks.Get(id)
	if pos < 0 {
		ed.Info("mark not set")
		ed.action.reset()
		return rest, true
	}
	ed.action.mark = id
	if arg.I == markGotoLine {
		ed.MotionCustom(func(int) int { return ed.txt.LineStart(pos) },
			motion.Linewise|motion.Jump|motion.Idempotent)
	} else {
		ed.MotionCustom(func(int) int { return pos },
			motion.Jump|motion.Idempotent)
	}
	return rest, true
}

// Mark motion variants for actMarkMotion.
const (
	markGoto = iota
	markGotoLine
)

func actUndo(ed *Editor, keys string, arg *Arg) (string, bool) {
	pos := ed.txt.Undo()
	if pos < 0 {
		ed.Info("already at oldest change")
		return keys, true
	}
	ed.afterHistoryChange(pos)
	return keys, true
}

func actRedo(ed *Editor, keys string, arg *Arg) (string, bool) {
	pos := ed.txt.Redo()
	if pos < 0 {
		ed.Info("already at newest change")
		return keys, true
	}
	ed.afterHistoryChange(pos)
	return keys, true
}

func actEarlier(ed *Editor, keys string, arg *Arg) (string, bool) {
	count := ed.CountGet()
	if count < 1 {
		count = 1
	}
	ed.CountSet(0)
	if pos := ed.txt.Earlier(count); pos >= 0 {
		ed.afterHistoryChange(pos)
	}
	return keys, true
}

func actLater(ed *Editor, keys string, arg *Arg) (string, bool) {
	count := ed.CountGet()
	if count < 1 {
		count = 1
	}
	ed.CountSet(0)
	if pos := ed.txt.Later(count); pos >= 0 {
		ed.afterHistoryChange(pos)
	}
	return keys, true
}

// afterHistoryChange re-centers the editor on a restored text state.
func (ed *Editor) afterHistoryChange(pos int) {
	if ed.view.Count() == 1 {
		ed.view.CursorTo(pos)
	} else {
		ed.view.Normalize()
	}
	ed.ui.Draw()
}

// actMacroRecord toggles macro recording.
func actMacroRecord(ed *Editor, keys string, arg *Arg) (string, bool) {
	if ed.recorder.Recording() {
		// Input recorded the toggle key and whatever followed it in the
		// same burst; strip both.
		ed.recorder.TrimSuffix("q" + keys)
		ed.recorder.Stop()
		ed.ui.Draw()
		return keys, true
	}
	if keys == "" {
		return "", false
	}
	sym, rest := key.Next(keys)
	r := key.Rune(sym)
	if r >= 'a' && r <= 'z' && ed.recorder.Start(r) {
		// Input did not record this burst; keep the keys after the
		// toggle.
		ed.recorder.Append(rest)
	}
	ed.ui.Draw()
	return rest, true
}

func actMacroReplay(ed *Editor, keys string, arg *Arg) (string, bool) {
	if keys == "" {
		return "", false
	}
	sym, rest := key.Next(keys)
	r := key.Rune(sym)
	if macro, ok := ed.recorder.Get(r); ok {
		return macro + rest, true
	}
	return rest, true
}

// actReplace consumes one key (possibly multi-byte) and replaces the
// character under every cursor, integrating with the repeat slot through
// the repeat-replace operator.
func actReplace(ed *Editor, keys string, arg *Arg) (string, bool) {
	if keys == "" {
		return "", false
	}
	sym, rest := key.Next(keys)
	if key.IsSpecial(sym) {
		return rest, true
	}
	ed.repeatBuf = append(ed.repeatBuf[:0], sym...)
	ed.actionPrev.reset()
	ed.actionPrev.op = operators[opRepeatReplace]
	ed.actionPrev.opVariant = opRepeatReplace
	ed.ReplaceChar([]byte(sym))
	ed.txt.Snapshot()
	return rest, true
}

// actInsertRegister consumes a register id and inserts its bytes at every
// cursor.
func actInsertRegister(ed *Editor, keys string, arg *Arg) (string, bool) {
	id, rest, ok := key2register(keys)
	if !ok {
		return "", false
	}
	reg := ed.registers.Get(id)
	if reg == nil {
		ed.Info("register empty")
		return rest, true
	}
	ed.InsertKey(reg.Bytes)
	return rest, true
}

// actInsertVerbatim reads a base selector and a fixed number of digits and
// inserts the denoted rune or raw byte:
// o/O three octal digits, x/X two hex digits, u four hex digits, U eight
// hex digits, a leading decimal digit two more decimal digits.
func actInsertVerbatim(ed *Editor, keys string, arg *Arg) (string, bool) {
	if keys == "" {
		return "", false
	}
	sym, rest := key.Next(keys)
	r := key.Rune(sym)
	var value, count, base int
	switch {
	case r == 'o' || r == 'O':
		count, base = 3, 8
	case r == 'U':
		count, base = 8, 16
	case r == 'u':
		count, base = 4, 16
	case r == 'x' || r == 'X':
		count, base = 2, 16
	case r >= '0' && r <= '9':
		value = int(r - '0')
		count, base = 2, 10
	default:
		return rest, true
	}

	for count > 0 {
		if rest == "" {
			return "", false
		}
		digit, after := key.Next(rest)
		d := key.Rune(digit)
		v := -1
		switch {
		case base >= 8 && d >= '0' && d <= '7':
			v = int(d - '0')
		case base >= 10 && d >= '8' && d <= '9':
			v = int(d - '0')
		case base == 16 && d >= 'a' && d <= 'f':
			v = 10 + int(d-'a')
		case base == 16 && d >= 'A' && d <= 'F':
			v = 10 + int(d-'A')
		}
		if v < 0 {
			// The invalid key stays in the stream; what accumulated
			// so far is inserted.
			break
		}
		value = value*base + v
		count--
		rest = after
	}

	var buf []byte
	if r == 'u' || r == 'U' {
		buf = utf8.AppendRune(nil, rune(value))
	} else {
		buf = []byte{byte(value)}
	}
	ed.InsertKey(buf)
	return rest, true
}

// actDelete is the shorthand delete of the delete-char-prev/next,
// delete-line-begin and delete-word-prev actions (Backspace, Delete, Ctrl-U,
// Ctrl-W in insert): a delete operator bound to a fixed motion.
func actDelete(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.Operator(opDelete)
	ed.Motion(motion.Kind(arg.I))
	return keys, true
}

func actPromptSearch(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.PromptShow(arg.S, "")
	ed.ModeSwitch(mode.Prompt)
	return keys, true
}

func actPromptCmd(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.PromptShow(":", arg.S)
	ed.ModeSwitch(mode.Prompt)
	return keys, true
}

func actPromptBackspace(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.PromptBackspace()
	return keys, true
}

func actRepeat(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.Repeat()
	return keys, true
}

func actSelectionFlip(ed *Editor, keys string, arg *Arg) (string, bool) {
	for _, c := range ed.view.Cursors() {
		c.SelectionSwap()
	}
	return keys, true
}

func actSelectionRestore(ed *Editor, keys string, arg *Arg) (string, bool) {
	for _, c := range ed.view.Cursors() {
		ed.view.SelectionRestore(c)
	}
	ed.ModeSwitch(mode.Visual)
	return keys, true
}

// actCursorsNew creates a cursor on the line above or below the primary.
func actCursorsNew(ed *Editor, keys string, arg *Arg) (string, bool) {
	pos := ed.view.Primary().Pos
	switch {
	case arg.I > 0:
		pos = ed.txt.LineDown(pos)
	case arg.I < 0:
		pos = ed.txt.LineUp(pos)
	}
	ed.view.CursorNew(pos)
	return keys, true
}

func actCursorsAlign(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.view.CursorsAlign()
	return keys, true
}

func actCursorsClear(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.action.reset()
	ed.view.CursorsClear()
	return keys, true
}

func actCursorsRemove(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.view.CursorDispose(ed.view.Primary())
	return keys, true
}

func actCursorsSelectWord(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.view.CursorSelectWord()
	ed.ModeSwitch(mode.Visual)
	return keys, true
}

func actCursorsSelectNext(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.view.CursorSelectNext()
	return keys, true
}

func actCursorsSelectSkip(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.view.CursorSelectSkip()
	return keys, true
}

// scroll distances; negative scrolls up.
const (
	pageDist     = 1 << 16
	halfPageDist = 1 << 15
)

// scrollLines resolves a scroll argument to a line count.
func (ed *Editor) scrollLines(n int) int {
	if n < 0 {
		n = -n
	}
	switch n {
	case pageDist:
		return ed.view.Height()
	case halfPageDist:
		return ed.view.Height() / 2
	default:
		if c := ed.CountGet(); c > 0 {
			ed.CountSet(0)
			return c
		}
		if n == 0 {
			return 1
		}
		return n
	}
}

func actScroll(ed *Editor, keys string, arg *Arg) (string, bool) {
	lines := ed.scrollLines(arg.I)
	if arg.I >= 0 {
		ed.view.ScrollDown(lines)
	} else {
		ed.view.ScrollUp(lines)
	}
	ed.ui.Draw()
	return keys, true
}

func actSlide(ed *Editor, keys string, arg *Arg) (string, bool) {
	lines := ed.scrollLines(arg.I)
	if arg.I >= 0 {
		ed.view.SlideDown(lines)
	} else {
		ed.view.SlideUp(lines)
	}
	ed.ui.Draw()
	return keys, true
}

// actCall invokes a plain editor function.
func actCall(ed *Editor, keys string, arg *Arg) (string, bool) {
	arg.F(ed)
	return keys, true
}

// actOpenLine starts a new line above or below and enters insert mode.
func actOpenLine(ed *Editor, keys string, arg *Arg) (string, bool) {
	if arg.I > 0 {
		ed.Motion(motion.LineEnd)
		ed.InsertNewline()
	} else {
		ed.Motion(motion.LineBegin)
		ed.InsertNewline()
		ed.Motion(motion.LinePrev)
	}
	ed.ModeSwitch(mode.Insert)
	return keys, true
}

// actJoin joins count lines starting at the cursor.
func actJoin(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.joinCount()
	ed.Operator(opJoin)
	ed.Motion(motion.Kind(arg.I))
	return keys, true
}

func actSuspend(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.Suspend()
	return keys, true
}
