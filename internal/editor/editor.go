// Package editor implements the command-dispatch core: the pending-command
// builder, the action table, operators, repeat, macros, and the prompt.
// Keystrokes flow from the host into Input, through the per-mode binding
// tries, into actions that mutate the pending command or execute it against
// the view and text.
package editor

import (
	"regexp"

	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text"
	"github.com/vixedit/vix/internal/text/motion"
	"github.com/vixedit/vix/internal/text/object"
	"github.com/vixedit/vix/internal/ui"
	"github.com/vixedit/vix/internal/view"
)

// CommandRunner executes a ':'-command line.
type CommandRunner interface {
	Run(ed *Editor, line string) bool
}

// Editor owns the text, the view, the stores, and all dispatch state. It is
// single-threaded: the host serializes every Input call on one loop.
type Editor struct {
	ui   ui.UI
	txt  *text.Text
	view *view.View

	registers *register.Store
	marks     *register.Marks
	recorder  *register.Recorder

	modes           [mode.Count]*mode.Mode
	curMode         *mode.Mode
	prevMode        *mode.Mode
	modeBeforePrompt *mode.Mode

	actions map[string]*Action

	// action is the pending command being accumulated; actionPrev is the
	// repeat slot.
	action     pendingAction
	actionPrev pendingAction

	// repeatBuf holds the bytes of the last insert/replace burst for the
	// repeat operators.
	repeatBuf []byte
	repeatPos int

	// Search state shared by /, ?, n, N, * and #.
	searchPattern *regexp.Regexp
	searchChar    string
	lastToTill    motion.Kind

	jumps   jumplist
	changes changelist

	prompt promptState

	queue string

	cmds     CommandRunner
	saveFunc func(*Editor) error

	tabwidth  int
	expandtab bool
	autoindent bool

	running    bool
	exitStatus int
}

// pendingAction is the transient state of the command builder. Counts
// accumulate separately before and after the operator; they multiply when
// the command executes, so 2d3w deletes six words.
type pendingAction struct {
	count      int
	countOp    int
	motionType motion.Flags
	op         *operatorDef
	opVariant  int
	movement   motion.Kind
	hasMove    bool
	moveFn     func(pos int) int
	moveFlags  motion.Flags
	// noJumpTrack suppresses jumplist bookkeeping for the jumplist and
	// changelist motions themselves.
	noJumpTrack bool
	textobj    object.Kind
	hasTextobj bool
	reg        rune
	mark       rune
}

// reset clears the pending command.
func (a *pendingAction) reset() {
	*a = pendingAction{}
}

// hasCount reports whether any count digit was typed.
func (a *pendingAction) hasCount() bool {
	return a.count > 0 || a.countOp > 0
}

// effectiveCount multiplies the pre- and post-operator counts.
func (a *pendingAction) effectiveCount() int {
	c1, c2 := a.count, a.countOp
	if c1 < 1 {
		c1 = 1
	}
	if c2 < 1 {
		c2 = 1
	}
	return c1 * c2
}

// New builds an editor over the given text with the given UI.
func New(u ui.UI, t *text.Text) *Editor {
	store := register.NewStore()
	ed := &Editor{
		ui:        u,
		txt:       t,
		view:      view.New(t),
		registers: store,
		marks:     register.NewMarks(t),
		recorder:  register.NewRecorder(store),
		actions:   make(map[string]*Action),
		tabwidth:  8,
		running:   true,
	}
	ed.setupModes()
	ed.registerDefaults()
	ed.bindDefaults()
	if w, h := u.Width(), u.Height(); w > 0 && h > 0 {
		ed.view.Resize(w, h)
	}
	ed.cmds = newCommandSet()
	return ed
}

// Text returns the text model.
func (ed *Editor) Text() *text.Text { return ed.txt }

// View returns the view.
func (ed *Editor) View() *view.View { return ed.view }

// Registers returns the register store.
func (ed *Editor) Registers() *register.Store { return ed.registers }

// Marks returns the mark store.
func (ed *Editor) Marks() *register.Marks { return ed.marks }

// UI returns the attached UI.
func (ed *Editor) UI() ui.UI { return ed.ui }

// Mode returns the current mode.
func (ed *Editor) Mode() mode.ID { return ed.curMode.ID }

// ModeStatus returns the status-line text of the current mode.
func (ed *Editor) ModeStatus() string { return ed.curMode.Status }

// Running reports whether the editor loop should continue.
func (ed *Editor) Running() bool { return ed.running }

// ExitStatus returns the status set by Exit.
func (ed *Editor) ExitStatus() int { return ed.exitStatus }

// Exit stops the editor loop.
func (ed *Editor) Exit(status int) {
	ed.running = false
	ed.exitStatus = status
}

// SetCommandRunner replaces the ':'-command implementation.
func (ed *Editor) SetCommandRunner(r CommandRunner) {
	ed.cmds = r
}

// SetSaveFunc installs the host's file writer behind :write.
func (ed *Editor) SetSaveFunc(fn func(*Editor) error) {
	ed.saveFunc = fn
}

// SetTabOptions configures indentation behavior for the shift operators and
// tab insertion.
func (ed *Editor) SetTabOptions(width int, expand bool) {
	if width > 0 && width <= 8 {
		ed.tabwidth = width
	}
	ed.expandtab = expand
}

// setupModes builds the mode DAG and hooks.
func (ed *Editor) setupModes() {
	for i := 0; i < mode.Count; i++ {
		ed.modes[i] = mode.New(mode.ID(i))
	}
	m := func(id mode.ID) *mode.Mode { return ed.modes[id] }

	m(mode.Move).Parent = m(mode.Basic)
	m(mode.TextObjects).Parent = m(mode.Move)
	m(mode.OperatorOption).Parent = m(mode.TextObjects)
	m(mode.Operator).Parent = m(mode.Move)
	m(mode.Normal).Parent = m(mode.Operator)
	m(mode.Visual).Parent = m(mode.Operator)
	m(mode.VisualLine).Parent = m(mode.Visual)
	m(mode.Readline).Parent = m(mode.Basic)
	m(mode.Prompt).Parent = m(mode.Readline)
	m(mode.Insert).Parent = m(mode.Readline)
	m(mode.Replace).Parent = m(mode.Insert)

	m(mode.Normal).IsUser = true
	m(mode.Visual).IsUser = true
	m(mode.Visual).Visual = true
	m(mode.Visual).Status = "--VISUAL--"
	m(mode.VisualLine).IsUser = true
	m(mode.VisualLine).Visual = true
	m(mode.VisualLine).Status = "--VISUAL LINE--"
	m(mode.Prompt).IsUser = true
	m(mode.Insert).IsUser = true
	m(mode.Insert).Status = "--INSERT--"
	m(mode.Replace).IsUser = true
	m(mode.Replace).Status = "--REPLACE--"

	// While an operator is pending the operator mode gains access to the
	// motion-type overrides and text objects.
	m(mode.Operator).Enter = func(*mode.Mode) {
		m(mode.Operator).Parent = m(mode.OperatorOption)
	}
	m(mode.Operator).Leave = func(*mode.Mode) {
		m(mode.Operator).Parent = m(mode.Move)
	}
	m(mode.Operator).Input = func(string) {
		// Invalid operator target.
		ed.action.reset()
		ed.setMode(ed.prevMode)
	}

	m(mode.Visual).Enter = func(old *mode.Mode) {
		if old == nil || !old.Visual {
			ed.view.SelectionsStart()
			m(mode.Operator).Parent = m(mode.TextObjects)
		}
	}
	m(mode.Visual).Leave = func(next *mode.Mode) {
		if next == nil || !next.Visual {
			ed.saveSelectionMarks()
			ed.view.SelectionsClear()
			m(mode.Operator).Parent = m(mode.Move)
		}
	}
	m(mode.VisualLine).Enter = func(old *mode.Mode) {
		if old == nil || !old.Visual {
			ed.view.SelectionsStart()
			m(mode.Operator).Parent = m(mode.TextObjects)
		}
		ed.Motion(motion.LineLastChar)
	}
	m(mode.VisualLine).Leave = func(next *mode.Mode) {
		if next == nil || !next.Visual {
			ed.saveSelectionMarks()
			ed.view.SelectionsClear()
			m(mode.Operator).Parent = m(mode.Move)
		}
	}

	m(mode.Prompt).Enter = func(old *mode.Mode) {
		if old != nil && old.IsUser && old.ID != mode.Prompt {
			ed.modeBeforePrompt = old
		}
	}
	m(mode.Prompt).Leave = func(next *mode.Mode) {
		if next != nil && next.IsUser {
			ed.ui.PromptHide()
		}
	}
	m(mode.Prompt).Input = func(keys string) {
		if keys == "" {
			return
		}
		ed.prompt.line += keys
		ed.ui.PromptShow(ed.prompt.leader, ed.prompt.line)
	}

	m(mode.Insert).Leave = func(*mode.Mode) {
		ed.txt.Snapshot()
	}
	m(mode.Insert).Idle = func() {
		ed.txt.Snapshot()
	}
	m(mode.Insert).Input = func(keys string) {
		if keys == "" {
			return
		}
		ed.recordRepeatInput(keys, opRepeatInsert)
		ed.InsertKey([]byte(keys))
	}

	m(mode.Replace).Leave = func(*mode.Mode) {
		ed.txt.Snapshot()
	}
	m(mode.Replace).Idle = func() {
		ed.txt.Snapshot()
	}
	m(mode.Replace).Input = func(keys string) {
		if keys == "" {
			return
		}
		ed.recordRepeatInput(keys, opRepeatReplace)
		ed.ReplaceKey([]byte(keys))
	}

	ed.curMode = m(mode.Normal)
	ed.prevMode = ed.curMode
	ed.modeBeforePrompt = ed.curMode
}

// recordRepeatInput accumulates typed bytes for the repeat operators. A
// cursor jump between keystrokes starts a fresh burst.
func (ed *Editor) recordRepeatInput(keys string, op int) {
	pos := ed.view.Primary().Pos
	if pos != ed.repeatPos {
		ed.repeatBuf = ed.repeatBuf[:0]
	}
	ed.repeatBuf = append(ed.repeatBuf, keys...)
	ed.repeatPos = pos + len(keys)
	ed.actionPrev.reset()
	ed.actionPrev.op = operators[op]
	ed.actionPrev.opVariant = op
}

// saveSelectionMarks records the primary selection bounds in the '<' and
// '>' marks before a visual mode is left.
func (ed *Editor) saveSelectionMarks() {
	sel := ed.view.Selection(ed.view.Primary())
	if sel.Valid() && !sel.Empty() {
		ed.marks.Set(register.MarkSelectionStart, sel.Start)
		ed.marks.Set(register.MarkSelectionEnd, sel.End)
	}
}

// setMode performs a raw mode transition with hooks. Leaving a user mode
// records it as the previous mode.
func (ed *Editor) setMode(newMode *mode.Mode) {
	if newMode == nil || ed.curMode == newMode {
		return
	}
	old := ed.curMode
	if old.Leave != nil {
		old.Leave(newMode)
	}
	if old.IsUser {
		ed.prevMode = old
	}
	ed.curMode = newMode
	if newMode.Enter != nil {
		newMode.Enter(old)
	}
}

// ModeSwitch transitions to the given mode.
func (ed *Editor) ModeSwitch(id mode.ID) {
	ed.setMode(ed.modes[id])
}

// ModeGet returns the mode with the given id so the host can add bindings.
func (ed *Editor) ModeGet(id mode.ID) *mode.Mode {
	return ed.modes[id]
}

// CountGet returns the pending effective count (0 when unset).
func (ed *Editor) CountGet() int {
	if !ed.action.hasCount() {
		return 0
	}
	return ed.action.effectiveCount()
}

// CountSet replaces the pending count.
func (ed *Editor) CountSet(count int) {
	ed.action.count = count
	ed.action.countOp = 0
}

// RegisterSet selects the register for the pending command.
func (ed *Editor) RegisterSet(id rune) {
	if register.Valid(id) {
		ed.action.reg = id
	}
}

// RegisterGet returns the register for id, or nil when unset.
func (ed *Editor) RegisterGet(id rune) *register.Register {
	return ed.registers.Get(id)
}

// MarkSet places the mark at the given position.
func (ed *Editor) MarkSet(id rune, pos int) {
	ed.marks.Set(id, pos)
}

// MotionType forces the pending motion's kind, the v/V override in
// operator-pending mode.
func (ed *Editor) MotionType(flags motion.Flags) {
	ed.action.motionType = flags
}

// Info surfaces a message to the user.
func (ed *Editor) Info(msg string) {
	ed.ui.ShowInfo(msg)
}

// Draw requests a full redraw.
func (ed *Editor) Draw() {
	ed.ui.Draw()
}

// Suspend hands control back to the host shell.
func (ed *Editor) Suspend() {
	ed.ui.Suspend()
}

// Idle is called by the host when the input goes quiet; insert-like modes
// use it to seal the pending undo group.
func (ed *Editor) Idle() {
	if ed.curMode.Idle != nil {
		ed.curMode.Idle()
	}
}

// Resize propagates new UI dimensions to the view.
func (ed *Editor) Resize(w, h int) {
	ed.view.Resize(w, h)
}
