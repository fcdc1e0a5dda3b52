package editor

import (
	"sort"

	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text"
	"github.com/vixedit/vix/internal/text/motion"
	"github.com/vixedit/vix/internal/text/object"
	"github.com/vixedit/vix/internal/view"
)

// cursorPlan is the per-cursor execution context computed before any edit
// happens, so that all ranges refer to the same buffer state.
type cursorPlan struct {
	cursor  *view.Cursor
	pos     int
	rng     text.Range
	content []byte
	dispose bool
	moved   bool
	newPos  int
}

// Motion sets the pending motion and executes the command.
func (ed *Editor) Motion(kind motion.Kind, args ...any) bool {
	switch kind {
	case motion.WordStartNext:
		if ed.action.op == operators[opChange] {
			kind = motion.WordEndNext
		}
	case motion.LongwordStartNext:
		if ed.action.op == operators[opChange] {
			kind = motion.LongwordEndNext
		}
	case motionSearchForward, motionSearchBackward:
		pattern, _ := argString(args)
		if !ed.searchCompile(pattern) {
			ed.action.reset()
			return false
		}
		if kind == motionSearchForward {
			kind = motion.SearchNext
		} else {
			kind = motion.SearchPrev
		}
	case motion.RightTo, motion.LeftTo, motion.RightTill, motion.LeftTill:
		char, ok := argString(args)
		if !ok || char == "" {
			return false
		}
		ed.searchChar = char
		ed.lastToTill = kind
	case motionToTillRepeat:
		if ed.lastToTill == 0 {
			return false
		}
		kind = ed.lastToTill
	case motionToTillReverse:
		switch ed.lastToTill {
		case motion.RightTo:
			kind = motion.LeftTo
		case motion.LeftTo:
			kind = motion.RightTo
		case motion.RightTill:
			kind = motion.LeftTill
		case motion.LeftTill:
			kind = motion.RightTill
		default:
			return false
		}
	case motion.Line:
		// Absolute line motions need the count; keep it in the arg so
		// the count itself does not repeat the motion.
	}
	ed.action.movement = kind
	ed.action.moveFn = nil
	ed.action.hasMove = true
	ed.actionDo(&ed.action)
	return true
}

// MotionCustom executes a motion given as a plain position function, used
// for mark, window-line, jumplist, and changelist navigation whose targets
// depend on editor state rather than the text alone.
func (ed *Editor) MotionCustom(fn func(pos int) int, flags motion.Flags) {
	ed.action.moveFn = fn
	ed.action.moveFlags = flags
	ed.action.hasMove = true
	ed.actionDo(&ed.action)
}

// Pseudo motion kinds resolved by Motion before dispatch.
const (
	motionSearchForward motion.Kind = 1000 + iota
	motionSearchBackward
	motionToTillRepeat
	motionToTillReverse
)

func argString(args []any) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}

// TextObject sets the pending text object and executes the command.
func (ed *Editor) TextObject(kind object.Kind) {
	ed.action.textobj = kind
	ed.action.hasTextobj = true
	ed.actionDo(&ed.action)
}

// Operator sets the pending operator. In visual modes it executes
// immediately over the selections; otherwise the editor enters
// operator-pending mode and waits for a motion or text object.
func (ed *Editor) Operator(opID int) bool {
	variant := opID
	switch opID {
	case opCaseLower, opCaseUpper, opCaseSwap:
		opID = opCaseSwap
	case opCursorSOL, opCursorEOL:
		opID = opCursorSOL
	case opPutAfter, opPutAfterEnd, opPutBefore, opPutBeforeEnd:
		opID = opPutAfter
	}
	op, ok := operators[opID]
	if !ok {
		return false
	}
	if ed.curMode.Visual {
		ed.action.op = op
		ed.action.opVariant = variant
		ed.actionDo(&ed.action)
		return true
	}
	ed.ModeSwitch(mode.Operator)
	if ed.action.op == op && ed.action.opVariant == variant {
		// Doubled operator (dd, yy, ...) applies to the current line.
		ed.action.motionType = motion.Linewise
		ed.Motion(motion.LineNext)
		return true
	}
	ed.action.op = op
	ed.action.opVariant = variant
	// Put needs no range to operate on.
	if opID == opPutAfter {
		ed.Motion(motion.Nop)
	}
	return true
}

// Repeat replays the last executed command. A count pending at the time of
// the repeat replaces the recorded one.
func (ed *Editor) Repeat() {
	if ed.actionPrev.op == nil {
		return
	}
	count := 0
	if ed.action.hasCount() {
		count = ed.action.effectiveCount()
	}
	ed.action = ed.actionPrev
	if count != 0 {
		ed.action.count = count
		ed.action.countOp = 0
	}
	ed.actionDo(&ed.action)
}

// actionDo executes the accumulated command: it fans out over all cursors,
// computes every range against the unmodified buffer, applies operator
// edits in descending start order, and finishes with the mode transitions
// and the snapshot that delimits the undoable group.
func (ed *Editor) actionDo(a *pendingAction) {
	count := a.effectiveCount()
	linewise := ed.isLinewise(a)
	visual := ed.curMode.Visual

	var plans []*cursorPlan
	for _, c := range ed.view.Cursors() {
		plan := &cursorPlan{cursor: c, pos: c.Pos, rng: text.Invalid()}
		ed.planCursor(a, plan, count, linewise, visual)
		plans = append(plans, plan)
	}

	if a.op != nil {
		ed.execOperator(a, plans, count, linewise)
	}
	ed.view.Normalize()

	if a.op != nil {
		switch {
		case a.op == operators[opChange]:
			ed.ModeSwitch(mode.Insert)
		case ed.curMode.ID == mode.Operator:
			ed.setMode(ed.prevMode)
		case ed.curMode.Visual:
			ed.ModeSwitch(mode.Normal)
		}
		ed.txt.Snapshot()
		ed.ui.Draw()
	}

	if a != &ed.actionPrev {
		if a.op != nil {
			ed.actionPrev = *a
		}
		a.reset()
	}
}

// isLinewise decides the range kind for this execution: an explicit
// override wins, then the motion's declared kind, and visual-line mode is
// always linewise.
func (ed *Editor) isLinewise(a *pendingAction) bool {
	if a.motionType&motion.Charwise != 0 {
		return false
	}
	if a.motionType&motion.Linewise != 0 {
		return true
	}
	if a.hasMove {
		flags := motion.Get(a.movement).Flags
		if a.moveFn != nil {
			flags = a.moveFlags
		}
		if flags&motion.Linewise != 0 {
			return true
		}
	}
	return ed.curMode.ID == mode.VisualLine
}

// planCursor computes the motion or text-object range for one cursor.
func (ed *Editor) planCursor(a *pendingAction, plan *cursorPlan, count int, linewise, visual bool) {
	pos := plan.pos
	switch {
	case a.hasMove:
		var flags motion.Flags
		apply := func(p int) int { return motion.Apply(a.movement, ed.txt, p, ed.motionArg(a, count)) }
		if a.moveFn != nil {
			flags = a.moveFlags
			apply = a.moveFn
		} else {
			flags = motion.Get(a.movement).Flags
		}
		m := motion.Motion{Flags: flags}
		start := pos
		moved := false
		for i := 0; i < count; i++ {
			next := apply(pos)
			if next == pos && m.Flags&motion.Idempotent == 0 {
				break
			}
			moved = moved || next != pos
			pos = next
			if m.Flags&motion.Idempotent != 0 {
				moved = true
				break
			}
		}
		plan.rng = text.NewRange(start, pos)
		plan.moved = moved
		plan.newPos = pos

		if a.op == nil {
			plan.cursor.Pos = pos
			if visual {
				// Extending the selection: the anchor stays.
				plan.rng = ed.view.Selection(plan.cursor)
			}
			if !a.noJumpTrack {
				if m.Flags&motion.Jump != 0 {
					ed.jumps.add(ed.txt, start)
				} else {
					ed.jumps.invalidate()
				}
			}
		} else if m.Flags&motion.Inclusive != 0 && plan.moved {
			plan.rng.End = ed.txt.CharNext(plan.rng.End)
		}

	case a.hasTextobj:
		if visual {
			plan.rng = ed.view.Selection(plan.cursor)
		} else {
			plan.rng = text.Range{Start: pos, End: pos}
		}
		objPos := pos
		for i := 0; i < count; i++ {
			r := object.Apply(a.textobj, ed.txt, objPos)
			if !r.Valid() {
				break
			}
			plan.rng = plan.rng.Union(r)
			plan.moved = true
			if i < count-1 {
				objPos = plan.rng.End + 1
			}
		}
		if a.op == nil && plan.moved {
			// A bare text object selects its range.
			ed.view.SelectionSet(plan.cursor, plan.rng)
		}

	case visual:
		plan.rng = ed.view.Selection(plan.cursor)
		if !plan.rng.Valid() {
			plan.rng = text.Range{Start: pos, End: pos}
		}
		plan.moved = true
	}

	if linewise && ed.curMode.ID != mode.Visual && plan.rng.Valid() {
		plan.rng = ed.txt.RangeLinewise(plan.rng)
	}
}

// motionArg builds the runtime argument for the pending motion.
func (ed *Editor) motionArg(a *pendingAction, count int) motion.Arg {
	return motion.Arg{
		Char:    ed.searchChar,
		Count:   count,
		Pattern: ed.searchPattern,
	}
}

// execOperator runs the operator over every planned range. Register
// contents are captured in ascending cursor order before any edit; the
// edits themselves run in descending start order so earlier offsets stay
// valid.
func (ed *Editor) execOperator(a *pendingAction, plans []*cursorPlan, count int, linewise bool) {
	op := a.op

	// Keep only the cursors the operator can act on. Put and the repeat
	// operators run regardless of a range; the rest discard on an empty
	// or invalid one.
	var acting []*cursorPlan
	for _, plan := range plans {
		if !plan.rng.Valid() {
			if op.needsRange {
				continue
			}
			plan.rng = text.Range{Start: plan.pos, End: plan.pos}
		}
		if op.needsRange && (plan.rng.Empty() || a.hasMove && !plan.moved) {
			continue
		}
		acting = append(acting, plan)
	}
	if len(acting) == 0 {
		if op.needsRange {
			ed.Info("no range to operate on")
		}
		return
	}

	// Capture register content for yank and delete, per cursor in
	// ascending order.
	if op.yanks {
		regID := a.reg
		if regID == 0 {
			regID = register.Default
		}
		kind := register.Charwise
		if linewise {
			kind = register.Linewise
		}
		slices := make([][]byte, len(acting))
		for i, plan := range acting {
			slices[i] = ed.txt.Bytes(plan.rng.Start, plan.rng.End)
			plan.content = slices[i]
		}
		ed.registers.SetSlices(regID, register.JoinSlices(slices, kind), kind, slices)
	}

	reg := ed.registers.Get(a.reg)
	if a.reg == 0 || reg == nil {
		reg = ed.registers.Get(register.Default)
	}

	// Execute in descending start order, clamping against already edited
	// regions so overlapping per-cursor ranges cannot corrupt each other.
	ed.txt.NoteCursor(ed.view.Primary().Pos)
	order := make([]*cursorPlan, len(acting))
	copy(order, acting)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].rng.Start > order[j].rng.Start
	})
	floor := ed.txt.Size() + 1
	for _, plan := range order {
		plan.cursor.HasSelection = false
		if plan.rng.End > floor {
			plan.rng.End = floor
		}
		if plan.rng.Start > plan.rng.End {
			plan.rng.Start = plan.rng.End
		}
		index := 0
		for i, p := range acting {
			if p == plan {
				index = i
				break
			}
		}
		ctx := &opContext{
			rng:      plan.rng,
			pos:      plan.cursor.Pos,
			count:    count,
			linewise: linewise,
			variant:  a.opVariant,
			reg:      reg,
			index:    index,
			regCount: len(acting),
		}
		newPos := op.exec(ed, ctx)
		if newPos == text.EPos {
			plan.dispose = true
		} else {
			plan.cursor.Pos = newPos
		}
		floor = plan.rng.Start
	}
	for _, plan := range order {
		if plan.dispose {
			ed.view.CursorDispose(plan.cursor)
		}
	}
}
