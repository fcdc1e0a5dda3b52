package text

import "time"

// Snapshot seals the pending edits into a new revision. Calling it with no
// pending edits is a no-op, so every operator can snapshot unconditionally.
func (t *Text) Snapshot() {
	if !t.dirty {
		return
	}
	cursor := t.pendingCursor
	if cursor < 0 {
		cursor = t.pendingPos
	}
	rev := &revision{
		parent:  t.current,
		content: append([]byte(nil), t.content...),
		pos:     t.pendingPos,
		cursor:  cursor,
		seq:     len(t.all),
		time:    t.now(),
	}
	t.current.children = append(t.current.children, rev)
	t.current = rev
	t.all = append(t.all, rev)
	t.dirty = false
	t.pendingCursor = -1
}

// restore swaps the buffer content for the revision's and returns the
// position of the first differing byte, which is where the cursor should
// move. Marks are clamped but otherwise left alone.
func (t *Text) restore(rev *revision) int {
	old := t.content
	t.content = append([]byte(nil), rev.content...)
	t.current = rev
	t.dirty = false
	for _, m := range t.marks {
		if m.valid && m.pos > len(t.content) {
			m.pos = len(t.content)
		}
	}
	return firstDiff(old, t.content)
}

// firstDiff returns the index of the first byte where a and b differ,
// clamped to the new content.
func firstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if n > len(b) {
		n = len(b)
	}
	return n
}

// Undo moves to the parent revision. Pending edits are sealed first so that
// the state being left can be returned to with Redo. Returns the cursor
// position the undone group started from, or EPos when there is nothing to
// undo.
func (t *Text) Undo() int {
	t.Snapshot()
	undone := t.current
	if undone.parent == nil {
		return EPos
	}
	t.restore(undone.parent)
	return t.clamp(undone.cursor)
}

// Redo moves to the most recently created child revision and returns the
// position of the change it re-applies. Returns EPos when there is nothing
// to redo.
func (t *Text) Redo() int {
	if t.dirty || len(t.current.children) == 0 {
		return EPos
	}
	child := t.current.children[len(t.current.children)-1]
	t.restore(child)
	return t.clamp(child.pos)
}

// Earlier steps n states back in wall-clock order, independent of the
// undo chain branching.
func (t *Text) Earlier(n int) int {
	t.Snapshot()
	idx := t.current.seq - n
	if idx < 0 {
		idx = 0
	}
	if idx == t.current.seq {
		return EPos
	}
	return t.restore(t.all[idx])
}

// Later steps n states forward in wall-clock order.
func (t *Text) Later(n int) int {
	t.Snapshot()
	idx := t.current.seq + n
	if idx > len(t.all)-1 {
		idx = len(t.all) - 1
	}
	if idx == t.current.seq {
		return EPos
	}
	return t.restore(t.all[idx])
}

// Restore moves to the revision whose timestamp is closest to the given
// time. Used by the :earlier/:later commands with time units.
func (t *Text) Restore(when time.Time) int {
	t.Snapshot()
	best := t.current
	var bestDelta time.Duration = -1
	for _, rev := range t.all {
		delta := rev.time.Sub(when)
		if delta < 0 {
			delta = -delta
		}
		if bestDelta < 0 || delta < bestDelta {
			best, bestDelta = rev, delta
		}
	}
	if best == t.current {
		return EPos
	}
	return t.restore(best)
}

// State returns the timestamp of the current revision.
func (t *Text) State() time.Time {
	return t.current.time
}

// HistoryPos returns the change position of the n-th most recent revision,
// feeding the changelist motions. n zero is the latest change.
func (t *Text) HistoryPos(n int) int {
	idx := len(t.all) - 1 - n
	if idx < 1 || idx >= len(t.all) {
		return EPos
	}
	return t.clamp(t.all[idx].pos)
}
