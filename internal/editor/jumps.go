package editor

import (
	"time"

	"github.com/vixedit/vix/internal/text"
)

// jumplist is a bounded ring of marks recording positions large motions
// departed from, navigable with the jumplist motions.
type jumplist struct {
	marks []text.Mark
	index int
}

const jumplistMax = 32

// add records a departure position. Navigating afterwards starts from the
// newest entry.
func (j *jumplist) add(t *text.Text, pos int) {
	j.marks = append(j.marks, t.MarkSet(pos))
	if len(j.marks) > jumplistMax {
		j.marks = j.marks[len(j.marks)-jumplistMax:]
	}
	j.index = len(j.marks)
}

// invalidate resets the navigation point after an unrelated motion.
func (j *jumplist) invalidate() {
	j.index = len(j.marks)
}

// prev returns the position of the previous jumplist entry, or cur.
// Navigating away from the newest position records it so the jump can be
// retraced.
func (j *jumplist) prev(t *text.Text, cur int) int {
	if j.index == len(j.marks) && len(j.marks) > 0 {
		j.marks = append(j.marks, t.MarkSet(cur))
	}
	for j.index > 0 {
		j.index--
		pos := t.MarkGet(j.marks[j.index])
		if pos >= 0 && pos != cur {
			return pos
		}
	}
	return cur
}

// next returns the position of the next jumplist entry, or cur.
func (j *jumplist) next(t *text.Text, cur int) int {
	for j.index < len(j.marks)-1 {
		j.index++
		pos := t.MarkGet(j.marks[j.index])
		if pos >= 0 && pos != cur {
			return pos
		}
	}
	return cur
}

// changelist walks the positions of past edits, newest first.
type changelist struct {
	index int
	pos   int
	state time.Time
}

// note resets the changelist cursor after a new edit.
func (c *changelist) note() {
	c.state = time.Time{}
}

// prev moves to an older change position.
func (c *changelist) prev(ed *Editor, cur int) int {
	state := ed.txt.State()
	if !c.state.Equal(state) {
		c.index = 0
	} else if cur == c.pos {
		c.index++
	}
	pos := ed.txt.HistoryPos(c.index)
	if pos < 0 {
		if c.index > 0 {
			c.index--
		}
		return c.pos
	}
	c.pos = pos
	c.state = state
	return pos
}

// next moves to a newer change position.
func (c *changelist) next(ed *Editor, cur int) int {
	state := ed.txt.State()
	if !c.state.Equal(state) {
		c.index = 0
	} else if c.index > 0 && cur == c.pos {
		c.index--
	}
	pos := ed.txt.HistoryPos(c.index)
	if pos < 0 {
		return c.pos
	}
	c.pos = pos
	c.state = state
	return pos
}
