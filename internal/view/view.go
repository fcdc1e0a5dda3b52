// Package view implements the window onto a text: an ordered, non-empty set
// of cursors with optional selections, a scroll anchor, and the bulk cursor
// operations the editor's multi-cursor commands are built on.
//
// Invariant: cursors never overlap. Whenever an operation could make two
// cursors' positions or selections touch, they are merged and the primary
// is preserved.
package view

import (
	"bytes"
	"sort"

	"github.com/vixedit/vix/internal/text"
	"github.com/vixedit/vix/internal/text/object"
)

// Cursor is one insertion point with an optional selection. A selection
// spans from the anchor to the cursor position inclusive of the character
// under the head. SavedSelection holds the most recently cleared selection
// for selection-restore.
type Cursor struct {
	Pos            int
	Anchor         int
	HasSelection   bool
	SavedSelection text.Range
	HasSaved       bool
}

// SelectionSwap exchanges anchor and head.
func (c *Cursor) SelectionSwap() {
	if c.HasSelection {
		c.Anchor, c.Pos = c.Pos, c.Anchor
	}
}

// View is a window over a text with its cursor set. Dimensions come from
// the UI; the core only uses them for paging and window-line motions.
type View struct {
	text    *text.Text
	cursors []*Cursor
	primary int

	// anchor is the position of the first displayed line.
	anchor int
	width  int
	height int
}

// New creates a view with a single cursor at position zero.
func New(t *text.Text) *View {
	return &View{
		text:    t,
		cursors: []*Cursor{{}},
		width:   80,
		height:  24,
	}
}

// Text returns the underlying text.
func (v *View) Text() *text.Text {
	return v.text
}

// Resize sets the view dimensions.
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
}

// Width returns the view width in columns.
func (v *View) Width() int { return v.width }

// Height returns the view height in lines.
func (v *View) Height() int { return v.height }

// Primary returns the primary cursor.
func (v *View) Primary() *Cursor {
	return v.cursors[v.primary]
}

// Cursors returns the cursors in buffer order. The slice is shared; callers
// iterate but do not reorder it.
func (v *View) Cursors() []*Cursor {
	return v.cursors
}

// Count returns the number of cursors.
func (v *View) Count() int {
	return len(v.cursors)
}

// Selection returns the cursor's selection as an ordered half-open range
// covering the head character, or the invalid range when no selection is
// active.
func (v *View) Selection(c *Cursor) text.Range {
	if !c.HasSelection {
		return text.Invalid()
	}
	lo, hi := c.Anchor, c.Pos
	if lo > hi {
		lo, hi = hi, lo
	}
	return text.Range{Start: lo, End: v.text.CharNext(hi)}
}

// SelectionSet replaces the cursor's selection with the given range; the
// head lands on the last character.
func (v *View) SelectionSet(c *Cursor, r text.Range) {
	if !r.Valid() {
		return
	}
	c.Anchor = r.Start
	if r.End > r.Start {
		c.Pos = v.text.CharPrev(r.End)
	} else {
		c.Pos = r.Start
	}
	c.HasSelection = true
}

// SelectionClear drops the cursor's selection, saving it for restore.
func (v *View) SelectionClear(c *Cursor) {
	if !c.HasSelection {
		return
	}
	c.SavedSelection = v.Selection(c)
	c.HasSaved = true
	c.HasSelection = false
}

// SelectionRestore brings back the cursor's saved selection.
func (v *View) SelectionRestore(c *Cursor) {
	if !c.HasSaved {
		return
	}
	v.SelectionSet(c, c.SavedSelection)
}

// CursorTo moves the primary cursor.
func (v *View) CursorTo(pos int) {
	v.Primary().Pos = v.clampPos(pos)
	v.Normalize()
}

// clampPos clamps a cursor position into the buffer.
func (v *View) clampPos(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > v.text.Size() {
		return v.text.Size()
	}
	return pos
}

// CursorNew creates a cursor at pos. Returns nil when a cursor already
// occupies that position.
func (v *View) CursorNew(pos int) *Cursor {
	pos = v.clampPos(pos)
	for _, c := range v.cursors {
		if c.Pos == pos && !c.HasSelection {
			return nil
		}
	}
	c := &Cursor{Pos: pos, Anchor: pos}
	v.cursors = append(v.cursors, c)
	v.primary = len(v.cursors) - 1
	v.Normalize()
	return c
}

// CursorDispose removes a cursor, keeping at least one. Disposing the
// primary promotes the next cursor.
func (v *View) CursorDispose(c *Cursor) {
	if len(v.cursors) <= 1 {
		return
	}
	for i, cur := range v.cursors {
		if cur == c {
			v.cursors = append(v.cursors[:i], v.cursors[i+1:]...)
			if v.primary >= len(v.cursors) {
				v.primary = len(v.cursors) - 1
			} else if i < v.primary {
				v.primary--
			}
			return
		}
	}
}

// CursorsClear drops all non-primary cursors; with a single cursor it
// clears that cursor's selection instead.
func (v *View) CursorsClear() {
	if len(v.cursors) > 1 {
		primary := v.Primary()
		v.cursors = []*Cursor{primary}
		v.primary = 0
		return
	}
	v.SelectionClear(v.Primary())
}

// CursorRemoveLast disposes the highest-positioned non-primary cursor.
func (v *View) CursorRemoveLast() {
	if len(v.cursors) <= 1 {
		return
	}
	last := len(v.cursors) - 1
	if last == v.primary {
		last--
	}
	v.CursorDispose(v.cursors[last])
}

// SelectionsClear clears every cursor's selection.
func (v *View) SelectionsClear() {
	for _, c := range v.cursors {
		v.SelectionClear(c)
	}
}

// SelectionsStart anchors a fresh selection at every cursor that does not
// already carry one.
func (v *View) SelectionsStart() {
	for _, c := range v.cursors {
		if !c.HasSelection {
			c.Anchor = c.Pos
			c.HasSelection = true
		}
	}
}

// CursorsAlign moves every cursor to the minimum display column among them,
// clamping on short lines. Pure navigation, no text change.
func (v *View) CursorsAlign() {
	minCol := -1
	for _, c := range v.cursors {
		col := v.text.ColumnGet(c.Pos)
		if minCol < 0 || col < minCol {
			minCol = col
		}
	}
	for _, c := range v.cursors {
		c.Pos = v.text.ColumnSet(c.Pos, minCol)
	}
	v.Normalize()
}

// CursorSelectWord selects the word under every cursor that has no
// selection yet. Cursors not over a word are left alone.
func (v *View) CursorSelectWord() {
	for _, c := range v.cursors {
		if c.HasSelection {
			continue
		}
		word := object.Apply(object.InnerWord, v.text, c.Pos)
		if word.Valid() && !word.Empty() {
			v.SelectionSet(c, word)
		}
	}
	v.Normalize()
}

// CursorSelectNext searches forward past the primary selection's end for
// the next literal occurrence of its bytes and creates a new cursor
// selecting it. The search is byte-literal and case-sensitive even when the
// last pattern search was not. No-op without a selection or a match.
func (v *View) CursorSelectNext() *Cursor {
	sel := v.Selection(v.Primary())
	if !sel.Valid() || sel.Empty() {
		return nil
	}
	needle := v.text.Bytes(sel.Start, sel.End)
	content := v.text.Bytes(0, v.text.Size())
	if sel.End > len(content) {
		return nil
	}
	i := bytes.Index(content[sel.End:], needle)
	if i < 0 {
		return nil
	}
	start := sel.End + i
	c := &Cursor{}
	v.SelectionSet(c, text.Range{Start: start, End: start + len(needle)})
	v.cursors = append(v.cursors, c)
	v.primary = len(v.cursors) - 1
	v.Normalize()
	return c
}

// CursorSelectSkip advances to the next match and disposes the previous
// primary.
func (v *View) CursorSelectSkip() {
	prev := v.Primary()
	if v.CursorSelectNext() == nil {
		return
	}
	v.CursorDispose(prev)
}

// Normalize sorts cursors by position, merges touching or overlapping ones
// (the primary survives a merge), and clamps everything into the buffer.
func (v *View) Normalize() {
	primary := v.cursors[v.primary]
	for _, c := range v.cursors {
		c.Pos = v.clampPos(c.Pos)
		c.Anchor = v.clampPos(c.Anchor)
	}
	sort.SliceStable(v.cursors, func(i, j int) bool {
		return v.ordering(v.cursors[i]) < v.ordering(v.cursors[j])
	})
	merged := v.cursors[:1]
	for _, c := range v.cursors[1:] {
		last := merged[len(merged)-1]
		if v.overlap(last, c) {
			if c == primary {
				v.absorb(c, last)
				merged[len(merged)-1] = c
			} else {
				v.absorb(last, c)
			}
		} else {
			merged = append(merged, c)
		}
	}
	v.cursors = merged
	v.primary = 0
	for i, c := range v.cursors {
		if c == primary {
			v.primary = i
			break
		}
	}
}

// ordering is the sort key: selection start, or the bare position.
func (v *View) ordering(c *Cursor) int {
	if c.HasSelection {
		return v.Selection(c).Start
	}
	return c.Pos
}

// span is the extent a cursor occupies for overlap checks.
func (v *View) span(c *Cursor) (int, int) {
	if c.HasSelection {
		r := v.Selection(c)
		return r.Start, r.End
	}
	return c.Pos, c.Pos
}

func (v *View) overlap(a, b *Cursor) bool {
	if !a.HasSelection && !b.HasSelection {
		return a.Pos == b.Pos
	}
	as, ae := v.span(a)
	bs, be := v.span(b)
	return as <= be && bs <= ae
}

// absorb merges the other cursor's extent into c.
func (v *View) absorb(c, other *Cursor) {
	cs, ce := v.span(c)
	os, oe := v.span(other)
	if os < cs {
		cs = os
	}
	if oe > ce {
		ce = oe
	}
	forward := !c.HasSelection || c.Pos >= c.Anchor
	v.SelectionSet(c, text.Range{Start: cs, End: ce})
	if !forward {
		c.SelectionSwap()
	}
}

// Scroll anchor management.

// Anchor returns the position of the first displayed line.
func (v *View) Anchor() int { return v.anchor }

// ScrollDown moves the window content down n lines, keeping the cursor
// inside the window.
func (v *View) ScrollDown(n int) {
	for i := 0; i < n; i++ {
		v.anchor = v.text.LineNext(v.anchor)
	}
	if v.Primary().Pos < v.anchor {
		v.Primary().Pos = v.anchor
	}
}

// ScrollUp moves the window content up n lines.
func (v *View) ScrollUp(n int) {
	for i := 0; i < n; i++ {
		v.anchor = v.text.LinePrev(v.anchor)
	}
}

// SlideDown shifts the displayed region without recentering the cursor.
func (v *View) SlideDown(n int) { v.ScrollDown(n) }

// SlideUp is the upward counterpart of SlideDown.
func (v *View) SlideUp(n int) { v.ScrollUp(n) }

// RedrawTop scrolls so the cursor line is the first displayed line.
func (v *View) RedrawTop() {
	v.anchor = v.text.LineBegin(v.Primary().Pos)
}

// RedrawCenter scrolls so the cursor line is vertically centered.
func (v *View) RedrawCenter() {
	v.anchor = v.text.LineBegin(v.Primary().Pos)
	for i := 0; i < v.height/2; i++ {
		v.anchor = v.text.LinePrev(v.anchor)
	}
}

// RedrawBottom scrolls so the cursor line is the last displayed line.
func (v *View) RedrawBottom() {
	v.anchor = v.text.LineBegin(v.Primary().Pos)
	for i := 0; i < v.height-1; i++ {
		v.anchor = v.text.LinePrev(v.anchor)
	}
}

// ScreenLineGoto returns the position of the n-th window line (1-based).
func (v *View) ScreenLineGoto(n int) int {
	pos := v.anchor
	for i := 1; i < n; i++ {
		next := v.text.LineNext(pos)
		if next == pos {
			break
		}
		pos = next
	}
	return v.text.LineStart(pos)
}

// AdjustForEdit shifts every cursor and anchor for an edit replacing the
// range with newLen bytes. Cursors inside the replaced range move to its
// start.
func (v *View) AdjustForEdit(r text.Range, newLen int) {
	delta := newLen - r.Len()
	adjust := func(pos int) int {
		switch {
		case pos <= r.Start:
			return pos
		case pos >= r.End:
			return pos + delta
		default:
			return r.Start
		}
	}
	for _, c := range v.cursors {
		c.Pos = adjust(c.Pos)
		c.Anchor = adjust(c.Anchor)
		if c.HasSaved {
			c.SavedSelection = text.NewRange(adjust(c.SavedSelection.Start), adjust(c.SavedSelection.End))
		}
	}
	v.anchor = adjust(v.anchor)
}
