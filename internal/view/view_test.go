package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vixedit/vix/internal/text"
)

func TestCursorNew(t *testing.T) {
	v := New(text.New("abc\ndef"))

	c := v.CursorNew(4)
	require.NotNil(t, c)
	assert.Equal(t, 2, v.Count())

	assert.Nil(t, v.CursorNew(4), "duplicate position")
	assert.Equal(t, 2, v.Count())
}

func TestCursorDisposeKeepsOne(t *testing.T) {
	v := New(text.New("abc"))
	v.CursorDispose(v.Primary())
	assert.Equal(t, 1, v.Count(), "last cursor survives")

	c := v.CursorNew(2)
	v.CursorDispose(c)
	assert.Equal(t, 1, v.Count())
}

func TestDisposePrimaryPromotesNext(t *testing.T) {
	v := New(text.New("abcdef"))
	v.CursorNew(3)
	primary := v.Primary()
	v.CursorDispose(primary)
	assert.Equal(t, 1, v.Count())
	assert.NotSame(t, primary, v.Primary())
}

func TestCursorsClear(t *testing.T) {
	txt := text.New("one two")
	v := New(txt)
	v.CursorNew(4)
	v.CursorsClear()
	assert.Equal(t, 1, v.Count())

	// With one cursor, clear drops the selection instead.
	v.SelectionSet(v.Primary(), text.Range{Start: 0, End: 3})
	v.CursorsClear()
	assert.False(t, v.Primary().HasSelection)
	assert.True(t, v.Primary().HasSaved)
}

func TestSelectionRoundtrip(t *testing.T) {
	txt := text.New("hello world")
	v := New(txt)
	c := v.Primary()

	v.SelectionSet(c, text.Range{Start: 0, End: 5})
	assert.Equal(t, text.Range{Start: 0, End: 5}, v.Selection(c))
	assert.Equal(t, 4, c.Pos, "head on last character")

	c.SelectionSwap()
	assert.Equal(t, 0, c.Pos)
	assert.Equal(t, text.Range{Start: 0, End: 5}, v.Selection(c), "range unchanged by swap")

	v.SelectionClear(c)
	assert.False(t, c.HasSelection)
	v.SelectionRestore(c)
	assert.Equal(t, text.Range{Start: 0, End: 5}, v.Selection(c))
}

func TestMergeOverlappingSelections(t *testing.T) {
	txt := text.New("aaaaaaaaaa")
	v := New(txt)
	v.SelectionSet(v.Primary(), text.Range{Start: 2, End: 6})

	extra := &Cursor{}
	v.SelectionSet(extra, text.Range{Start: 4, End: 9})
	v.cursors = append(v.cursors, extra)
	v.Normalize()

	assert.Equal(t, 1, v.Count(), "overlapping selections merge")
	assert.Equal(t, text.Range{Start: 2, End: 9}, v.Selection(v.Primary()), "primary preserved")
}

func TestCursorsAlign(t *testing.T) {
	txt := text.New("abcdef\nxy\nlmnopq")
	v := New(txt)
	v.Primary().Pos = 4 // col 4 line 1
	v.CursorNew(8)      // col 1 line 2
	v.CursorNew(12)     // col 2 line 3
	v.CursorsAlign()

	for _, c := range v.Cursors() {
		assert.Equal(t, 1, txt.ColumnGet(c.Pos))
	}
}

func TestCursorSelectWord(t *testing.T) {
	txt := text.New("foo bar")
	v := New(txt)
	v.Primary().Pos = 1
	v.CursorSelectWord()
	assert.Equal(t, text.Range{Start: 0, End: 3}, v.Selection(v.Primary()))
}

func TestCursorSelectNext(t *testing.T) {
	txt := text.New("foo foo foo")
	v := New(txt)
	v.SelectionSet(v.Primary(), text.Range{Start: 0, End: 3})

	c := v.CursorSelectNext()
	require.NotNil(t, c)
	assert.Equal(t, 2, v.Count())
	assert.Equal(t, text.Range{Start: 4, End: 7}, v.Selection(v.Primary()), "new cursor is primary")

	v.CursorSelectNext()
	assert.Equal(t, 3, v.Count())
	assert.Equal(t, text.Range{Start: 8, End: 11}, v.Selection(v.Primary()))

	assert.Nil(t, v.CursorSelectNext(), "no further match")
	assert.Equal(t, 3, v.Count())
}

func TestCursorSelectNextIsCaseSensitive(t *testing.T) {
	txt := text.New("foo Foo")
	v := New(txt)
	v.SelectionSet(v.Primary(), text.Range{Start: 0, End: 3})
	assert.Nil(t, v.CursorSelectNext())
}

func TestCursorSelectSkip(t *testing.T) {
	txt := text.New("ab ab ab")
	v := New(txt)
	v.SelectionSet(v.Primary(), text.Range{Start: 0, End: 2})
	v.CursorSelectSkip()
	assert.Equal(t, 1, v.Count())
	assert.Equal(t, text.Range{Start: 3, End: 5}, v.Selection(v.Primary()))
}

func TestAdjustForEdit(t *testing.T) {
	txt := text.New("0123456789")
	v := New(txt)
	v.Primary().Pos = 8
	v.CursorNew(2)

	// Delete [3,6): cursors after shift left, cursors before stay.
	v.AdjustForEdit(text.Range{Start: 3, End: 6}, 0)
	positions := []int{v.Cursors()[0].Pos, v.Cursors()[1].Pos}
	assert.Equal(t, []int{2, 5}, positions)
}

func TestCursorRemoveLast(t *testing.T) {
	txt := text.New("0123456789")
	v := New(txt)
	v.CursorNew(4)
	v.CursorNew(7)
	require.Equal(t, 3, v.Count())
	v.CursorRemoveLast()
	assert.Equal(t, 2, v.Count())
}

// Property: cursors stay sorted, non-overlapping, and in bounds through
// random operations.
func TestCursorInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		txt := text.New("the quick brown fox jumps over the lazy dog")
		v := New(txt)
		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 30).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				v.CursorNew(rapid.IntRange(-5, txt.Size()+5).Draw(t, "pos"))
			case 1:
				v.CursorDispose(v.Primary())
			case 2:
				start := rapid.IntRange(0, txt.Size()).Draw(t, "start")
				end := rapid.IntRange(start, txt.Size()).Draw(t, "end")
				v.SelectionSet(v.Primary(), text.Range{Start: start, End: end})
				v.Normalize()
			case 3:
				v.CursorsAlign()
			}

			require.GreaterOrEqual(t, v.Count(), 1)
			prevEnd := -1
			for _, c := range v.Cursors() {
				lo, hi := v.span(c)
				require.LessOrEqual(t, 0, lo)
				require.LessOrEqual(t, hi, txt.Size())
				require.Greater(t, lo, prevEnd, "cursors overlap")
				prevEnd = hi
			}
		}
	})
}
