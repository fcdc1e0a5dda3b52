package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text"
)

// testUI is the headless UI the dispatcher tests run against.
type testUI struct {
	width, height int
	info          string
	promptShown   bool
	prompt        string
}

func newTestUI() *testUI                        { return &testUI{width: 80, height: 24} }
func (u *testUI) Width() int                    { return u.width }
func (u *testUI) Height() int                   { return u.height }
func (u *testUI) Draw()                         {}
func (u *testUI) ShowInfo(msg string)           { u.info = msg }
func (u *testUI) HideInfo()                     { u.info = "" }
func (u *testUI) PromptShow(l, c string)        { u.promptShown = true; u.prompt = l + c }
func (u *testUI) PromptHide()                   { u.promptShown = false }
func (u *testUI) Suspend()                      {}

func newTestEditor(content string) *Editor {
	return New(newTestUI(), text.New(content))
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		buffer     string
		keys       string
		want       string
		wantCursor int
	}{
		{"dw", "hello world", "dw", "world", 0},
		{"d2w", "hello world", "d2w", "", 0},
		{"2dw multiplies", "one two three four", "2dw", "three four", 0},
		{"counts multiply", "a b c d e f g", "2d3w", "g", 0},
		{"Vjd", "abc\ndef\nghi", "Vjd", "ghi", 0},
		{"di(", "(foo bar)", "ldi(", "()", 1},
		{"rx", "abc", "rx", "xbc", 0},
		{"x", "abc", "x", "bc", 0},
		{"dd", "aaa\nbbb\nccc", "dd", "bbb\nccc", 0},
		{"2dd", "aaa\nbbb\nccc", "2dd", "ccc", 0},
		{"D alias", "hello world", "llD", "he", 2},
		{"J joins", "aaa\nbbb", "J", "aaa bbb", 3},
		{"shift right", "line", ">>", "\tline", 1},
		{"case upper", "abc def", "gUw", "ABC def", 0},
		{"case swap doubled", "aBc\n", "g~g~", "AbC\n", 0},
		{"till", "hello world", "dtw", "world", 0},
		{"find inclusive", "hello world", "dfw", "orld", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(tt.buffer)
			ed.Input(tt.keys)
			assert.Equal(t, tt.want, ed.Text().String())
			assert.Equal(t, tt.wantCursor, ed.View().Primary().Pos)

			if tt.want == tt.buffer {
				return
			}
			// Undo returns to the initial buffer, redo to the result.
			ed.Input("u")
			assert.Equal(t, tt.buffer, ed.Text().String(), "after undo")
			ed.Input("<C-r>")
			assert.Equal(t, tt.want, ed.Text().String(), "after redo")
		})
	}
}

func TestYankPut(t *testing.T) {
	ed := newTestEditor("aaa\nbbb\nccc")
	ed.Input("yyp")
	assert.Equal(t, "aaa\naaa\nbbb\nccc", ed.Text().String())
	assert.Equal(t, 4, ed.View().Primary().Pos, "line 2 col 0")

	ed.Input("u")
	assert.Equal(t, "aaa\nbbb\nccc", ed.Text().String())
	ed.Input("<C-r>")
	assert.Equal(t, "aaa\naaa\nbbb\nccc", ed.Text().String())
}

func TestYankPutCharwiseRoundtrip(t *testing.T) {
	ed := newTestEditor("hello world")
	// Yank "hello ", then put it after the cursor.
	ed.Input("ywp")
	assert.Equal(t, "hhello ello world", ed.Text().String())
}

func TestPutBefore(t *testing.T) {
	ed := newTestEditor("aaa\nbbb")
	ed.Input("yyjP")
	assert.Equal(t, "aaa\naaa\nbbb", ed.Text().String())
}

func TestNamedRegister(t *testing.T) {
	ed := newTestEditor("one two")
	ed.Input("\"ayw")
	reg := ed.Registers().Get('a')
	require.NotNil(t, reg)
	assert.Equal(t, "one ", string(reg.Bytes))

	// The unnamed register was not disturbed by the named yank... and an
	// unnamed yank leaves the named register alone.
	ed.Input("wyw")
	assert.Equal(t, "one ", string(ed.Registers().Get('a').Bytes))
	assert.Equal(t, "two", string(ed.Registers().Get(register.Default).Bytes))
}

func TestAppendRegister(t *testing.T) {
	ed := newTestEditor("one two")
	ed.Input("\"ayw")
	ed.Input("w\"Ayw")
	assert.Equal(t, "one two", string(ed.Registers().Get('a').Bytes))
}

func TestDeleteWritesRegister(t *testing.T) {
	ed := newTestEditor("hello world")
	ed.Input("dw")
	reg := ed.Registers().Get(register.Default)
	require.NotNil(t, reg)
	assert.Equal(t, "hello ", string(reg.Bytes))
}

func TestEscapeClearsPending(t *testing.T) {
	streams := []string{
		"2d<Escape>",
		"d3<Escape>",
		"\"a<Escape>",
		"v<Escape>",
		"Vj<Escape>",
		"i hello<Escape>",
		"42<Escape>",
		"<Escape>",
	}
	for _, keys := range streams {
		t.Run(keys, func(t *testing.T) {
			ed := newTestEditor("abc\ndef")
			ed.Input(keys)
			assert.Equal(t, mode.Normal, ed.Mode())
			assert.Equal(t, 0, ed.CountGet(), "pending count cleared")
			assert.Nil(t, ed.action.op, "pending operator cleared")
		})
	}
}

func TestOperatorOnInvalidObjectKeepsText(t *testing.T) {
	ed := newTestEditor("no brackets here")
	ed.Input("di(")
	assert.Equal(t, "no brackets here", ed.Text().String())
	assert.Nil(t, ed.Registers().Get(register.Default), "register untouched")
	assert.Equal(t, mode.Normal, ed.Mode())
}

func TestMotionAtBoundaryDiscardsOperator(t *testing.T) {
	ed := newTestEditor("abc")
	ed.Input("$dl")
	// l at the last character cannot move; nothing is deleted.
	assert.Equal(t, "abc", ed.Text().String())
}

func TestRepeat(t *testing.T) {
	ed := newTestEditor("one two three four")
	ed.Input("dw")
	assert.Equal(t, "two three four", ed.Text().String())
	ed.Input(".")
	assert.Equal(t, "three four", ed.Text().String())
	// A fresh count overrides the recorded one.
	ed.Input("2.")
	assert.Equal(t, "", ed.Text().String())
}

func TestRepeatAfterReplace(t *testing.T) {
	// '.' after r repeats the replacement character.
	ed := newTestEditor("abcd")
	ed.Input("rx")
	assert.Equal(t, "xbcd", ed.Text().String())
	ed.Input("l.")
	assert.Equal(t, "xxcd", ed.Text().String())
}

func TestRepeatInsert(t *testing.T) {
	ed := newTestEditor("world")
	ed.Input("ihey <Escape>")
	assert.Equal(t, "hey world", ed.Text().String())
	ed.Input("0.")
	assert.Equal(t, "hey hey world", ed.Text().String())
}

func TestVisualObjectSelection(t *testing.T) {
	ed := newTestEditor("foo bar")
	ed.Input("viw")
	sel := ed.View().Selection(ed.View().Primary())
	assert.Equal(t, text.Range{Start: 0, End: 3}, sel)
	assert.Equal(t, mode.Visual, ed.Mode())
}

func TestVisualSelectionRestore(t *testing.T) {
	ed := newTestEditor("foo bar")
	ed.Input("viw<Escape>")
	assert.Equal(t, mode.Normal, ed.Mode())
	ed.Input("gv")
	assert.Equal(t, mode.Visual, ed.Mode())
	assert.Equal(t, text.Range{Start: 0, End: 3}, ed.View().Selection(ed.View().Primary()))
}

func TestVisualSetsSelectionMarks(t *testing.T) {
	ed := newTestEditor("foo bar")
	ed.Input("viw<Escape>")
	assert.Equal(t, 0, ed.Marks().Get('<'))
	assert.Equal(t, 3, ed.Marks().Get('>'))
}

func TestMultiCursorDelete(t *testing.T) {
	ed := newTestEditor("foo foo foo")
	ed.Input("viw")
	ed.Input("<C-n><C-n>")
	assert.Equal(t, 3, ed.View().Count())
	ed.Input("d")
	assert.Equal(t, "  ", ed.Text().String())
	assert.Equal(t, mode.Normal, ed.Mode())

	// Cursors survive pairwise distinct and ordered.
	var prev = -1
	for _, c := range ed.View().Cursors() {
		assert.Greater(t, c.Pos, prev)
		prev = c.Pos
	}

	ed.Input("u")
	assert.Equal(t, "foo foo foo", ed.Text().String())
	ed.Input("<C-r>")
	assert.Equal(t, "  ", ed.Text().String())
}

func TestMultiCursorInsert(t *testing.T) {
	ed := newTestEditor("aa\nbb")
	ed.Input("<C-j>")
	require.Equal(t, 2, ed.View().Count())
	ed.Input("ix<Escape>")
	assert.Equal(t, "xaa\nxbb", ed.Text().String())
}

func TestCursorsAlignAction(t *testing.T) {
	ed := newTestEditor("abcdef\nxy\nlmnop")
	ed.Input("ll<C-j><C-j>")
	require.Equal(t, 3, ed.View().Count())
	ed.Input("v<C-a><Escape>")
	cols := map[int]bool{}
	for _, c := range ed.View().Cursors() {
		cols[ed.Text().ColumnGet(c.Pos)] = true
	}
	assert.Len(t, cols, 1, "all cursors on one column")
}

func TestMarks(t *testing.T) {
	ed := newTestEditor("one\ntwo\nthree")
	ed.Input("jlma")
	ed.Input("gg")
	assert.Equal(t, 0, ed.View().Primary().Pos)
	ed.Input("`a")
	assert.Equal(t, 5, ed.View().Primary().Pos)
	ed.Input("gg'a")
	assert.Equal(t, 4, ed.View().Primary().Pos, "'a goes to first non-blank")
}

func TestMarkUnset(t *testing.T) {
	ed := newTestEditor("abc")
	ed.Input("l`q")
	assert.Equal(t, 1, ed.View().Primary().Pos, "unset mark does not move")
}

func TestMacroRecordReplay(t *testing.T) {
	ed := newTestEditor("one two three four")
	ed.Input("qadwq")
	macro, ok := ed.recorder.Get('a')
	require.True(t, ok)
	assert.Equal(t, "dw", macro)
	assert.Equal(t, "two three four", ed.Text().String())

	ed.Input("@a")
	assert.Equal(t, "three four", ed.Text().String())
	ed.Input("@@")
	assert.Equal(t, "four", ed.Text().String())
}

func TestMacroReplayMatchesTyping(t *testing.T) {
	typed := newTestEditor("alpha beta gamma\ndelta")
	typed.Input("dwj")

	// Replaying the same keys from a register behaves identically to
	// typing them.
	replayed := newTestEditor("alpha beta gamma\ndelta")
	replayed.registers.Set('q', []byte("dwj"), register.Charwise)
	replayed.Input("@q")
	assert.Equal(t, typed.Text().String(), replayed.Text().String())
	assert.Equal(t, typed.View().Primary().Pos, replayed.View().Primary().Pos)
}

func TestGotoLine(t *testing.T) {
	ed := newTestEditor("aa\nbb\ncc\ndd")
	ed.Input("3G")
	assert.Equal(t, 6, ed.View().Primary().Pos)
	ed.Input("G")
	assert.Equal(t, ed.Text().Size(), ed.View().Primary().Pos)
	ed.Input("gg")
	assert.Equal(t, 0, ed.View().Primary().Pos)
}

func TestSearchPrompt(t *testing.T) {
	ed := newTestEditor("one two one two")
	ed.Input("/two<Enter>")
	assert.Equal(t, mode.Normal, ed.Mode())
	assert.Equal(t, 4, ed.View().Primary().Pos)
	ed.Input("n")
	assert.Equal(t, 12, ed.View().Primary().Pos)
	ed.Input("N")
	assert.Equal(t, 4, ed.View().Primary().Pos)

	pattern, ok := ed.Registers().String(register.Search)
	require.True(t, ok)
	assert.Equal(t, "two", pattern)
}

func TestSearchWordUnderCursor(t *testing.T) {
	ed := newTestEditor("foo bar foo baz")
	ed.Input("*")
	assert.Equal(t, 8, ed.View().Primary().Pos)
	ed.Input("#")
	assert.Equal(t, 0, ed.View().Primary().Pos)
}

func TestPromptBackspaceAborts(t *testing.T) {
	ed := newTestEditor("abc")
	ed.Input(":")
	assert.Equal(t, mode.Prompt, ed.Mode())
	ed.Input("x")
	ed.Input("<Backspace>")
	assert.Equal(t, mode.Prompt, ed.Mode(), "deleting the only char stays")
	ed.Input("<Backspace>")
	assert.Equal(t, mode.Normal, ed.Mode(), "backspace on empty aborts")
}

func TestPromptCommandRegister(t *testing.T) {
	ed := newTestEditor("abc")
	ed.Input(":help<Enter>")
	line, ok := ed.Registers().String(register.Command)
	require.True(t, ok)
	assert.Equal(t, "help", line)
}

func TestCommandEarlierLater(t *testing.T) {
	ed := newTestEditor("")
	ed.Input("ione<Escape>")
	ed.Input("itwo<Escape>")
	require.Equal(t, "onetwo", ed.Text().String())

	ed.Input(":earlier 2<Enter>")
	assert.Equal(t, "", ed.Text().String())
	ed.Input(":later 1<Enter>")
	assert.Equal(t, "one", ed.Text().String())
}

func TestInsertModeTyping(t *testing.T) {
	ed := newTestEditor("")
	ed.Input("ihello<Escape>")
	assert.Equal(t, "hello", ed.Text().String())
	assert.Equal(t, mode.Normal, ed.Mode())
}

func TestInsertUndoGroup(t *testing.T) {
	ed := newTestEditor("")
	ed.Input("ihello world<Escape>")
	// The whole insert burst is one undoable group.
	ed.Input("u")
	assert.Equal(t, "", ed.Text().String())
}

func TestOpenLine(t *testing.T) {
	ed := newTestEditor("aaa\nbbb")
	ed.Input("onew<Escape>")
	assert.Equal(t, "aaa\nnew\nbbb", ed.Text().String())

	ed = newTestEditor("aaa\nbbb")
	ed.Input("jOnew<Escape>")
	assert.Equal(t, "aaa\nnew\nbbb", ed.Text().String())
}

func TestReplaceMode(t *testing.T) {
	ed := newTestEditor("abcdef")
	ed.Input("Rxyz<Escape>")
	assert.Equal(t, "xyzdef", ed.Text().String())
}

func TestInsertRegister(t *testing.T) {
	ed := newTestEditor("world")
	ed.Registers().SetString('a', "hello ", register.Charwise)
	ed.Input("i<C-r>a<Escape>")
	assert.Equal(t, "hello world", ed.Text().String())
}

func TestInsertVerbatim(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"decimal byte", "i<C-v>065<Escape>", "A"},
		{"hex byte", "i<C-v>x41<Escape>", "A"},
		{"octal byte", "i<C-v>o101<Escape>", "A"},
		{"unicode 4", "i<C-v>u00e9<Escape>", "é"},
		{"unicode 8", "i<C-v>U000000e9<Escape>", "é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor("")
			ed.Input(tt.keys)
			assert.Equal(t, tt.want, ed.Text().String())
		})
	}
}

func TestVerbatimWaitsForDigits(t *testing.T) {
	ed := newTestEditor("")
	ed.Input("i<C-v>x4")
	assert.Equal(t, "", ed.Text().String(), "buffered until both digits arrive")
	ed.Input("1")
	assert.Equal(t, "A", ed.Text().String())
}

func TestMotionTypeOverride(t *testing.T) {
	// Forcing linewise on a charwise motion deletes whole lines.
	ed := newTestEditor("aaa\nbbb\nccc")
	ed.Input("jdVl")
	assert.Equal(t, "aaa\nccc", ed.Text().String())
}

func TestCursorNewLinesOperator(t *testing.T) {
	ed := newTestEditor("aaa\nbbb\nccc")
	ed.Input("VjI")
	// A cursor at the start of each covered line; no text change.
	assert.Equal(t, "aaa\nbbb\nccc", ed.Text().String())
	assert.Equal(t, 2, ed.View().Count())
}

func TestSelectionFlip(t *testing.T) {
	ed := newTestEditor("abcdef")
	ed.Input("vlll")
	assert.Equal(t, 3, ed.View().Primary().Pos)
	ed.Input("o")
	assert.Equal(t, 0, ed.View().Primary().Pos)
	sel := ed.View().Selection(ed.View().Primary())
	assert.Equal(t, text.Range{Start: 0, End: 4}, sel)
}

func TestToTillRepeat(t *testing.T) {
	ed := newTestEditor("a.b.c.d")
	ed.Input("f.")
	assert.Equal(t, 1, ed.View().Primary().Pos)
	ed.Input(";")
	assert.Equal(t, 3, ed.View().Primary().Pos)
	ed.Input(";")
	assert.Equal(t, 5, ed.View().Primary().Pos)
	ed.Input(",")
	assert.Equal(t, 3, ed.View().Primary().Pos)
}

func TestJumplist(t *testing.T) {
	ed := newTestEditor("aa\nbb\ncc\ndd\nee\nff")
	ed.Input("G")
	end := ed.Text().Size()
	require.Equal(t, end, ed.View().Primary().Pos)
	ed.Input("<C-o>")
	assert.Equal(t, 0, ed.View().Primary().Pos, "back to departure")
	ed.Input("<C-i>")
	assert.Equal(t, end, ed.View().Primary().Pos)
}

func TestChangelist(t *testing.T) {
	ed := newTestEditor("aaa\nbbb\nccc")
	ed.Input("x")
	ed.Input("jx")
	ed.Input("gg")
	ed.Input("g;")
	assert.Equal(t, 3, ed.View().Primary().Pos, "most recent change position")
}

func TestUnknownKeysDropSilently(t *testing.T) {
	ed := newTestEditor("abc")
	ed.Input("€")
	assert.Equal(t, "abc", ed.Text().String())
	assert.Equal(t, mode.Normal, ed.Mode())
}

func TestActionNameKeySyntax(t *testing.T) {
	ed := newTestEditor("hello world")
	ed.Input("<vis-operator-delete><cursor-word-start-next>")
	assert.Equal(t, "world", ed.Text().String())
}

func TestActionTableExposed(t *testing.T) {
	ed := newTestEditor("")
	for _, name := range []string{
		"cursor-char-next", "vis-operator-change", "text-object-paragraph",
		"editor-undo", "macro-record", "cursors-align",
	} {
		assert.NotNil(t, ed.LookupAction(name), name)
	}
	assert.NotEmpty(t, ed.ActionNames())
}

// Property: any key stream ending in escape leaves normal mode with no
// pending command.
func TestEscapeProperty(t *testing.T) {
	alphabet := []rune("dcyvV123wbeh jl\"aqr<>gG$0ipx")
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.StringOfN(rapid.RuneFrom(alphabet), 0, 12, -1).Draw(t, "keys")
		ed := newTestEditor("one two\nthree four\nfive six")
		ed.Input(keys)
		ed.Input("<Escape>")
		// A single escape may only finish a pending multi-key input; a
		// second always lands in normal mode.
		ed.Input("<Escape>")
		assert.Equal(t, mode.Normal, ed.Mode())
		assert.Equal(t, 0, ed.CountGet())
		assert.Nil(t, ed.action.op)
	})
}

// Property: yank then put restores the yanked bytes.
func TestYankPutProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.IntRange(1, 5).Draw(t, "lines")
		content := ""
		for i := 0; i < lines; i++ {
			content += rapid.StringOfN(rapid.RuneFrom([]rune("abc ")), 1, 6, -1).Draw(t, "line")
			content += "\n"
		}
		ed := newTestEditor(content)
		before := ed.Text().String()
		ed.Input("yyp")
		// The put line duplicates the yanked line; deleting it restores
		// the original.
		ed.Input("dd")
		assert.Equal(t, before, ed.Text().String())
	})
}

// Property: undo after a random edit command restores buffer and cursor.
func TestUndoProperty(t *testing.T) {
	cmds := []string{"dw", "dd", "x", "rX", "J", ">>", "gUw", "d$"}
	rapid.Check(t, func(t *rapid.T) {
		ed := newTestEditor("one two three\nfour five\nsix")
		moves := rapid.StringOfN(rapid.RuneFrom([]rune("wjl")), 0, 4, -1).Draw(t, "moves")
		ed.Input(moves)
		posBefore := ed.View().Primary().Pos
		before := ed.Text().String()

		cmd := rapid.SampledFrom(cmds).Draw(t, "cmd")
		ed.Input(cmd)
		after := ed.Text().String()
		if after == before {
			return
		}
		ed.Input("u")
		assert.Equal(t, before, ed.Text().String())
		assert.Equal(t, posBefore, ed.View().Primary().Pos)
		ed.Input("<C-r>")
		assert.Equal(t, after, ed.Text().String())
	})
}

// Property: c1 op c2 m equals op over m applied c1*c2 times.
func TestCountMultiplicationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c1 := rapid.IntRange(1, 3).Draw(t, "c1")
		c2 := rapid.IntRange(1, 3).Draw(t, "c2")

		content := "aa bb cc dd ee ff gg hh ii jj kk ll"
		multiplied := newTestEditor(content)
		multiplied.Input(digits(c1) + "d" + digits(c2) + "w")

		flat := newTestEditor(content)
		flat.Input(digits(c1*c2) + "dw")

		assert.Equal(t, flat.Text().String(), multiplied.Text().String())
	})
}

func digits(n int) string {
	if n == 1 {
		return ""
	}
	return string(rune('0' + n))
}
