package motion

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vixedit/vix/internal/text"
)

func apply(t *text.Text, kind Kind, pos int) int {
	return Apply(kind, t, pos, Arg{})
}

func TestWordMotions(t *testing.T) {
	txt := text.New("one two  three")
	//               0123456789

	tests := []struct {
		name string
		kind Kind
		pos  int
		want int
	}{
		{"w from start", WordStartNext, 0, 4},
		{"w from mid-word", WordStartNext, 1, 4},
		{"w skips runs of spaces", WordStartNext, 4, 9},
		{"w at last word", WordStartNext, 9, 14},
		{"b to word start", WordStartPrev, 5, 4},
		{"b from word start", WordStartPrev, 4, 0},
		{"b at buffer start", WordStartPrev, 0, 0},
		{"e to word end", WordEndNext, 0, 2},
		{"e from word end", WordEndNext, 2, 6},
		{"ge to previous end", WordEndPrev, 9, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(txt, tt.kind, tt.pos))
		})
	}
}

func TestWordPunctuationRuns(t *testing.T) {
	txt := text.New("foo(bar)")
	// Punctuation is its own word class.
	assert.Equal(t, 3, apply(txt, WordStartNext, 0))
	assert.Equal(t, 4, apply(txt, WordStartNext, 3))
}

func TestLongwordMotions(t *testing.T) {
	txt := text.New("foo(bar) baz")
	// WORDs are whitespace delimited: "foo(bar)" is one WORD.
	assert.Equal(t, 9, apply(txt, LongwordStartNext, 0))
	assert.Equal(t, 7, apply(txt, LongwordEndNext, 0))
	assert.Equal(t, 0, apply(txt, LongwordStartPrev, 9))
}

func TestWordAcrossLines(t *testing.T) {
	txt := text.New("one\ntwo")
	assert.Equal(t, 4, apply(txt, WordStartNext, 0))
	assert.Equal(t, 0, apply(txt, WordStartPrev, 4))
}

func TestFindChar(t *testing.T) {
	txt := text.New("abcabc")
	arg := Arg{Char: "b"}

	assert.Equal(t, 4, Apply(RightTo, txt, 1, arg), "f skips the cursor position")
	assert.Equal(t, 1, Apply(RightTo, txt, 0, arg))
	assert.Equal(t, 4, Apply(RightTill, txt, 4, Arg{Char: "z"}), "miss keeps position")
	assert.Equal(t, 0, Apply(RightTill, txt, 0, arg), "stops before the first hit")
	assert.Equal(t, 3, Apply(RightTill, txt, 1, arg))
	assert.Equal(t, 1, Apply(LeftTo, txt, 4, arg))
	assert.Equal(t, 2, Apply(LeftTill, txt, 4, arg))
}

func TestFindCharStaysOnLine(t *testing.T) {
	txt := text.New("abc\nxbz")
	assert.Equal(t, 0, Apply(RightTo, txt, 0, Arg{Char: "x"}), "target on next line is a miss")
}

func TestSearch(t *testing.T) {
	txt := text.New("foo bar foo baz foo")
	re := regexp.MustCompile("foo")
	arg := Arg{Pattern: re}

	assert.Equal(t, 8, Apply(SearchNext, txt, 0, arg))
	assert.Equal(t, 16, Apply(SearchNext, txt, 8, arg))
	assert.Equal(t, 0, Apply(SearchNext, txt, 16, arg), "wraps around")
	assert.Equal(t, 8, Apply(SearchPrev, txt, 16, arg))
	assert.Equal(t, 16, Apply(SearchPrev, txt, 0, arg), "wraps backward")
}

func TestParagraphs(t *testing.T) {
	txt := text.New("one\ntwo\n\nthree\nfour\n\nfive")
	assert.Equal(t, 8, apply(txt, ParagraphNext, 0))
	assert.Equal(t, 20, apply(txt, ParagraphNext, 9))
	assert.Equal(t, 8, apply(txt, ParagraphPrev, 10))
	assert.Equal(t, 0, apply(txt, ParagraphPrev, 5))
}

func TestSentences(t *testing.T) {
	txt := text.New("One two. Three four! Five?")
	assert.Equal(t, 9, apply(txt, SentenceNext, 0))
	assert.Equal(t, 21, apply(txt, SentenceNext, 9))
	assert.Equal(t, 9, apply(txt, SentencePrev, 15))
	assert.Equal(t, 0, apply(txt, SentencePrev, 5))
}

func TestBracketMatch(t *testing.T) {
	txt := text.New("a(b[c]d)e")

	assert.Equal(t, 7, apply(txt, BracketMatch, 1))
	assert.Equal(t, 1, apply(txt, BracketMatch, 7))
	assert.Equal(t, 5, apply(txt, BracketMatch, 3))
	// Off a bracket the motion scans forward on the line and matches the
	// first bracket it finds.
	assert.Equal(t, 1, apply(txt, BracketMatch, 6))
}

func TestBracketMatchNested(t *testing.T) {
	txt := text.New("((x))")
	assert.Equal(t, 4, apply(txt, BracketMatch, 0))
	assert.Equal(t, 3, apply(txt, BracketMatch, 1))
}

func TestFunctionMotions(t *testing.T) {
	txt := text.New("int f(void)\n{\n\tbody;\n}\nint g(void)\n{\n}\n")
	open1 := 12
	close1 := 21

	assert.Equal(t, open1, apply(txt, FunctionStartNext, 0))
	assert.Equal(t, close1, apply(txt, FunctionEndNext, 0))
	assert.Equal(t, open1, apply(txt, FunctionStartPrev, 20))
}

func TestLineMotionsAbsolute(t *testing.T) {
	txt := text.New("aa\nbb\ncc")
	assert.Equal(t, 3, Apply(Line, txt, 0, Arg{Count: 2}))
	assert.Equal(t, 6, Apply(Line, txt, 0, Arg{Count: 99}), "clamps to last line")
	assert.Equal(t, 0, Apply(FileBegin, txt, 5, Arg{}))
	assert.Equal(t, 8, Apply(FileEnd, txt, 0, Arg{}))
}

func TestMotionsAreTotal(t *testing.T) {
	txt := text.New("short")
	kinds := []Kind{
		CharPrev, CharNext, WordStartPrev, WordStartNext, WordEndPrev,
		WordEndNext, LongwordStartPrev, LongwordStartNext, LineUp,
		LineDown, LineBegin, LineStart, LineFinish, LineEnd,
		SentencePrev, SentenceNext, ParagraphPrev, ParagraphNext,
		BracketMatch, FileBegin, FileEnd, Nop,
	}
	for _, kind := range kinds {
		for _, pos := range []int{-5, 0, 3, 5, 100} {
			got := Apply(kind, txt, pos, Arg{})
			assert.GreaterOrEqual(t, got, 0, "kind %d pos %d", kind, pos)
			assert.LessOrEqual(t, got, txt.Size(), "kind %d pos %d", kind, pos)
		}
	}
}
