package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/vixedit/vix/internal/text"
)

func TestWordObjects(t *testing.T) {
	txt := text.New("one two three")

	inner := Apply(InnerWord, txt, 5)
	assert.Equal(t, text.Range{Start: 4, End: 7}, inner)

	outer := Apply(OuterWord, txt, 5)
	assert.Equal(t, text.Range{Start: 4, End: 8}, outer, "takes trailing blank")

	// The last word has no trailing blank; outer takes the leading one.
	last := Apply(OuterWord, txt, 9)
	assert.Equal(t, text.Range{Start: 7, End: 13}, last)
}

func TestWordObjectInvalidOnSpace(t *testing.T) {
	txt := text.New("a  b")
	assert.False(t, Apply(InnerWord, txt, 1).Valid())
}

func TestLongwordObject(t *testing.T) {
	txt := text.New("foo(bar) baz")
	assert.Equal(t, text.Range{Start: 0, End: 8}, Apply(InnerLongword, txt, 4))
}

func TestBracketObjects(t *testing.T) {
	txt := text.New("x(foo bar)y")

	assert.Equal(t, text.Range{Start: 2, End: 9}, Apply(InnerParen, txt, 4))
	assert.Equal(t, text.Range{Start: 1, End: 10}, Apply(OuterParen, txt, 4))

	// On the delimiters themselves.
	assert.Equal(t, text.Range{Start: 2, End: 9}, Apply(InnerParen, txt, 1))
	assert.Equal(t, text.Range{Start: 2, End: 9}, Apply(InnerParen, txt, 9))

	// Outside any pair.
	assert.False(t, Apply(InnerParen, txt, 0).Valid())
	assert.False(t, Apply(InnerParen, txt, 10).Valid())
}

func TestBracketObjectsNest(t *testing.T) {
	txt := text.New("(a(b)c)")
	assert.Equal(t, text.Range{Start: 3, End: 4}, Apply(InnerParen, txt, 3))
	assert.Equal(t, text.Range{Start: 1, End: 6}, Apply(InnerParen, txt, 5), "innermost pair containing c")
}

func TestQuoteObjects(t *testing.T) {
	txt := text.New(`say "hello there" end`)
	assert.Equal(t, text.Range{Start: 5, End: 16}, Apply(InnerQuote, txt, 8))
	assert.Equal(t, text.Range{Start: 4, End: 17}, Apply(OuterQuote, txt, 8))
	assert.False(t, Apply(InnerQuote, txt, 1).Valid())
}

func TestQuoteObjectsDoNotNest(t *testing.T) {
	txt := text.New(`"a" x "b"`)
	// Between the pairs the object is invalid: quotes pair up in order.
	assert.False(t, Apply(InnerQuote, txt, 4).Valid())
	assert.Equal(t, text.Range{Start: 7, End: 8}, Apply(InnerQuote, txt, 7))
}

func TestLineObjects(t *testing.T) {
	txt := text.New("  foo bar  \nnext")
	assert.Equal(t, text.Range{Start: 0, End: 12}, Apply(OuterLine, txt, 3))
	assert.Equal(t, text.Range{Start: 2, End: 9}, Apply(InnerLine, txt, 3))
}

func TestEntireObjects(t *testing.T) {
	txt := text.New("\n\nbody\n\n")
	assert.Equal(t, text.Range{Start: 0, End: 8}, Apply(OuterEntire, txt, 3))
	assert.Equal(t, text.Range{Start: 2, End: 7}, Apply(InnerEntire, txt, 3))
}

func TestParagraphObject(t *testing.T) {
	txt := text.New("one\ntwo\n\n\nthree")
	r := Apply(Paragraph, txt, 5)
	assert.Equal(t, text.Range{Start: 0, End: 10}, r, "covers trailing blank lines")
}

func TestSentenceObject(t *testing.T) {
	txt := text.New("First one. Second two. Third.")
	assert.Equal(t, text.Range{Start: 0, End: 11}, Apply(Sentence, txt, 3))
	assert.Equal(t, text.Range{Start: 11, End: 23}, Apply(Sentence, txt, 15))
}

func TestFunctionObjects(t *testing.T) {
	txt := text.New("int f(void)\n{\n\tbody;\n}\nrest\n")

	outer := Apply(OuterFunction, txt, 15)
	assert.Equal(t, text.Range{Start: 0, End: 23}, outer, "header through closing brace line")

	inner := Apply(InnerFunction, txt, 15)
	assert.Equal(t, text.Range{Start: 14, End: 21}, inner, "brace block body")

	assert.False(t, Apply(InnerFunction, txt, 27).Valid(), "past the function")
}

// Property: outer contains inner whenever both are valid.
func TestOuterContainsInner(t *testing.T) {
	pairs := []struct {
		inner, outer Kind
	}{
		{InnerWord, OuterWord},
		{InnerLongword, OuterLongword},
		{InnerParen, OuterParen},
		{InnerSquareBracket, OuterSquareBracket},
		{InnerCurlyBracket, OuterCurlyBracket},
		{InnerAngleBracket, OuterAngleBracket},
		{InnerQuote, OuterQuote},
		{InnerSingleQuote, OuterSingleQuote},
		{InnerBacktick, OuterBacktick},
		{InnerEntire, OuterEntire},
		{InnerFunction, OuterFunction},
		{InnerLine, OuterLine},
	}
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringOfN(rapid.RuneFrom([]rune(`ab (){}[]<>"'`+"`\n \t")), 0, 40, -1).Draw(t, "content")
		txt := text.New(content)
		pos := rapid.IntRange(0, txt.Size()).Draw(t, "pos")
		for _, pair := range pairs {
			inner := Apply(pair.inner, txt, pos)
			outer := Apply(pair.outer, txt, pos)
			if inner.Valid() && outer.Valid() {
				if outer.Start > inner.Start || outer.End < inner.End {
					t.Fatalf("outer %v does not contain inner %v (kind %d at %d in %q)",
						outer, inner, pair.inner, pos, content)
				}
			}
		}
	})
}
