// Package object implements the text-object functions: pure mappings from a
// text and a position to a structural range around that position. Unlike
// motions, text objects can fail: when the position is not inside the
// requested object the invalid range sentinel is returned.
package object

import (
	"github.com/vixedit/vix/internal/text"
)

// Kind identifies a text object, inner and outer variants separately.
// Inner and outer differ only in whether delimiting characters or the
// surrounding whitespace are included.
type Kind int

const (
	InnerWord Kind = iota
	OuterWord
	InnerLongword
	OuterLongword
	Sentence
	Paragraph
	InnerSquareBracket
	OuterSquareBracket
	InnerCurlyBracket
	OuterCurlyBracket
	InnerAngleBracket
	OuterAngleBracket
	InnerParen
	OuterParen
	InnerQuote
	OuterQuote
	InnerSingleQuote
	OuterSingleQuote
	InnerBacktick
	OuterBacktick
	InnerEntire
	OuterEntire
	InnerFunction
	OuterFunction
	InnerLine
	OuterLine
)

// Func computes the range of an object around pos.
type Func func(t *text.Text, pos int) text.Range

var table = map[Kind]Func{
	InnerWord:          func(t *text.Text, pos int) text.Range { return word(t, pos, false) },
	OuterWord:          func(t *text.Text, pos int) text.Range { return word(t, pos, true) },
	InnerLongword:      func(t *text.Text, pos int) text.Range { return longword(t, pos, false) },
	OuterLongword:      func(t *text.Text, pos int) text.Range { return longword(t, pos, true) },
	Sentence:           sentence,
	Paragraph:          paragraph,
	InnerSquareBracket: delimited('[', ']', false),
	OuterSquareBracket: delimited('[', ']', true),
	InnerCurlyBracket:  delimited('{', '}', false),
	OuterCurlyBracket:  delimited('{', '}', true),
	InnerAngleBracket:  delimited('<', '>', false),
	OuterAngleBracket:  delimited('<', '>', true),
	InnerParen:         delimited('(', ')', false),
	OuterParen:         delimited('(', ')', true),
	InnerQuote:         quoted('"', false),
	OuterQuote:         quoted('"', true),
	InnerSingleQuote:   quoted('\'', false),
	OuterSingleQuote:   quoted('\'', true),
	InnerBacktick:      quoted('`', false),
	OuterBacktick:      quoted('`', true),
	InnerEntire:        entireInner,
	OuterEntire:        entire,
	InnerFunction:      functionInner,
	OuterFunction:      functionOuter,
	InnerLine:          lineInner,
	OuterLine:          lineOuter,
}

// Get returns the object function for kind, or nil for unknown kinds.
func Get(kind Kind) Func {
	return table[kind]
}

// Apply computes the object range at pos.
func Apply(kind Kind, t *text.Text, pos int) text.Range {
	fn, ok := table[kind]
	if !ok {
		return text.Invalid()
	}
	return fn(t, pos)
}
