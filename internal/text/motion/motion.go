// Package motion implements the pure motion functions of the editor: each
// motion maps a text and a position to a new position. Motions never fail;
// a motion that cannot move reports the input position, which the
// dispatcher treats as an empty range.
package motion

import (
	"regexp"

	"github.com/vixedit/vix/internal/text"
)

// Kind identifies a motion.
type Kind int

const (
	CharPrev Kind = iota
	CharNext
	LineCharPrev
	LineCharNext
	WordStartPrev
	WordStartNext
	WordEndPrev
	WordEndNext
	LongwordStartPrev
	LongwordStartNext
	LongwordEndPrev
	LongwordEndNext
	LineUp
	LineDown
	LinePrev
	LineNext
	LineBegin
	LineStart
	LineFinish
	LineLastChar
	LineEnd
	Line
	Column
	SentencePrev
	SentenceNext
	ParagraphPrev
	ParagraphNext
	FunctionStartPrev
	FunctionStartNext
	FunctionEndPrev
	FunctionEndNext
	BracketMatch
	LeftTo
	RightTo
	LeftTill
	RightTill
	FileBegin
	FileEnd
	SearchNext
	SearchPrev
	Nop
)

// Flags describe how the dispatcher treats a motion's resulting range.
type Flags uint8

const (
	// Linewise ranges expand to whole lines under an operator.
	Linewise Flags = 1 << iota
	// Charwise forces character ranges even for line motions.
	Charwise
	// Inclusive motions cover the character they land on.
	Inclusive
	// Idempotent motions ignore the count: applying them twice is the
	// same as applying them once.
	Idempotent
	// Jump motions record the departure position in the jumplist.
	Jump
)

// Arg carries the parameters a motion may need beyond the position.
type Arg struct {
	// Char is the target of to/till motions (may be multi-byte).
	Char string
	// Count is the resolved count for absolute motions (line, column).
	Count int
	// Pattern is the compiled search pattern for search motions.
	Pattern *regexp.Regexp
}

// Func computes the target position of a motion.
type Func func(t *text.Text, pos int, arg Arg) int

// Motion pairs the implementation with its dispatch flags.
type Motion struct {
	Move  Func
	Flags Flags
}

// table indexes all motions by kind.
var table = map[Kind]Motion{
	CharPrev:     {Move: func(t *text.Text, pos int, _ Arg) int { return t.CharPrev(pos) }, Flags: Charwise},
	CharNext:     {Move: func(t *text.Text, pos int, _ Arg) int { return t.CharNext(pos) }, Flags: Charwise},
	LineCharPrev: {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineCharPrev(pos) }, Flags: Charwise},
	LineCharNext: {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineCharNext(pos) }, Flags: Charwise},

	WordStartPrev:     {Move: wordStartPrev, Flags: Charwise},
	WordStartNext:     {Move: wordStartNext, Flags: Charwise},
	WordEndPrev:       {Move: wordEndPrev, Flags: Charwise | Inclusive},
	WordEndNext:       {Move: wordEndNext, Flags: Charwise | Inclusive},
	LongwordStartPrev: {Move: longwordStartPrev, Flags: Charwise},
	LongwordStartNext: {Move: longwordStartNext, Flags: Charwise},
	LongwordEndPrev:   {Move: longwordEndPrev, Flags: Charwise | Inclusive},
	LongwordEndNext:   {Move: longwordEndNext, Flags: Charwise | Inclusive},

	LineUp:       {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineUp(pos) }, Flags: Linewise},
	LineDown:     {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineDown(pos) }, Flags: Linewise},
	LinePrev:     {Move: func(t *text.Text, pos int, _ Arg) int { return t.LinePrev(pos) }},
	LineNext:     {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineNext(pos) }},
	LineBegin:    {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineBegin(pos) }},
	LineStart:    {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineStart(pos) }},
	LineFinish:   {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineFinish(pos) }, Flags: Inclusive},
	LineLastChar: {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineLastChar(pos) }, Flags: Inclusive},
	LineEnd:      {Move: func(t *text.Text, pos int, _ Arg) int { return t.LineEnd(pos) }},

	Line: {
		Move:  func(t *text.Text, pos int, arg Arg) int { return t.PosByLine(arg.Count) },
		Flags: Linewise | Idempotent | Jump,
	},
	Column: {
		Move:  func(t *text.Text, pos int, arg Arg) int { return t.ColumnSet(pos, arg.Count) },
		Flags: Charwise | Idempotent,
	},

	SentencePrev:      {Move: sentencePrev, Flags: Linewise},
	SentenceNext:      {Move: sentenceNext, Flags: Linewise},
	ParagraphPrev:     {Move: paragraphPrev, Flags: Linewise | Jump},
	ParagraphNext:     {Move: paragraphNext, Flags: Linewise | Jump},
	FunctionStartPrev: {Move: functionStartPrev, Flags: Linewise | Jump},
	FunctionStartNext: {Move: functionStartNext, Flags: Linewise | Jump},
	FunctionEndPrev:   {Move: functionEndPrev, Flags: Linewise | Jump},
	FunctionEndNext:   {Move: functionEndNext, Flags: Linewise | Jump},

	BracketMatch: {Move: bracketMatch, Flags: Inclusive | Jump},

	LeftTo:    {Move: toLeft},
	RightTo:   {Move: toRight, Flags: Inclusive},
	LeftTill:  {Move: tillLeft},
	RightTill: {Move: tillRight, Flags: Inclusive},

	FileBegin: {Move: func(t *text.Text, pos int, _ Arg) int { return 0 }, Flags: Linewise | Jump},
	FileEnd:   {Move: func(t *text.Text, pos int, _ Arg) int { return t.Size() }, Flags: Linewise | Jump},

	SearchNext: {Move: searchNext, Flags: Jump},
	SearchPrev: {Move: searchPrev, Flags: Jump},

	Nop: {Move: func(t *text.Text, pos int, _ Arg) int { return pos }, Flags: Idempotent},
}

// Get returns the motion registered for kind. The zero Motion is returned
// for unknown kinds; its Move is nil.
func Get(kind Kind) Motion {
	return table[kind]
}

// Apply runs the motion once and clamps the result.
func Apply(kind Kind, t *text.Text, pos int, arg Arg) int {
	m, ok := table[kind]
	if !ok {
		return pos
	}
	res := m.Move(t, pos, arg)
	if res < 0 {
		return 0
	}
	if res > t.Size() {
		return t.Size()
	}
	return res
}
