package motion

import (
	"github.com/vixedit/vix/internal/text"
)

// Structural motions: sentences, paragraphs, C-like functions, and bracket
// matching.

// lineIsBlank reports whether the line containing pos has no non-blank
// characters.
func lineIsBlank(t *text.Text, pos int) bool {
	return t.LineStart(pos) == t.LineEnd(pos)
}

// paragraphNext moves to the next blank line following non-blank content.
func paragraphNext(t *text.Text, pos int, _ Arg) int {
	p := pos
	// Leave a blank region first.
	for p < t.Size() && lineIsBlank(t, p) {
		p = t.LineNext(p)
	}
	for p < t.Size() && !lineIsBlank(t, p) {
		p = t.LineNext(p)
	}
	if p >= t.Size() {
		return t.Size()
	}
	return t.LineBegin(p)
}

// paragraphPrev moves to the previous blank line, or the file begin.
func paragraphPrev(t *text.Text, pos int, _ Arg) int {
	p := t.LineBegin(pos)
	if p == 0 {
		return 0
	}
	p = t.LinePrev(p)
	for p > 0 && !lineIsBlank(t, p) {
		p = t.LinePrev(p)
	}
	return p
}

// sentenceEndings terminate a sentence when followed by whitespace.
func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// sentenceNext moves to the first character of the next sentence.
func sentenceNext(t *text.Text, pos int, _ Arg) int {
	p := pos
	for p < t.Size() {
		b, ok := t.Byte(p)
		if !ok {
			break
		}
		if isSentenceEnd(b) {
			// Skip closing quotes/brackets and trailing whitespace.
			q := p + 1
			for {
				c, ok := t.Byte(q)
				if !ok || (c != ')' && c != ']' && c != '"' && c != '\'') {
					break
				}
				q++
			}
			c, ok := t.Byte(q)
			if ok && (c == ' ' || c == '\t' || c == '\n') {
				for {
					c, ok = t.Byte(q)
					if !ok || (c != ' ' && c != '\t' && c != '\n') {
						break
					}
					q++
				}
				if q > pos && q < t.Size() {
					return q
				}
			}
			p = q
			continue
		}
		p++
	}
	return t.Size()
}

// sentencePrev moves to the first character of the current or previous
// sentence.
func sentencePrev(t *text.Text, pos int, _ Arg) int {
	// Find the latest sentence start strictly before pos.
	best := 0
	p := 0
	for p < pos {
		next := sentenceNext(t, p, Arg{})
		if next >= pos || next == p {
			break
		}
		best = next
		p = next
	}
	return best
}

// Function motions treat a '{' in column zero as the start of a C-like
// function body and its matching '}' as the end.

func functionStartNext(t *text.Text, pos int, _ Arg) int {
	p := t.LineNext(pos)
	for p < t.Size() {
		if b, ok := t.Byte(p); ok && b == '{' {
			return p
		}
		next := t.LineNext(p)
		if next == p {
			break
		}
		p = next
	}
	return pos
}

func functionStartPrev(t *text.Text, pos int, _ Arg) int {
	p := t.LineBegin(pos)
	for p > 0 {
		p = t.LinePrev(p)
		if b, ok := t.Byte(p); ok && b == '{' {
			return p
		}
		if p == 0 {
			break
		}
	}
	return pos
}

func functionEndNext(t *text.Text, pos int, _ Arg) int {
	p := t.LineNext(pos)
	for p < t.Size() {
		if b, ok := t.Byte(p); ok && b == '}' {
			return p
		}
		next := t.LineNext(p)
		if next == p {
			break
		}
		p = next
	}
	return pos
}

func functionEndPrev(t *text.Text, pos int, _ Arg) int {
	p := t.LineBegin(pos)
	for p > 0 {
		p = t.LinePrev(p)
		if b, ok := t.Byte(p); ok && b == '}' {
			return p
		}
		if p == 0 {
			break
		}
	}
	return pos
}

// brackets pairs openers with closers.
var brackets = map[byte]struct {
	match   byte
	forward bool
}{
	'(': {')', true},
	')': {'(', false},
	'[': {']', true},
	']': {'[', false},
	'{': {'}', true},
	'}': {'{', false},
	'<': {'>', true},
	'>': {'<', false},
}

// bracketMatch jumps to the partner of the bracket under (or after, on the
// same line) the cursor.
func bracketMatch(t *text.Text, pos int, _ Arg) int {
	p := pos
	end := t.LineEnd(pos)
	var open byte
	for p < end {
		b, ok := t.Byte(p)
		if !ok {
			return pos
		}
		if _, found := brackets[b]; found {
			open = b
			break
		}
		p++
	}
	if open == 0 {
		return pos
	}
	pair := brackets[open]
	depth := 0
	if pair.forward {
		for q := p; q < t.Size(); q++ {
			b, _ := t.Byte(q)
			switch b {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					return q
				}
			}
		}
	} else {
		for q := p; q >= 0; q-- {
			b, _ := t.Byte(q)
			switch b {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					return q
				}
			}
		}
	}
	return pos
}
