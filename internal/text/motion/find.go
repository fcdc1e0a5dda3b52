package motion

import (
	"github.com/vixedit/vix/internal/text"
)

// to/till motions search for a character within the current line. A miss
// leaves the position unchanged, which the dispatcher discards as an empty
// range.

func toRight(t *text.Text, pos int, arg Arg) int {
	if arg.Char == "" {
		return pos
	}
	from := t.CharNext(pos)
	hit := t.LineFindNext(from, []byte(arg.Char))
	if string(t.Bytes(hit, hit+len(arg.Char))) != arg.Char {
		return pos
	}
	return hit
}

func tillRight(t *text.Text, pos int, arg Arg) int {
	hit := toRight(t, pos, arg)
	if hit == pos {
		return pos
	}
	return t.CharPrev(hit)
}

func toLeft(t *text.Text, pos int, arg Arg) int {
	if arg.Char == "" || pos == 0 {
		return pos
	}
	hit := t.LineFindPrev(t.CharPrev(pos), []byte(arg.Char))
	if b := t.Bytes(hit, hit+len(arg.Char)); string(b) != arg.Char || hit >= pos {
		return pos
	}
	return hit
}

func tillLeft(t *text.Text, pos int, arg Arg) int {
	hit := toLeft(t, pos, arg)
	if hit == pos {
		return pos
	}
	return t.CharNext(hit)
}

// searchNext finds the next match of the compiled pattern after pos,
// wrapping around the buffer end.
func searchNext(t *text.Text, pos int, arg Arg) int {
	if arg.Pattern == nil {
		return pos
	}
	content := t.Bytes(0, t.Size())
	from := t.CharNext(pos)
	if loc := arg.Pattern.FindIndex(content[from:]); loc != nil {
		return from + loc[0]
	}
	if loc := arg.Pattern.FindIndex(content); loc != nil {
		return loc[0]
	}
	return pos
}

// searchPrev finds the last match of the compiled pattern before pos,
// wrapping around the buffer start.
func searchPrev(t *text.Text, pos int, arg Arg) int {
	if arg.Pattern == nil {
		return pos
	}
	content := t.Bytes(0, t.Size())
	best := -1
	for _, loc := range arg.Pattern.FindAllIndex(content, -1) {
		if loc[0] < pos {
			best = loc[0]
		}
	}
	if best >= 0 {
		return best
	}
	// Wrap: take the last match in the buffer.
	if locs := arg.Pattern.FindAllIndex(content, -1); len(locs) > 0 {
		last := locs[len(locs)-1][0]
		if last != pos {
			return last
		}
	}
	return pos
}
