package editor

import (
	"regexp"

	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text/motion"
	"github.com/vixedit/vix/internal/text/object"
)

// searchCompile compiles a pattern into the shared search state and the '/'
// register. Returns false on a bad pattern.
func (ed *Editor) searchCompile(pattern string) bool {
	if pattern == "" {
		return ed.searchPattern != nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		ed.Info("invalid pattern: " + pattern)
		return false
	}
	ed.searchPattern = re
	ed.registers.SetString(register.Search, pattern, register.Charwise)
	return true
}

// searchWord compiles the word under the cursor as a literal pattern and
// moves to its next or previous occurrence.
func (ed *Editor) searchWord(forward bool) {
	word := object.Apply(object.InnerWord, ed.txt, ed.view.Primary().Pos)
	if !word.Valid() || word.Empty() {
		ed.action.reset()
		return
	}
	pattern := regexp.QuoteMeta(string(ed.txt.Bytes(word.Start, word.End)))
	if !ed.searchCompile(pattern) {
		ed.action.reset()
		return
	}
	if forward {
		ed.Motion(motion.SearchNext)
	} else {
		ed.Motion(motion.SearchPrev)
	}
}
