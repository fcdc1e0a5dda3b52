package editor

import (
	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/text/motion"
	"github.com/vixedit/vix/internal/text/object"
)

// registerDefaults installs the built-in action table. Every entry is
// addressable by name from key bindings, config files, and the command
// line's <name> syntax.
func (ed *Editor) registerDefaults() {
	acts := []*Action{
		{Name: "editor-suspend", Help: "Suspend the editor", Do: actSuspend},
		{Name: "editor-redraw", Help: "Redraw current editor content", Do: actCall, Arg: Arg{F: (*Editor).Draw}},
		{Name: "editor-undo", Help: "Undo last change", Do: actUndo},
		{Name: "editor-redo", Help: "Redo last change", Do: actRedo},
		{Name: "editor-earlier", Help: "Goto older text state", Do: actEarlier},
		{Name: "editor-later", Help: "Goto newer text state", Do: actLater},
		{Name: "editor-repeat", Help: "Repeat latest editor command", Do: actRepeat},
		{Name: "nop", Help: "Ignore key, do nothing", Do: actNop},

		{Name: "cursor-char-prev", Help: "Move cursor left, to the previous character", Do: actMovement, Arg: Arg{I: int(motion.CharPrev)}},
		{Name: "cursor-char-next", Help: "Move cursor right, to the next character", Do: actMovement, Arg: Arg{I: int(motion.CharNext)}},
		{Name: "cursor-line-char-prev", Help: "Move cursor left within the line", Do: actMovement, Arg: Arg{I: int(motion.LineCharPrev)}},
		{Name: "cursor-line-char-next", Help: "Move cursor right within the line", Do: actMovement, Arg: Arg{I: int(motion.LineCharNext)}},
		{Name: "cursor-word-start-prev", Help: "Move cursor words backwards", Do: actMovement, Arg: Arg{I: int(motion.WordStartPrev)}},
		{Name: "cursor-word-start-next", Help: "Move cursor words forwards", Do: actMovement, Arg: Arg{I: int(motion.WordStartNext)}},
		{Name: "cursor-word-end-prev", Help: "Move cursor backwards to the end of word", Do: actMovement, Arg: Arg{I: int(motion.WordEndPrev)}},
		{Name: "cursor-word-end-next", Help: "Move cursor forward to the end of word", Do: actMovement, Arg: Arg{I: int(motion.WordEndNext)}},
		{Name: "cursor-longword-start-prev", Help: "Move cursor WORDS backwards", Do: actMovement, Arg: Arg{I: int(motion.LongwordStartPrev)}},
		{Name: "cursor-longword-start-next", Help: "Move cursor WORDS forwards", Do: actMovement, Arg: Arg{I: int(motion.LongwordStartNext)}},
		{Name: "cursor-longword-end-prev", Help: "Move cursor backwards to the end of WORD", Do: actMovement, Arg: Arg{I: int(motion.LongwordEndPrev)}},
		{Name: "cursor-longword-end-next", Help: "Move cursor forward to the end of WORD", Do: actMovement, Arg: Arg{I: int(motion.LongwordEndNext)}},
		{Name: "cursor-line-up", Help: "Move cursor line upwards", Do: actMovement, Arg: Arg{I: int(motion.LineUp)}},
		{Name: "cursor-line-down", Help: "Move cursor line downwards", Do: actMovement, Arg: Arg{I: int(motion.LineDown)}},
		{Name: "cursor-line-start", Help: "Move cursor to first non-blank character of the line", Do: actMovement, Arg: Arg{I: int(motion.LineStart)}},
		{Name: "cursor-line-finish", Help: "Move cursor to last non-blank character of the line", Do: actMovement, Arg: Arg{I: int(motion.LineFinish)}},
		{Name: "cursor-line-begin", Help: "Move cursor to first character of the line", Do: actMovement, Arg: Arg{I: int(motion.LineBegin)}},
		{Name: "cursor-line-end", Help: "Move cursor to end of the line", Do: actMovement, Arg: Arg{I: int(motion.LineLastChar)}},
		{Name: "cursor-match-bracket", Help: "Match corresponding symbol if cursor is on a bracket character", Do: actMovement, Arg: Arg{I: int(motion.BracketMatch)}},
		{Name: "cursor-paragraph-prev", Help: "Move cursor paragraph backward", Do: actMovement, Arg: Arg{I: int(motion.ParagraphPrev)}},
		{Name: "cursor-paragraph-next", Help: "Move cursor paragraph forward", Do: actMovement, Arg: Arg{I: int(motion.ParagraphNext)}},
		{Name: "cursor-sentence-prev", Help: "Move cursor sentence backward", Do: actMovement, Arg: Arg{I: int(motion.SentencePrev)}},
		{Name: "cursor-sentence-next", Help: "Move cursor sentence forward", Do: actMovement, Arg: Arg{I: int(motion.SentenceNext)}},
		{Name: "cursor-function-start-prev", Help: "Move cursor backwards to start of function", Do: actMovement, Arg: Arg{I: int(motion.FunctionStartPrev)}},
		{Name: "cursor-function-start-next", Help: "Move cursor forwards to start of function", Do: actMovement, Arg: Arg{I: int(motion.FunctionStartNext)}},
		{Name: "cursor-function-end-prev", Help: "Move cursor backwards to end of function", Do: actMovement, Arg: Arg{I: int(motion.FunctionEndPrev)}},
		{Name: "cursor-function-end-next", Help: "Move cursor forwards to end of function", Do: actMovement, Arg: Arg{I: int(motion.FunctionEndNext)}},
		{Name: "cursor-column", Help: "Move cursor to given column of current line", Do: actMovement, Arg: Arg{I: int(motion.Column)}},
		{Name: "cursor-line-first", Help: "Move cursor to given line (defaults to first)", Do: actGotoLine, Arg: Arg{I: -1}},
		{Name: "cursor-line-last", Help: "Move cursor to given line (defaults to last)", Do: actGotoLine, Arg: Arg{I: +1}},
		{Name: "cursor-search-forward", Help: "Move cursor to next match of the search pattern", Do: actMovement, Arg: Arg{I: int(motion.SearchNext)}},
		{Name: "cursor-search-backward", Help: "Move cursor to previous match of the search pattern", Do: actMovement, Arg: Arg{I: int(motion.SearchPrev)}},
		{Name: "cursor-search-word-forward", Help: "Move cursor to next occurence of the word under cursor", Do: actSearchWord, Arg: Arg{I: +1}},
		{Name: "cursor-search-word-backward", Help: "Move cursor to previous occurence of the word under cursor", Do: actSearchWord, Arg: Arg{I: -1}},
		{Name: "cursor-window-line-top", Help: "Move cursor to top line of the window", Do: actWindowLine, Arg: Arg{I: -1}},
		{Name: "cursor-window-line-middle", Help: "Move cursor to middle line of the window", Do: actWindowLine, Arg: Arg{I: 0}},
		{Name: "cursor-window-line-bottom", Help: "Move cursor to bottom line of the window", Do: actWindowLine, Arg: Arg{I: +1}},

		{Name: "jumplist-prev", Help: "Go to older cursor position in jump list", Do: actJumplist, Arg: Arg{I: -1}},
		{Name: "jumplist-next", Help: "Go to newer cursor position in jump list", Do: actJumplist, Arg: Arg{I: +1}},
		{Name: "changelist-prev", Help: "Go to older cursor position in change list", Do: actChangelist, Arg: Arg{I: -1}},
		{Name: "changelist-next", Help: "Go to newer cursor position in change list", Do: actChangelist, Arg: Arg{I: +1}},

		{Name: "window-page-up", Help: "Scroll window pages backwards (upwards)", Do: actScroll, Arg: Arg{I: -pageDist}},
		{Name: "window-page-down", Help: "Scroll window pages forwards (downwards)", Do: actScroll, Arg: Arg{I: +pageDist}},
		{Name: "window-halfpage-up", Help: "Scroll window half pages backwards (upwards)", Do: actScroll, Arg: Arg{I: -halfPageDist}},
		{Name: "window-halfpage-down", Help: "Scroll window half pages forwards (downwards)", Do: actScroll, Arg: Arg{I: +halfPageDist}},
		{Name: "window-slide-up", Help: "Slide window content upwards", Do: actSlide, Arg: Arg{I: -1}},
		{Name: "window-slide-down", Help: "Slide window content downwards", Do: actSlide, Arg: Arg{I: +1}},
		{Name: "window-redraw-top", Help: "Redraw cursor line at the top of the window", Do: actCall, Arg: Arg{F: func(ed *Editor) { ed.view.RedrawTop(); ed.ui.Draw() }}},
		{Name: "window-redraw-center", Help: "Redraw cursor line at the center of the window", Do: actCall, Arg: Arg{F: func(ed *Editor) { ed.view.RedrawCenter(); ed.ui.Draw() }}},
		{Name: "window-redraw-bottom", Help: "Redraw cursor line at the bottom of the window", Do: actCall, Arg: Arg{F: func(ed *Editor) { ed.view.RedrawBottom(); ed.ui.Draw() }}},

		{Name: "vis-mode-normal", Help: "Enter normal mode", Do: actSwitchMode, Arg: Arg{I: int(mode.Normal)}},
		{Name: "vis-mode-visual-charwise", Help: "Enter characterwise visual mode", Do: actSwitchMode, Arg: Arg{I: int(mode.Visual)}},
		{Name: "vis-mode-visual-linewise", Help: "Enter linewise visual mode", Do: actSwitchMode, Arg: Arg{I: int(mode.VisualLine)}},
		{Name: "vis-mode-insert", Help: "Enter insert mode", Do: actSwitchMode, Arg: Arg{I: int(mode.Insert)}},
		{Name: "vis-mode-replace", Help: "Enter replace mode", Do: actSwitchMode, Arg: Arg{I: int(mode.Replace)}},
		{Name: "vis-mode-operator-pending", Help: "Enter operator pending mode", Do: actSwitchMode, Arg: Arg{I: int(mode.Operator)}},

		{Name: "delete-char-prev", Help: "Delete the previous character", Do: actDelete, Arg: Arg{I: int(motion.CharPrev)}},
		{Name: "delete-char-next", Help: "Delete the next character", Do: actDelete, Arg: Arg{I: int(motion.CharNext)}},
		{Name: "delete-line-begin", Help: "Delete until the start of the current line", Do: actDelete, Arg: Arg{I: int(motion.LineBegin)}},
		{Name: "delete-word-prev", Help: "Delete the previous WORD", Do: actDelete, Arg: Arg{I: int(motion.LongwordStartPrev)}},

		{Name: "macro-record", Help: "Record macro into given register", Do: actMacroRecord},
		{Name: "macro-replay", Help: "Replay macro, execute the content of the given register", Do: actMacroReplay},

		{Name: "mark-set", Help: "Set given mark at current cursor position", Do: actMarkSet},
		{Name: "mark-goto", Help: "Goto the position of the given mark", Do: actMarkMotion, Arg: Arg{I: markGoto}},
		{Name: "mark-goto-line", Help: "Goto first non-blank character of the line containing the given mark", Do: actMarkMotion, Arg: Arg{I: markGotoLine}},

		{Name: "replace-char", Help: "Replace the character under the cursor", Do: actReplace},

		{Name: "totill-repeat", Help: "Repeat latest to/till motion", Do: actMovement, Arg: Arg{I: int(motionToTillRepeat)}},
		{Name: "totill-reverse", Help: "Repeat latest to/till motion but in opposite direction", Do: actMovement, Arg: Arg{I: int(motionToTillReverse)}},
		{Name: "to-right", Help: "To the first occurrence of character to the right", Do: actMovementKey, Arg: Arg{I: int(motion.RightTo)}},
		{Name: "to-left", Help: "To the first occurrence of character to the left", Do: actMovementKey, Arg: Arg{I: int(motion.LeftTo)}},
		{Name: "till-right", Help: "Till before the occurrence of character to the right", Do: actMovementKey, Arg: Arg{I: int(motion.RightTill)}},
		{Name: "till-left", Help: "Till after the occurrence of character to the left", Do: actMovementKey, Arg: Arg{I: int(motion.LeftTill)}},

		{Name: "search-forward", Help: "Search forward", Do: actPromptSearch, Arg: Arg{S: "/"}},
		{Name: "search-backward", Help: "Search backward", Do: actPromptSearch, Arg: Arg{S: "?"}},

		{Name: "register", Help: "Use given register for next operator", Do: actRegister},

		{Name: "vis-operator-change", Help: "Change operator", Do: actOperator, Arg: Arg{I: opChange}},
		{Name: "vis-operator-delete", Help: "Delete operator", Do: actOperator, Arg: Arg{I: opDelete}},
		{Name: "vis-operator-yank", Help: "Yank operator", Do: actOperator, Arg: Arg{I: opYank}},
		{Name: "vis-operator-shift-left", Help: "Shift left operator", Do: actOperator, Arg: Arg{I: opShiftLeft}},
		{Name: "vis-operator-shift-right", Help: "Shift right operator", Do: actOperator, Arg: Arg{I: opShiftRight}},
		{Name: "vis-operator-case-lower", Help: "Lowercase operator", Do: actOperator, Arg: Arg{I: opCaseLower}},
		{Name: "vis-operator-case-upper", Help: "Uppercase operator", Do: actOperator, Arg: Arg{I: opCaseUpper}},
		{Name: "vis-operator-case-swap", Help: "Swap case operator", Do: actOperator, Arg: Arg{I: opCaseSwap}},

		{Name: "vis-count-zero", Help: "Count specifier or line begin", Do: actCount, Arg: Arg{I: 0}},

		{Name: "insert-newline", Help: "Insert a line break (depending on file type)", Do: actCall, Arg: Arg{F: (*Editor).InsertNewline}},
		{Name: "insert-tab", Help: "Insert a tab (might be converted to spaces)", Do: actCall, Arg: Arg{F: (*Editor).InsertTab}},
		{Name: "insert-verbatim", Help: "Insert Unicode character based on code point", Do: actInsertVerbatim},
		{Name: "insert-register", Help: "Insert specified register content", Do: actInsertRegister},

		{Name: "open-line-above", Help: "Begin a new line above the cursor", Do: actOpenLine, Arg: Arg{I: -1}},
		{Name: "open-line-below", Help: "Begin a new line below the cursor", Do: actOpenLine, Arg: Arg{I: +1}},

		{Name: "join-line-below", Help: "Join line(s)", Do: actJoin, Arg: Arg{I: int(motion.LineNext)}},
		{Name: "join-lines", Help: "Join selected lines", Do: actOperator, Arg: Arg{I: opJoin}},

		{Name: "prompt-show", Help: "Show editor command line prompt", Do: actPromptCmd, Arg: Arg{S: ""}},
		{Name: "prompt-show-visual", Help: "Show editor command line prompt in visual mode", Do: actPromptCmd, Arg: Arg{S: "'<,'>"}},
		{Name: "prompt-backspace", Help: "Delete previous character in prompt", Do: actPromptBackspace},
		{Name: "prompt-clear", Help: "Clear the prompt content", Do: actCall, Arg: Arg{F: func(ed *Editor) { ed.PromptSet("") }}},
		{Name: "prompt-delete-word", Help: "Delete the previous word in the prompt", Do: actCall, Arg: Arg{F: (*Editor).promptDeleteWord}},
		{Name: "prompt-enter", Help: "Execute current prompt content", Do: actCall, Arg: Arg{F: (*Editor).PromptEnter}},

		{Name: "selection-flip", Help: "Flip selection, move cursor to other end", Do: actSelectionFlip},
		{Name: "selection-restore", Help: "Restore last selection", Do: actSelectionRestore},

		{Name: "put-after", Help: "Put text after the cursor", Do: actOperator, Arg: Arg{I: opPutAfter}},
		{Name: "put-before", Help: "Put text before the cursor", Do: actOperator, Arg: Arg{I: opPutBefore}},
		{Name: "put-after-end", Help: "Put text after the cursor, place cursor after new text", Do: actOperator, Arg: Arg{I: opPutAfterEnd}},
		{Name: "put-before-end", Help: "Put text before the cursor, place cursor after new text", Do: actOperator, Arg: Arg{I: opPutBeforeEnd}},

		{Name: "cursors-select-word", Help: "Select word under cursor", Do: actCursorsSelectWord},
		{Name: "cursors-new-lines-above", Help: "Create a new cursor on the line above", Do: actCursorsNew, Arg: Arg{I: -1}},
		{Name: "cursors-new-lines-below", Help: "Create a new cursor on the line below", Do: actCursorsNew, Arg: Arg{I: +1}},
		{Name: "cursors-new-lines-begin", Help: "Create a new cursor at the start of every line covered by selection", Do: actOperator, Arg: Arg{I: opCursorSOL}},
		{Name: "cursors-new-lines-end", Help: "Create a new cursor at the end of every line covered by selection", Do: actOperator, Arg: Arg{I: opCursorEOL}},
		{Name: "cursors-new-match-next", Help: "Select the next region matching the current selection", Do: actCursorsSelectNext},
		{Name: "cursors-new-match-skip", Help: "Clear current selection, but select next match", Do: actCursorsSelectSkip},
		{Name: "cursors-align", Help: "Try to align all cursors on the same column", Do: actCursorsAlign},
		{Name: "cursors-remove-all", Help: "Remove all but the primary cursor", Do: actCursorsClear},
		{Name: "cursors-remove-last", Help: "Remove the primary cursor", Do: actCursorsRemove},

		{Name: "text-object-word-outer", Help: "A word leading and trailing whitespace included", Do: actTextObj, Arg: Arg{I: int(object.OuterWord)}},
		{Name: "text-object-word-inner", Help: "A word leading and trailing whitespace excluded", Do: actTextObj, Arg: Arg{I: int(object.InnerWord)}},
		{Name: "text-object-longword-outer", Help: "A WORD leading and trailing whitespace included", Do: actTextObj, Arg: Arg{I: int(object.OuterLongword)}},
		{Name: "text-object-longword-inner", Help: "A WORD leading and trailing whitespace excluded", Do: actTextObj, Arg: Arg{I: int(object.InnerLongword)}},
		{Name: "text-object-sentence", Help: "A sentence", Do: actTextObj, Arg: Arg{I: int(object.Sentence)}},
		{Name: "text-object-paragraph", Help: "A paragraph", Do: actTextObj, Arg: Arg{I: int(object.Paragraph)}},
		{Name: "text-object-square-bracket-outer", Help: "[] block (outer variant)", Do: actTextObj, Arg: Arg{I: int(object.OuterSquareBracket)}},
		{Name: "text-object-square-bracket-inner", Help: "[] block (inner variant)", Do: actTextObj, Arg: Arg{I: int(object.InnerSquareBracket)}},
		{Name: "text-object-parentheses-outer", Help: "() block (outer variant)", Do: actTextObj, Arg: Arg{I: int(object.OuterParen)}},
		{Name: "text-object-parentheses-inner", Help: "() block (inner variant)", Do: actTextObj, Arg: Arg{I: int(object.InnerParen)}},
		{Name: "text-object-angle-bracket-outer", Help: "<> block (outer variant)", Do: actTextObj, Arg: Arg{I: int(object.OuterAngleBracket)}},
		{Name: "text-object-angle-bracket-inner", Help: "<> block (inner variant)", Do: actTextObj, Arg: Arg{I: int(object.InnerAngleBracket)}},
		{Name: "text-object-curly-bracket-outer", Help: "{} block (outer variant)", Do: actTextObj, Arg: Arg{I: int(object.OuterCurlyBracket)}},
		{Name: "text-object-curly-bracket-inner", Help: "{} block (inner variant)", Do: actTextObj, Arg: Arg{I: int(object.InnerCurlyBracket)}},
		{Name: "text-object-quote-outer", Help: "A quoted string, including the quotation marks", Do: actTextObj, Arg: Arg{I: int(object.OuterQuote)}},
		{Name: "text-object-quote-inner", Help: "A quoted string, excluding the quotation marks", Do: actTextObj, Arg: Arg{I: int(object.InnerQuote)}},
		{Name: "text-object-single-quote-outer", Help: "A single quoted string, including the quotation marks", Do: actTextObj, Arg: Arg{I: int(object.OuterSingleQuote)}},
		{Name: "text-object-single-quote-inner", Help: "A single quoted string, excluding the quotation marks", Do: actTextObj, Arg: Arg{I: int(object.InnerSingleQuote)}},
		{Name: "text-object-backtick-outer", Help: "A backtick delimited string (outer variant)", Do: actTextObj, Arg: Arg{I: int(object.OuterBacktick)}},
		{Name: "text-object-backtick-inner", Help: "A backtick delimited string (inner variant)", Do: actTextObj, Arg: Arg{I: int(object.InnerBacktick)}},
		{Name: "text-object-entire-outer", Help: "The whole text content", Do: actTextObj, Arg: Arg{I: int(object.OuterEntire)}},
		{Name: "text-object-entire-inner", Help: "The whole text content, except for leading and trailing empty lines", Do: actTextObj, Arg: Arg{I: int(object.InnerEntire)}},
		{Name: "text-object-function-outer", Help: "A whole C-like function", Do: actTextObj, Arg: Arg{I: int(object.OuterFunction)}},
		{Name: "text-object-function-inner", Help: "A whole C-like function body", Do: actTextObj, Arg: Arg{I: int(object.InnerFunction)}},
		{Name: "text-object-line-outer", Help: "The whole line", Do: actTextObj, Arg: Arg{I: int(object.OuterLine)}},
		{Name: "text-object-line-inner", Help: "The whole line, excluding leading and trailing whitespace", Do: actTextObj, Arg: Arg{I: int(object.InnerLine)}},

		{Name: "motion-charwise", Help: "Force motion to be charwise", Do: actMotionType, Arg: Arg{I: int(motion.Charwise)}},
		{Name: "motion-linewise", Help: "Force motion to be linewise", Do: actMotionType, Arg: Arg{I: int(motion.Linewise)}},
	}
	for _, a := range acts {
		ed.Register(a)
	}
	// Digit actions share the count handler.
	for d := 1; d <= 9; d++ {
		digit := d
		ed.Register(&Action{
			Name: "vis-count-" + string(rune('0'+digit)),
			Help: "Count specifier",
			Do:   actCount,
			Arg:  Arg{I: digit},
		})
	}
}

// actSearchWord compiles the word under the cursor and searches for it.
func actSearchWord(ed *Editor, keys string, arg *Arg) (string, bool) {
	ed.searchWord(arg.I > 0)
	return keys, true
}

// actWindowLine moves to the top, middle, or bottom line of the window.
func actWindowLine(ed *Editor, keys string, arg *Arg) (string, bool) {
	v := ed.view
	fn := func(int) int {
		switch {
		case arg.I < 0:
			n := ed.CountGet()
			if n < 1 {
				n = 1
			}
			return v.ScreenLineGoto(n)
		case arg.I > 0:
			n := ed.CountGet()
			if n < 1 {
				n = 1
			}
			return v.ScreenLineGoto(v.Height() - n + 1)
		default:
			return v.ScreenLineGoto(v.Height() / 2)
		}
	}
	ed.MotionCustom(fn, motion.Linewise|motion.Jump|motion.Idempotent)
	return keys, true
}

// actJumplist navigates the jump list.
func actJumplist(ed *Editor, keys string, arg *Arg) (string, bool) {
	fn := func(pos int) int {
		if arg.I < 0 {
			return ed.jumps.prev(ed.txt, pos)
		}
		return ed.jumps.next(ed.txt, pos)
	}
	ed.action.noJumpTrack = true
	ed.MotionCustom(fn, motion.Inclusive|motion.Idempotent)
	return keys, true
}

// actChangelist navigates the change list.
func actChangelist(ed *Editor, keys string, arg *Arg) (string, bool) {
	fn := func(pos int) int {
		if arg.I < 0 {
			return ed.changes.prev(ed, pos)
		}
		return ed.changes.next(ed, pos)
	}
	ed.action.noJumpTrack = true
	ed.MotionCustom(fn, motion.Inclusive|motion.Idempotent)
	return keys, true
}
