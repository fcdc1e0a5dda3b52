package editor

import (
	"github.com/vixedit/vix/internal/mode"
)

// defaultBindings is the compiled-in keymap: per mode, key sequences bound
// to action names (or aliases, which expand in place). User configuration
// uses the same names.
var defaultBindings = map[mode.ID][]mode.Binding{
	mode.Basic: {
		{Keys: "<Left>", Action: "cursor-char-prev"},
		{Keys: "<Right>", Action: "cursor-char-next"},
		{Keys: "<Up>", Action: "cursor-line-up"},
		{Keys: "<Down>", Action: "cursor-line-down"},
		{Keys: "<Home>", Action: "cursor-line-begin"},
		{Keys: "<End>", Action: "cursor-line-end"},
		{Keys: "<PageUp>", Action: "window-page-up"},
		{Keys: "<PageDown>", Action: "window-page-down"},
		{Keys: "<C-b>", Action: "window-page-up"},
		{Keys: "<C-f>", Action: "window-page-down"},
		{Keys: "<C-u>", Action: "window-halfpage-up"},
		{Keys: "<C-d>", Action: "window-halfpage-down"},
	},
	mode.Move: {
		{Keys: "h", Action: "cursor-line-char-prev"},
		{Keys: "l", Action: "cursor-line-char-next"},
		{Keys: " ", Action: "cursor-char-next"},
		{Keys: "<Backspace>", Action: "cursor-char-prev"},
		{Keys: "j", Action: "cursor-line-down"},
		{Keys: "k", Action: "cursor-line-up"},
		{Keys: "w", Action: "cursor-word-start-next"},
		{Keys: "b", Action: "cursor-word-start-prev"},
		{Keys: "e", Action: "cursor-word-end-next"},
		{Keys: "ge", Action: "cursor-word-end-prev"},
		{Keys: "W", Action: "cursor-longword-start-next"},
		{Keys: "B", Action: "cursor-longword-start-prev"},
		{Keys: "E", Action: "cursor-longword-end-next"},
		{Keys: "gE", Action: "cursor-longword-end-prev"},
		{Keys: "0", Action: "vis-count-zero"},
		{Keys: "^", Action: "cursor-line-start"},
		{Keys: "g_", Action: "cursor-line-finish"},
		{Keys: "$", Action: "cursor-line-end"},
		{Keys: "|", Action: "cursor-column"},
		{Keys: "{", Action: "cursor-paragraph-prev"},
		{Keys: "}", Action: "cursor-paragraph-next"},
		{Keys: "(", Action: "cursor-sentence-prev"},
		{Keys: ")", Action: "cursor-sentence-next"},
		{Keys: "[[", Action: "cursor-function-start-prev"},
		{Keys: "]]", Action: "cursor-function-start-next"},
		{Keys: "[]", Action: "cursor-function-end-prev"},
		{Keys: "][", Action: "cursor-function-end-next"},
		{Keys: "%", Action: "cursor-match-bracket"},
		{Keys: "f", Action: "to-right"},
		{Keys: "F", Action: "to-left"},
		{Keys: "t", Action: "till-right"},
		{Keys: "T", Action: "till-left"},
		{Keys: ";", Action: "totill-repeat"},
		{Keys: ",", Action: "totill-reverse"},
		{Keys: "gg", Action: "cursor-line-first"},
		{Keys: "G", Action: "cursor-line-last"},
		{Keys: "H", Action: "cursor-window-line-top"},
		{Keys: "M", Action: "cursor-window-line-middle"},
		{Keys: "L", Action: "cursor-window-line-bottom"},
		{Keys: "n", Action: "cursor-search-forward"},
		{Keys: "N", Action: "cursor-search-backward"},
		{Keys: "*", Action: "cursor-search-word-forward"},
		{Keys: "#", Action: "cursor-search-word-backward"},
		{Keys: "'", Action: "mark-goto-line"},
		{Keys: "`", Action: "mark-goto"},
		{Keys: "/", Action: "search-forward"},
		{Keys: "?", Action: "search-backward"},
		{Keys: "1", Action: "vis-count-1"},
		{Keys: "2", Action: "vis-count-2"},
		{Keys: "3", Action: "vis-count-3"},
		{Keys: "4", Action: "vis-count-4"},
		{Keys: "5", Action: "vis-count-5"},
		{Keys: "6", Action: "vis-count-6"},
		{Keys: "7", Action: "vis-count-7"},
		{Keys: "8", Action: "vis-count-8"},
		{Keys: "9", Action: "vis-count-9"},
	},
	mode.TextObjects: {
		{Keys: "iw", Action: "text-object-word-inner"},
		{Keys: "aw", Action: "text-object-word-outer"},
		{Keys: "iW", Action: "text-object-longword-inner"},
		{Keys: "aW", Action: "text-object-longword-outer"},
		{Keys: "is", Action: "text-object-sentence"},
		{Keys: "as", Action: "text-object-sentence"},
		{Keys: "ip", Action: "text-object-paragraph"},
		{Keys: "ap", Action: "text-object-paragraph"},
		{Keys: "i[", Action: "text-object-square-bracket-inner"},
		{Keys: "i]", Action: "text-object-square-bracket-inner"},
		{Keys: "a[", Action: "text-object-square-bracket-outer"},
		{Keys: "a]", Action: "text-object-square-bracket-outer"},
		{Keys: "i(", Action: "text-object-parentheses-inner"},
		{Keys: "i)", Action: "text-object-parentheses-inner"},
		{Keys: "ib", Action: "text-object-parentheses-inner"},
		{Keys: "a(", Action: "text-object-parentheses-outer"},
		{Keys: "a)", Action: "text-object-parentheses-outer"},
		{Keys: "ab", Action: "text-object-parentheses-outer"},
		{Keys: "i<", Action: "text-object-angle-bracket-inner"},
		{Keys: "i>", Action: "text-object-angle-bracket-inner"},
		{Keys: "a<", Action: "text-object-angle-bracket-outer"},
		{Keys: "a>", Action: "text-object-angle-bracket-outer"},
		{Keys: "i{", Action: "text-object-curly-bracket-inner"},
		{Keys: "i}", Action: "text-object-curly-bracket-inner"},
		{Keys: "iB", Action: "text-object-curly-bracket-inner"},
		{Keys: "a{", Action: "text-object-curly-bracket-outer"},
		{Keys: "a}", Action: "text-object-curly-bracket-outer"},
		{Keys: "aB", Action: "text-object-curly-bracket-outer"},
		{Keys: "i\"", Action: "text-object-quote-inner"},
		{Keys: "a\"", Action: "text-object-quote-outer"},
		{Keys: "i'", Action: "text-object-single-quote-inner"},
		{Keys: "a'", Action: "text-object-single-quote-outer"},
		{Keys: "i`", Action: "text-object-backtick-inner"},
		{Keys: "a`", Action: "text-object-backtick-outer"},
		{Keys: "ie", Action: "text-object-entire-inner"},
		{Keys: "ae", Action: "text-object-entire-outer"},
		{Keys: "if", Action: "text-object-function-inner"},
		{Keys: "af", Action: "text-object-function-outer"},
		{Keys: "il", Action: "text-object-line-inner"},
		{Keys: "al", Action: "text-object-line-outer"},
	},
	mode.OperatorOption: {
		{Keys: "v", Action: "motion-charwise"},
		{Keys: "V", Action: "motion-linewise"},
	},
	mode.Operator: {
		{Keys: "d", Action: "vis-operator-delete"},
		{Keys: "c", Action: "vis-operator-change"},
		{Keys: "y", Action: "vis-operator-yank"},
		{Keys: ">", Action: "vis-operator-shift-right"},
		{Keys: "<", Action: "vis-operator-shift-left"},
		{Keys: "gu", Action: "vis-operator-case-lower"},
		{Keys: "gU", Action: "vis-operator-case-upper"},
		{Keys: "g~", Action: "vis-operator-case-swap"},
		{Keys: "\"", Action: "register"},
	},
	mode.Normal: {
		{Keys: "<Escape>", Action: "cursors-remove-all"},
		{Keys: "a", Alias: "li"},
		{Keys: "A", Alias: "$a"},
		{Keys: "C", Alias: "c$"},
		{Keys: "D", Alias: "d$"},
		{Keys: "I", Alias: "^i"},
		{Keys: "S", Alias: "^c$"},
		{Keys: "s", Alias: "cl"},
		{Keys: "Y", Alias: "y$"},
		{Keys: "x", Alias: "dl"},
		{Keys: "X", Alias: "dh"},
		{Keys: "i", Action: "vis-mode-insert"},
		{Keys: "p", Action: "put-after"},
		{Keys: "P", Action: "put-before"},
		{Keys: "gp", Action: "put-after-end"},
		{Keys: "gP", Action: "put-before-end"},
		{Keys: "v", Action: "vis-mode-visual-charwise"},
		{Keys: "V", Action: "vis-mode-visual-linewise"},
		{Keys: "R", Action: "vis-mode-replace"},
		{Keys: "o", Action: "open-line-below"},
		{Keys: "O", Action: "open-line-above"},
		{Keys: "J", Action: "join-line-below"},
		{Keys: "u", Action: "editor-undo"},
		{Keys: "<C-r>", Action: "editor-redo"},
		{Keys: "g-", Action: "editor-earlier"},
		{Keys: "g+", Action: "editor-later"},
		{Keys: ".", Action: "editor-repeat"},
		{Keys: "r", Action: "replace-char"},
		{Keys: "m", Action: "mark-set"},
		{Keys: "q", Action: "macro-record"},
		{Keys: "@", Action: "macro-replay"},
		{Keys: ":", Action: "prompt-show"},
		{Keys: "ZZ", Alias: ":wq<Enter>"},
		{Keys: "g;", Action: "changelist-prev"},
		{Keys: "g,", Action: "changelist-next"},
		{Keys: "<C-o>", Action: "jumplist-prev"},
		{Keys: "<C-i>", Action: "jumplist-next"},
		{Keys: "~", Alias: "g~l"},
		{Keys: "<C-n>", Action: "cursors-select-word"},
		{Keys: "<C-k>", Action: "cursors-new-lines-above"},
		{Keys: "<C-j>", Action: "cursors-new-lines-below"},
		{Keys: "<C-p>", Action: "cursors-remove-last"},
		{Keys: "<Delete>", Alias: "x"},
		{Keys: "zt", Action: "window-redraw-top"},
		{Keys: "zz", Action: "window-redraw-center"},
		{Keys: "zb", Action: "window-redraw-bottom"},
		{Keys: "<C-e>", Action: "window-slide-up"},
		{Keys: "<C-y>", Action: "window-slide-down"},
		{Keys: "<C-z>", Action: "editor-suspend"},
		{Keys: "gv", Action: "selection-restore"},
	},
	mode.Visual: {
		{Keys: "<Escape>", Action: "vis-mode-normal"},
		{Keys: "v", Action: "vis-mode-normal"},
		{Keys: "V", Action: "vis-mode-visual-linewise"},
		{Keys: "o", Action: "selection-flip"},
		{Keys: ":", Action: "prompt-show-visual"},
		{Keys: "x", Action: "vis-operator-delete"},
		{Keys: "s", Action: "vis-operator-change"},
		{Keys: "r", Action: "replace-char"},
		{Keys: "J", Action: "join-lines"},
		{Keys: "~", Action: "vis-operator-case-swap"},
		{Keys: "u", Action: "vis-operator-case-lower"},
		{Keys: "U", Action: "vis-operator-case-upper"},
		{Keys: "I", Action: "cursors-new-lines-begin"},
		{Keys: "A", Action: "cursors-new-lines-end"},
		{Keys: "<C-n>", Action: "cursors-new-match-next"},
		{Keys: "<C-x>", Action: "cursors-new-match-skip"},
		{Keys: "<C-p>", Action: "cursors-remove-last"},
		{Keys: "<C-a>", Action: "cursors-align"},
	},
	mode.VisualLine: {
		{Keys: "v", Action: "vis-mode-visual-charwise"},
		{Keys: "V", Action: "vis-mode-normal"},
	},
	mode.Readline: {
		{Keys: "<Enter>", Action: "prompt-enter"},
		{Keys: "<Backspace>", Action: "prompt-backspace"},
		{Keys: "<C-h>", Action: "prompt-backspace"},
		{Keys: "<C-u>", Action: "delete-line-begin"},
		{Keys: "<C-w>", Action: "delete-word-prev"},
	},
	mode.Prompt: {
		{Keys: "<Escape>", Action: "vis-mode-normal"},
		{Keys: "<C-u>", Action: "prompt-clear"},
		{Keys: "<C-w>", Action: "prompt-delete-word"},
	},
	mode.Insert: {
		{Keys: "<Escape>", Action: "vis-mode-normal"},
		{Keys: "<Enter>", Action: "insert-newline"},
		{Keys: "<Tab>", Action: "insert-tab"},
		{Keys: "<C-r>", Action: "insert-register"},
		{Keys: "<C-v>", Action: "insert-verbatim"},
		{Keys: "<C-h>", Action: "delete-char-prev"},
		{Keys: "<Backspace>", Action: "delete-char-prev"},
		{Keys: "<Delete>", Action: "delete-char-next"},
		{Keys: "<C-w>", Action: "delete-word-prev"},
		{Keys: "<C-u>", Action: "delete-line-begin"},
	},
	mode.Replace: {
		{Keys: "<Escape>", Action: "vis-mode-normal"},
	},
}

// bindDefaults installs the compiled-in keymap.
func (ed *Editor) bindDefaults() {
	for id, bindings := range defaultBindings {
		m := ed.modes[id]
		for _, b := range bindings {
			_ = m.Map(b)
		}
	}
}

// Bind installs a binding in the given mode at runtime, the hook user
// configuration uses.
func (ed *Editor) Bind(id mode.ID, b mode.Binding) error {
	return ed.modes[id].Map(b)
}

// Unbind removes a binding.
func (ed *Editor) Unbind(id mode.ID, keys string) bool {
	return ed.modes[id].Unmap(keys)
}
