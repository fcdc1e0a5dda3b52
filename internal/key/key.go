package key

import (
	"strings"
	"unicode/utf8"
)

// Key symbols are the unit of the input stream. A symbol is either a single
// UTF-8 rune ("a", "ß") or a bracketed name ("<Enter>", "<C-w>", "<F5>").
// All dispatch tries, macros, and config files speak this grammar.

// specialNames maps lowercase symbol names to their canonical spelling.
// Aliases (esc, cr, bs, del) normalize to one form so a binding registered
// as "<Esc>" matches input delivered as "<Escape>".
var specialNames = map[string]string{
	"escape":    "<Escape>",
	"esc":       "<Escape>",
	"enter":     "<Enter>",
	"return":    "<Enter>",
	"cr":        "<Enter>",
	"tab":       "<Tab>",
	"backspace": "<Backspace>",
	"bs":        "<Backspace>",
	"space":     " ",
	"delete":    "<Delete>",
	"del":       "<Delete>",
	"insert":    "<Insert>",
	"home":      "<Home>",
	"end":       "<End>",
	"pageup":    "<PageUp>",
	"pagedown":  "<PageDown>",
	"up":        "<Up>",
	"down":      "<Down>",
	"left":      "<Left>",
	"right":     "<Right>",
	"f1":        "<F1>",
	"f2":        "<F2>",
	"f3":        "<F3>",
	"f4":        "<F4>",
	"f5":        "<F5>",
	"f6":        "<F6>",
	"f7":        "<F7>",
	"f8":        "<F8>",
	"f9":        "<F9>",
	"f10":       "<F10>",
	"f11":       "<F11>",
	"f12":       "<F12>",
}

// Ctrl returns the symbol for Ctrl plus a rune, e.g. Ctrl('w') == "<C-w>".
func Ctrl(r rune) string {
	return "<C-" + string(r) + ">"
}

// canonModifier normalizes a "C-x" style body, lowercasing the modifier
// prefix letters but preserving the key part.
func canonModifier(body string) (string, bool) {
	mods := ""
	rest := body
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C', 'c':
			mods += "C-"
		case 'M', 'm', 'A', 'a':
			mods += "M-"
		case 'S', 's':
			mods += "S-"
		default:
			return "", false
		}
		rest = rest[2:]
	}
	if mods == "" || rest == "" {
		return "", false
	}
	// The key part is a rune or a special name.
	if canon, ok := specialNames[strings.ToLower(rest)]; ok {
		if len(canon) > 1 {
			return "<" + mods + canon[1:], true
		}
		return "<" + mods + canon + ">", true
	}
	if utf8.RuneCountInString(rest) == 1 {
		return "<" + mods + rest + ">", true
	}
	return "", false
}

// Canon returns the canonical form of a bracketed symbol body (without the
// angle brackets), or "" if the body names no known symbol.
func canon(body string) string {
	if canon, ok := specialNames[strings.ToLower(body)]; ok {
		return canon
	}
	if s, ok := canonModifier(body); ok {
		return s
	}
	return ""
}

// Next splits the leading key symbol off keys and returns it in canonical
// form together with the remaining input. An empty input yields ("", "").
// Invalid UTF-8 consumes a single byte so the stream always makes progress.
func Next(keys string) (string, string) {
	if keys == "" {
		return "", ""
	}
	if keys[0] == '<' {
		if end := strings.IndexByte(keys, '>'); end > 1 {
			if sym := canon(keys[1:end]); sym != "" {
				return sym, keys[end+1:]
			}
		}
		// Literal '<'.
		return "<", keys[1:]
	}
	r, size := utf8.DecodeRuneInString(keys)
	if r == utf8.RuneError && size <= 1 {
		return keys[:1], keys[1:]
	}
	return keys[:size], keys[size:]
}

// Tokens splits keys into its sequence of canonical symbols.
func Tokens(keys string) []string {
	var toks []string
	for keys != "" {
		var tok string
		tok, keys = Next(keys)
		toks = append(toks, tok)
	}
	return toks
}

// IsSpecial reports whether the symbol is a bracketed name rather than a
// plain rune.
func IsSpecial(sym string) bool {
	return len(sym) > 1 && sym[0] == '<'
}

// Rune returns the rune of a plain symbol, or utf8.RuneError for special
// symbols.
func Rune(sym string) rune {
	if IsSpecial(sym) || sym == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(sym)
	return r
}

// Valid reports whether every token in keys parses to a known symbol. Used
// to validate config-supplied binding strings.
func Valid(keys string) bool {
	for keys != "" {
		var tok string
		tok, keys = Next(keys)
		if tok == "" {
			return false
		}
		if r, size := utf8.DecodeRuneInString(tok); r == utf8.RuneError && size <= 1 && !IsSpecial(tok) {
			return false
		}
	}
	return true
}
