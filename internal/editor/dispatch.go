package editor

import (
	"strings"

	"github.com/vixedit/vix/internal/key"
)

// Input feeds one key symbol (or a burst of them) from the host into the
// dispatcher. Keys are recorded into a running macro before interpretation
// so replay is byte-identical to typing.
func (ed *Editor) Input(keys string) {
	if ed.recorder.Recording() {
		ed.recorder.Append(keys)
	}
	ed.Keys(keys)
}

// Keys appends input to the buffered stream and interprets as much of it as
// possible. Incomplete bindings and actions awaiting more input stay
// buffered.
func (ed *Editor) Keys(input string) {
	ed.queue = ed.dispatch(ed.queue + input)
}

// dispatch interprets buf and returns the unconsumed pending tail. Macro
// replay hands back its recorded keys prepended to the tail, so they are
// interpreted here as if typed.
func (ed *Editor) dispatch(buf string) string {
	for buf != "" {
		tok, rest := key.Next(buf)
		consumed := len(buf) - len(rest)

		// A bracketed action name takes precedence over any binding of
		// the literal "<".
		named := false
		if tok == "<" {
			if end := strings.IndexByte(buf, '>'); end > 1 {
				named = ed.actions[buf[1:end]] != nil
			}
		}

		// Grow the prefix until a binding matches or fails.
		prefixEnd := consumed
		var binding *bindingMatch
		toks := []string{tok}
		for !named {
			b, isPrefix := ed.curMode.Lookup(toks)
			if b != nil {
				binding = &bindingMatch{action: b.Action, alias: b.Alias}
				break
			}
			if !isPrefix {
				break
			}
			if prefixEnd >= len(buf) {
				// Proper prefix of a binding: wait for more input.
				return buf
			}
			next, r := key.Next(buf[prefixEnd:])
			toks = append(toks, next)
			prefixEnd = len(buf) - len(r)
		}

		if binding != nil {
			if binding.alias != "" {
				buf = binding.alias + buf[prefixEnd:]
				continue
			}
			action := ed.actions[binding.action]
			if action == nil {
				buf = buf[prefixEnd:]
				continue
			}
			rest, ok := action.Do(ed, buf[prefixEnd:], &action.Arg)
			if !ok {
				// The action needs more input; keep the whole
				// command buffered.
				return buf
			}
			buf = rest
			continue
		}

		// No binding. A bracketed action name invokes the action table
		// directly, the config-addressable escape hatch.
		if tok == "<" {
			if end := strings.IndexByte(buf, '>'); end > 1 {
				name := buf[1:end]
				if action := ed.actions[name]; action != nil {
					rest, ok := action.Do(ed, buf[end+1:], &action.Arg)
					if !ok {
						return buf
					}
					buf = rest
					continue
				}
			}
		}

		// Unmapped input goes to the mode's fallback handler. A failed
		// multi-key prefix is consumed as a whole.
		if prefixEnd < consumed {
			prefixEnd = consumed
		}
		var raw strings.Builder
		for _, t := range toks {
			raw.WriteString(rawKey(t))
		}
		if ed.curMode.Input != nil {
			ed.curMode.Input(raw.String())
		} else {
			ed.invalidInput(buf[:prefixEnd])
		}
		buf = buf[prefixEnd:]
	}
	return ""
}

type bindingMatch struct {
	action string
	alias  string
}

// rawKey converts a canonical symbol back to the bytes the fallback
// handlers insert.
func rawKey(sym string) string {
	switch sym {
	case "<Enter>":
		return "\n"
	case "<Tab>":
		return "\t"
	case "<Space>":
		return " "
	}
	if key.IsSpecial(sym) {
		return ""
	}
	return sym
}

// invalidInput handles key data no mode consumed. In normal and visual
// modes the input is dropped silently; the pending command is discarded.
func (ed *Editor) invalidInput(keys string) {
	ed.action.reset()
}
