// Package mode implements the editor modes and their key-binding tries.
// Each mode inherits from a chain of parent modes searched first-hit, which
// models the mode DAG: NORMAL sees the operator keys, which see the
// motions, which see the basic arrow keys.
package mode

import (
	"fmt"

	"github.com/vixedit/vix/internal/key"
)

// ID enumerates the built-in modes.
type ID int

const (
	Basic ID = iota
	Move
	TextObjects
	OperatorOption
	Operator
	Normal
	Visual
	VisualLine
	Readline
	Prompt
	Insert
	Replace
	lastID
)

// Count is the number of built-in modes.
const Count = int(lastID)

// names index mode display names by id.
var names = [...]string{
	Basic:          "BASIC",
	Move:           "MOVE",
	TextObjects:    "TEXT-OBJECTS",
	OperatorOption: "OPERATOR-OPTION",
	Operator:       "OPERATOR",
	Normal:         "NORMAL",
	Visual:         "VISUAL",
	VisualLine:     "VISUAL LINE",
	Readline:       "READLINE",
	Prompt:         "PROMPT",
	Insert:         "INSERT",
	Replace:        "REPLACE",
}

// FromName resolves a mode name (case-sensitive, as used in config files).
func FromName(name string) (ID, bool) {
	for id, n := range names {
		if n == name {
			return ID(id), true
		}
	}
	return 0, false
}

func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return fmt.Sprintf("Mode(%d)", int(id))
}

// Binding maps a key sequence to either a named action or an alias
// expansion that is fed back into the input stream.
type Binding struct {
	Keys   string
	Action string
	Alias  string
}

// Mode is one state of the key interpreter.
type Mode struct {
	ID     ID
	Name   string
	Status string

	// Parent is the next mode searched when a key sequence has no
	// binding here. The operator mode's parent is rebound while an
	// operator is pending.
	Parent *Mode

	// Visual marks the visual modes; IsUser marks modes the user can
	// rest in (they become mode_prev on transitions).
	Visual bool
	IsUser bool

	// Hooks. Enter/Leave run on transitions; Input handles key data no
	// binding consumed. Idle runs when the input goes quiet.
	Enter func(prev *Mode)
	Leave func(next *Mode)
	Input func(keys string)
	Idle  func()

	bindings *trieNode
}

// New creates a mode with an empty binding table.
func New(id ID) *Mode {
	return &Mode{ID: id, Name: names[id], bindings: newTrie()}
}

// Map installs a binding, replacing any previous mapping of the same keys.
func (m *Mode) Map(b Binding) error {
	toks := key.Tokens(b.Keys)
	if len(toks) == 0 {
		return fmt.Errorf("empty key sequence")
	}
	if b.Action == "" && b.Alias == "" {
		return fmt.Errorf("binding %q: no action or alias", b.Keys)
	}
	m.bindings.insert(toks, &b)
	return nil
}

// Unmap removes the binding for the exact key sequence.
func (m *Mode) Unmap(keys string) bool {
	return m.bindings.remove(key.Tokens(keys))
}

// Bindings returns all bindings of this mode, without inherited ones.
func (m *Mode) Bindings() []Binding {
	var out []Binding
	m.bindings.walk(func(b *Binding) {
		out = append(out, *b)
	})
	return out
}

// Lookup resolves a token sequence through this mode and its parents.
// Returns the matched binding, or prefix=true when the sequence is a proper
// prefix of some binding and more input should be awaited. The first mode
// in the chain that matches or reports a prefix wins. A literal "<" never
// counts as a prefix so the symbol syntax stays unambiguous.
func (m *Mode) Lookup(toks []string) (binding *Binding, prefix bool) {
	for mode := m; mode != nil; mode = mode.Parent {
		b, isPrefix := mode.bindings.lookup(toks)
		if b != nil {
			return b, false
		}
		if isPrefix && !(len(toks) == 1 && toks[0] == "<") {
			return nil, true
		}
	}
	return nil, false
}

// trieNode is one node of a binding trie keyed by canonical key symbols.
type trieNode struct {
	children map[string]*trieNode
	binding  *Binding
}

func newTrie() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

func (n *trieNode) insert(toks []string, b *Binding) {
	cur := n
	for _, tok := range toks {
		next, ok := cur.children[tok]
		if !ok {
			next = newTrie()
			cur.children[tok] = next
		}
		cur = next
	}
	cur.binding = b
}

func (n *trieNode) remove(toks []string) bool {
	cur := n
	for _, tok := range toks {
		next, ok := cur.children[tok]
		if !ok {
			return false
		}
		cur = next
	}
	if cur.binding == nil {
		return false
	}
	cur.binding = nil
	return true
}

// lookup follows toks down the trie. Returns the binding on an exact match,
// or prefix=true when the path exists but ends before a binding.
func (n *trieNode) lookup(toks []string) (*Binding, bool) {
	cur := n
	for _, tok := range toks {
		next, ok := cur.children[tok]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur.binding != nil {
		return cur.binding, false
	}
	return nil, len(cur.children) > 0
}

func (n *trieNode) walk(f func(*Binding)) {
	if n.binding != nil {
		f(n.binding)
	}
	for _, child := range n.children {
		child.walk(f)
	}
}
