// Package register implements the named stores shared across the editor:
// byte registers used by yank/put, mark identifiers, and recorded macros.
package register

import (
	"strings"
	"sync"
)

// Kind flags how register content was produced, which decides how a put
// treats line boundaries.
type Kind uint8

const (
	Charwise Kind = iota
	Linewise
)

// Well-known register ids.
const (
	Default = '"'
	Search  = '/'
	Command = ':'
	LastMacro = '@'
)

// Register holds one register's content. Slices retains the per-cursor
// pieces of a multi-cursor yank so a later put with a matching cursor count
// can distribute them.
type Register struct {
	Bytes  []byte
	Kind   Kind
	Slices [][]byte
}

// Store maps register ids to their content. Methods are safe for use from
// the host's event-posting goroutines.
type Store struct {
	mu   sync.Mutex
	regs map[rune]*Register
}

// NewStore creates an empty register store.
func NewStore() *Store {
	return &Store{regs: make(map[rune]*Register)}
}

// Valid reports whether id names a register.
func Valid(id rune) bool {
	switch {
	case id >= 'a' && id <= 'z', id >= 'A' && id <= 'Z':
		return true
	case id == Default, id == Search, id == Command, id == LastMacro:
		return true
	}
	return false
}

// Get returns the register's content, or nil when the id is unset or
// invalid. Uppercase ids read the lowercase register.
func (s *Store) Get(id rune) *Register {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= 'A' && id <= 'Z' {
		id = id - 'A' + 'a'
	}
	reg, ok := s.regs[id]
	if !ok {
		return nil
	}
	return &Register{
		Bytes:  append([]byte(nil), reg.Bytes...),
		Kind:   reg.Kind,
		Slices: reg.Slices,
	}
}

// Set stores content under id. Uppercase ids append to the lowercase
// register, joined with a newline when the existing content is linewise.
func (s *Store) Set(id rune, content []byte, kind Kind) {
	s.SetSlices(id, content, kind, nil)
}

// SetSlices stores content together with its per-cursor pieces.
func (s *Store) SetSlices(id rune, content []byte, kind Kind, slices [][]byte) {
	if !Valid(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	appendMode := false
	if id >= 'A' && id <= 'Z' {
		id = id - 'A' + 'a'
		appendMode = true
	}
	reg, ok := s.regs[id]
	if !ok {
		reg = &Register{}
		s.regs[id] = reg
	}
	if appendMode {
		if reg.Kind == Linewise && len(reg.Bytes) > 0 && reg.Bytes[len(reg.Bytes)-1] != '\n' {
			reg.Bytes = append(reg.Bytes, '\n')
		}
		reg.Bytes = append(reg.Bytes, content...)
		reg.Slices = nil
		return
	}
	reg.Bytes = append([]byte(nil), content...)
	reg.Kind = kind
	reg.Slices = slices
}

// SetString is a convenience for string content.
func (s *Store) SetString(id rune, content string, kind Kind) {
	s.Set(id, []byte(content), kind)
}

// String returns the register content as a string, with ok reporting
// whether the register is set.
func (s *Store) String(id rune) (string, bool) {
	reg := s.Get(id)
	if reg == nil {
		return "", false
	}
	return string(reg.Bytes), true
}

// JoinSlices combines per-cursor yank pieces into one buffer. Charwise
// pieces are joined with a newline; linewise pieces already end in one and
// are concatenated as they are.
func JoinSlices(slices [][]byte, kind Kind) []byte {
	parts := make([]string, len(slices))
	for i, s := range slices {
		parts[i] = string(s)
	}
	if kind == Linewise {
		joined := strings.Join(parts, "")
		return []byte(joined)
	}
	return []byte(strings.Join(parts, "\n"))
}

// Names returns the ids of all set registers.
func (s *Store) Names() []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []rune
	for id := range s.regs {
		ids = append(ids, id)
	}
	return ids
}
