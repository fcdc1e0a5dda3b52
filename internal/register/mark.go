package register

import (
	"sync"

	"github.com/vixedit/vix/internal/text"
)

// Mark ids: the user marks a-z plus the selection-start and selection-end
// marks written by the visual modes.
const (
	MarkSelectionStart = '<'
	MarkSelectionEnd   = '>'
)

// ValidMark reports whether id names a mark.
func ValidMark(id rune) bool {
	return (id >= 'a' && id <= 'z') || id == MarkSelectionStart || id == MarkSelectionEnd
}

// Marks maps mark ids to stable text handles. One instance exists per file.
type Marks struct {
	mu    sync.Mutex
	text  *text.Text
	marks map[rune]text.Mark
}

// NewMarks creates a mark store bound to a text.
func NewMarks(t *text.Text) *Marks {
	return &Marks{text: t, marks: make(map[rune]text.Mark)}
}

// Set places the mark at pos, replacing any previous position.
func (m *Marks) Set(id rune, pos int) {
	if !ValidMark(id) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks[id] = m.text.MarkSet(pos)
}

// Get returns the mark's current position, or text.EPos when the mark is
// unset or its range was deleted.
func (m *Marks) Get(id rune) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	mark, ok := m.marks[id]
	if !ok {
		return text.EPos
	}
	return m.text.MarkGet(mark)
}
