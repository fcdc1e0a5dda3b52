package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyEventSymbol(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"utf8 rune", tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone), "ß"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Escape>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<Enter>"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl), "<C-n>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<M-x>"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "<Up>"},
		{"pageup", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), "<PageUp>"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<Backspace>"},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "<F5>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyEventSymbol(tt.ev); got != tt.want {
				t.Errorf("KeyEventSymbol = %q, want %q", got, tt.want)
			}
		})
	}
}
