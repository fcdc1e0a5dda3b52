// Package ui defines the interface the editor core consumes to talk to its
// display, plus the terminal implementation built on tcell. The core never
// renders; it asks the UI for dimensions, posts informational messages, and
// requests redraws.
package ui

// UI is the surface the editor core draws through.
type UI interface {
	// Width and Height report the current view dimensions in cells.
	Width() int
	Height() int

	// Draw schedules a full redraw.
	Draw()

	// ShowInfo surfaces a short message; HideInfo clears it.
	ShowInfo(msg string)
	HideInfo()

	// PromptShow displays the one-line prompt with its leading string
	// and current content; PromptHide removes it.
	PromptShow(leader, content string)
	PromptHide()

	// Suspend hands the terminal back to the shell until resumed.
	Suspend()
}

// Frame is one rendered view state, produced by the editor for the
// terminal backend.
type Frame struct {
	Lines    []string
	Cursors  []FramePos
	Primary  FramePos
	Status   string
	Info     string
	Prompt   string
	ShowPrompt bool
}

// FramePos is a cursor cell in frame coordinates.
type FramePos struct {
	Line int
	Col  int
}
