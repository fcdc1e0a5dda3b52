package editor

import (
	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
)

// promptState is the single-line buffer behind the ':' and search prompts.
type promptState struct {
	leader string
	line   string
}

// PromptShow opens the prompt with the given leading string and preset
// content. The caller switches to prompt mode separately.
func (ed *Editor) PromptShow(leader, preset string) {
	ed.prompt.leader = leader
	ed.prompt.line = preset
	ed.ui.PromptShow(leader, preset)
}

// PromptGet returns the current prompt content.
func (ed *Editor) PromptGet() string {
	return ed.prompt.line
}

// PromptSet replaces the prompt content.
func (ed *Editor) PromptSet(line string) {
	ed.prompt.line = line
	ed.ui.PromptShow(ed.prompt.leader, line)
}

// PromptBackspace deletes the last prompt character; on an empty prompt it
// aborts back to the saved mode.
func (ed *Editor) PromptBackspace() {
	if ed.prompt.line == "" {
		ed.setMode(ed.modeBeforePrompt)
		return
	}
	line := ed.prompt.line
	// Trim one UTF-8 character.
	i := len(line) - 1
	for i > 0 && line[i]&0xC0 == 0x80 {
		i--
	}
	ed.PromptSet(line[:i])
}

// promptDeleteWord removes the trailing word of the prompt line.
func (ed *Editor) promptDeleteWord() {
	line := ed.prompt.line
	i := len(line)
	for i > 0 && (line[i-1] == ' ' || line[i-1] == '\t') {
		i--
	}
	for i > 0 && line[i-1] != ' ' && line[i-1] != '\t' {
		i--
	}
	ed.PromptSet(line[:i])
}

// PromptEnter submits the prompt: the saved mode is restored first so
// command execution sees the editor it was invoked from, then the line
// runs as a search or a ':' command.
func (ed *Editor) PromptEnter() {
	line := ed.prompt.line
	leader := ed.prompt.leader
	ed.setMode(ed.modeBeforePrompt)
	ok := true
	if line != "" {
		ok = ed.promptExec(leader, line)
	}
	if ok && ed.running {
		ed.ModeSwitch(mode.Normal)
	}
	ed.prompt.line = ""
	ed.ui.Draw()
}

// promptExec routes a submitted line by its leader.
func (ed *Editor) promptExec(leader, line string) bool {
	switch leader {
	case "/":
		return ed.Motion(motionSearchForward, line)
	case "?":
		return ed.Motion(motionSearchBackward, line)
	default:
		ed.registers.SetString(register.Command, line, register.Charwise)
		if ed.cmds == nil {
			ed.Info("no command parser")
			return false
		}
		return ed.cmds.Run(ed, line)
	}
}
