package editor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// commandSet is the built-in ':'-command implementation covering the
// facilities the core owns: history time travel, quitting, and binding
// introspection. Hosts swap in a richer runner via SetCommandRunner.
type commandSet struct {
	cmds map[string]func(ed *Editor, name string, args []string, force bool) bool
}

func newCommandSet() *commandSet {
	cs := &commandSet{cmds: make(map[string]func(*Editor, string, []string, bool) bool)}
	cs.cmds["quit"] = cmdQuit
	cs.cmds["q"] = cmdQuit
	cs.cmds["earlier"] = cmdEarlierLater
	cs.cmds["later"] = cmdEarlierLater
	cs.cmds["help"] = cmdHelp
	cs.cmds["set"] = cmdSet
	cs.cmds["write"] = cmdWrite
	cs.cmds["w"] = cmdWrite
	cs.cmds["wq"] = cmdWriteQuit
	return cs
}

func cmdWrite(ed *Editor, name string, args []string, force bool) bool {
	if ed.saveFunc == nil {
		ed.Info("No file to write")
		return false
	}
	if err := ed.saveFunc(ed); err != nil {
		ed.Info("Write failed: " + err.Error())
		return false
	}
	ed.txt.Snapshot()
	return true
}

func cmdWriteQuit(ed *Editor, name string, args []string, force bool) bool {
	if !cmdWrite(ed, "write", args, force) {
		return false
	}
	ed.Exit(0)
	return true
}

// Run parses and executes one command line. Commands resolve by unique
// prefix; an unknown name reports an error to the UI.
func (cs *commandSet) Run(ed *Editor, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	fields := strings.Fields(line)
	name := fields[0]
	force := strings.HasSuffix(name, "!")
	name = strings.TrimSuffix(name, "!")

	cmd, resolved := cs.resolve(name)
	if cmd == nil {
		ed.Info("Not an editor command")
		return false
	}
	return cmd(ed, resolved, fields[1:], force)
}

// resolve finds the command with the given unique prefix.
func (cs *commandSet) resolve(name string) (func(*Editor, string, []string, bool) bool, string) {
	if cmd, ok := cs.cmds[name]; ok {
		return cmd, name
	}
	var matches []string
	for candidate := range cs.cmds {
		if strings.HasPrefix(candidate, name) {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 1 {
		return cs.cmds[matches[0]], matches[0]
	}
	return nil, ""
}

func cmdQuit(ed *Editor, name string, args []string, force bool) bool {
	if !force && ed.txt.Modified() {
		ed.Info("No write since last change (add ! to override)")
		return false
	}
	ed.Exit(0)
	return true
}

// cmdEarlierLater implements time travel over the snapshot history: a bare
// count steps that many states, a count with an s/m/h/d unit restores the
// state closest to that much wall-clock time away.
func cmdEarlierLater(ed *Editor, name string, args []string, force bool) bool {
	count := 1
	unit := ""
	if len(args) > 0 {
		numEnd := 0
		for numEnd < len(args[0]) && args[0][numEnd] >= '0' && args[0][numEnd] <= '9' {
			numEnd++
		}
		if numEnd == 0 {
			ed.Info("Invalid number")
			return false
		}
		n, err := strconv.Atoi(args[0][:numEnd])
		if err != nil || n < 0 {
			ed.Info("Invalid number")
			return false
		}
		count = n
		unit = strings.TrimSpace(args[0][numEnd:])
	}

	pos := -1
	if unit != "" {
		var d time.Duration
		switch unit {
		case "s":
			d = time.Duration(count) * time.Second
		case "m":
			d = time.Duration(count) * time.Minute
		case "h":
			d = time.Duration(count) * time.Hour
		case "d":
			d = time.Duration(count) * 24 * time.Hour
		default:
			ed.Info("Unknown time specifier (use: s,m,h or d)")
			return false
		}
		if name == "earlier" {
			d = -d
		}
		pos = ed.txt.Restore(ed.txt.State().Add(d))
	} else if name == "earlier" {
		pos = ed.txt.Earlier(count)
	} else {
		pos = ed.txt.Later(count)
	}

	if pos >= 0 {
		ed.afterHistoryChange(pos)
	}
	ed.Info(fmt.Sprintf("State from %s", ed.txt.State().Format("15:04")))
	return pos >= 0
}

// cmdHelp reports the bindings of every mode.
func cmdHelp(ed *Editor, name string, args []string, force bool) bool {
	var b strings.Builder
	b.WriteString("Modes and bindings:\n")
	for i := 0; i < len(ed.modes); i++ {
		m := ed.modes[i]
		bindings := m.Bindings()
		if len(bindings) == 0 {
			continue
		}
		sort.Slice(bindings, func(x, y int) bool { return bindings[x].Keys < bindings[y].Keys })
		fmt.Fprintf(&b, "\n %s\n", m.Name)
		for _, binding := range bindings {
			target := binding.Action
			if target == "" {
				target = binding.Alias
			}
			fmt.Fprintf(&b, "  %-12s %s\n", binding.Keys, target)
		}
	}
	ed.Info(b.String())
	return true
}

// cmdSet adjusts runtime options.
func cmdSet(ed *Editor, name string, args []string, force bool) bool {
	if len(args) == 0 {
		ed.Info("Expecting: set option [value]")
		return false
	}
	option := args[0]
	value := ""
	if len(args) > 1 {
		value = args[1]
	}
	boolValue := func() bool {
		switch strings.ToLower(value) {
		case "", "1", "true", "yes", "on":
			return true
		}
		return false
	}
	switch option {
	case "expandtab", "et":
		ed.expandtab = boolValue()
	case "noexpandtab", "noet":
		ed.expandtab = false
	case "autoindent", "ai":
		ed.autoindent = boolValue()
	case "noautoindent", "noai":
		ed.autoindent = false
	case "tabwidth", "tw":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 8 {
			ed.Info("Expecting number between 1 and 8")
			return false
		}
		ed.tabwidth = n
	default:
		ed.Info("Unknown option: `" + option + "'")
		return false
	}
	return true
}
