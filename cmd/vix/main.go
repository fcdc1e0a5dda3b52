// Package main is the entry point for the vix editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/vixedit/vix/internal/config"
	"github.com/vixedit/vix/internal/editor"
	"github.com/vixedit/vix/internal/text"
	"github.com/vixedit/vix/internal/ui"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("v", false, "print version and exit")
	keymapPath := flag.String("keymap", defaultConfigPath("keymap.json"), "keymap config file")
	macroPath := flag.String("macros", defaultConfigPath("macros.json"), "persisted macro registers")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vix %s\n", version)
		return 0
	}

	// Positional arguments: the file to open (only the first file name is
	// used), with optional +cmd / +/pattern to run after loading.
	var filename, startCmd string
	for _, arg := range flag.Args() {
		switch {
		case strings.HasPrefix(arg, "+"):
			startCmd = arg[1:]
		case filename == "":
			filename = arg
		}
	}

	content, err := loadContent(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vix: cannot load %s: %v\n", filename, err)
		return 1
	}

	term, err := ui.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vix: cannot open terminal: %v\n", err)
		return 1
	}
	defer term.Close()

	txt := text.New(content)
	ed := editor.New(term, txt)
	term.SetSource(ed.Frame)
	if filename != "" {
		ed.SetSaveFunc(func(ed *editor.Editor) error {
			return os.WriteFile(filename, []byte(ed.Text().String()), 0o644)
		})
	}

	if warnings, err := config.LoadKeymap(ed, *keymapPath); err == nil {
		for _, w := range warnings {
			ed.Info(w)
		}
	}
	_ = config.LoadMacros(ed.Registers(), *macroPath)
	defer func() {
		_ = config.SaveMacros(ed.Registers(), *macroPath)
	}()

	// Signals post events onto the input loop instead of touching editor
	// state directly.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for range signals {
			term.PostQuit()
		}
	}()

	if startCmd != "" {
		runStartCmd(ed, startCmd)
	}

	term.Draw()
	loop(ed, term)
	return ed.ExitStatus()
}

// loop pulls terminal events and feeds key symbols into the dispatcher.
// All editor mutation happens here, on this single goroutine.
func loop(ed *editor.Editor, term *ui.Terminal) {
	for ed.Running() {
		switch ev := term.PollEvent().(type) {
		case *tcell.EventKey:
			term.HideInfo()
			if sym := ui.KeyEventSymbol(ev); sym != "" {
				ed.Input(sym)
			}
			term.Draw()
		case *tcell.EventResize:
			w, h := ev.Size()
			ed.Resize(w, h-1)
			term.Draw()
		case *tcell.EventInterrupt:
			ed.Idle()
		case nil:
			return
		}
	}
}

// runStartCmd executes a "+..." argument: a search for +/pat or +?pat, a
// ':' command otherwise.
func runStartCmd(ed *editor.Editor, cmd string) {
	if cmd == "" {
		return
	}
	switch cmd[0] {
	case '/', '?':
		ed.PromptShow(string(cmd[0]), "")
		ed.PromptSet(cmd[1:])
	default:
		ed.PromptShow(":", "")
		ed.PromptSet(cmd)
	}
	ed.PromptEnter()
}

// loadContent reads the initial buffer: a file, stdin for "-", or empty.
func loadContent(filename string) (string, error) {
	switch filename {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(filename)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil
			}
			return "", err
		}
		return string(data), nil
	}
}

// defaultConfigPath resolves a config file under the user config dir.
func defaultConfigPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "vix", name)
}
