package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vixedit/vix/internal/editor"
	"github.com/vixedit/vix/internal/register"
	"github.com/vixedit/vix/internal/text"
)

type nullUI struct{}

func (nullUI) Width() int              { return 80 }
func (nullUI) Height() int             { return 24 }
func (nullUI) Draw()                   {}
func (nullUI) ShowInfo(string)         {}
func (nullUI) HideInfo()               {}
func (nullUI) PromptShow(_, _ string)  {}
func (nullUI) PromptHide()             {}
func (nullUI) Suspend()                {}

func newEditor(content string) *editor.Editor {
	return editor.New(nullUI{}, text.New(content))
}

func TestApplyKeymap(t *testing.T) {
	ed := newEditor("hello world")
	doc := `{
		"modes": {
			"NORMAL": [
				{"keys": "Q", "alias": "dw"}
			]
		}
	}`
	warnings, err := ApplyKeymap(ed, doc)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	ed.Input("Q")
	assert.Equal(t, "world", ed.Text().String())
}

func TestApplyKeymapOptions(t *testing.T) {
	ed := newEditor("line")
	doc := `{"options": {"tabwidth": 4, "expandtab": true}}`
	_, err := ApplyKeymap(ed, doc)
	require.NoError(t, err)

	ed.Input(">>")
	assert.Equal(t, "    line", ed.Text().String())
}

func TestApplyKeymapWarnings(t *testing.T) {
	ed := newEditor("")
	doc := `{
		"modes": {
			"BOGUS": [{"keys": "x", "action": "nop"}],
			"NORMAL": [
				{"keys": "x", "action": "no-such-action"},
				{"keys": "", "action": "nop"}
			]
		}
	}`
	warnings, err := ApplyKeymap(ed, doc)
	require.NoError(t, err)
	assert.Len(t, warnings, 3)
}

func TestApplyKeymapInvalidJSON(t *testing.T) {
	_, err := ApplyKeymap(newEditor(""), "{not json")
	assert.Error(t, err)
}

func TestMacroPersistenceRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "macros.json")

	store := register.NewStore()
	store.SetString('a', "dw", register.Charwise)
	store.SetString('b', "ciwfoo<Escape>", register.Charwise)
	require.NoError(t, SaveMacros(store, path))

	loaded := register.NewStore()
	require.NoError(t, LoadMacros(loaded, path))

	a, ok := loaded.String('a')
	require.True(t, ok)
	assert.Equal(t, "dw", a)
	b, ok := loaded.String('b')
	require.True(t, ok)
	assert.Equal(t, "ciwfoo<Escape>", b)
}

func TestLoadMacrosMissingFile(t *testing.T) {
	err := LoadMacros(register.NewStore(), filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}
