// Package config loads user configuration: a JSON keymap overriding the
// compiled-in bindings, and persisted macro registers so recordings survive
// restarts.
//
// Keymap format:
//
//	{
//	  "options": {"tabwidth": 4, "expandtab": true},
//	  "modes": {
//	    "NORMAL": [
//	      {"keys": "Q", "action": "macro-replay"},
//	      {"keys": "Y", "alias": "y$"}
//	    ]
//	  }
//	}
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vixedit/vix/internal/editor"
	"github.com/vixedit/vix/internal/key"
	"github.com/vixedit/vix/internal/mode"
	"github.com/vixedit/vix/internal/register"
)

// LoadKeymap applies the keymap file at path to the editor. Unknown modes,
// unknown action names, and unparsable key sequences are collected as
// warnings rather than failing the whole load.
func LoadKeymap(ed *editor.Editor, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ApplyKeymap(ed, string(data))
}

// ApplyKeymap applies keymap JSON to the editor and returns warnings.
func ApplyKeymap(ed *editor.Editor, doc string) ([]string, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("invalid keymap JSON")
	}
	var warnings []string

	if opts := gjson.Get(doc, "options"); opts.Exists() {
		width := int(opts.Get("tabwidth").Int())
		expand := opts.Get("expandtab").Bool()
		if width == 0 {
			width = 8
		}
		ed.SetTabOptions(width, expand)
	}

	gjson.Get(doc, "modes").ForEach(func(modeName, bindings gjson.Result) bool {
		id, ok := mode.FromName(modeName.String())
		if !ok {
			warnings = append(warnings, "unknown mode: "+modeName.String())
			return true
		}
		bindings.ForEach(func(_, b gjson.Result) bool {
			keys := b.Get("keys").String()
			action := b.Get("action").String()
			alias := b.Get("alias").String()
			switch {
			case keys == "" || !key.Valid(keys):
				warnings = append(warnings, "bad key sequence: "+keys)
			case action != "" && ed.LookupAction(action) == nil:
				warnings = append(warnings, "unknown action: "+action)
			default:
				if err := ed.Bind(id, mode.Binding{Keys: keys, Action: action, Alias: alias}); err != nil {
					warnings = append(warnings, err.Error())
				}
			}
			return true
		})
		return true
	})
	return warnings, nil
}

// SaveMacros writes the named registers holding recorded macros to path as
// JSON.
func SaveMacros(store *register.Store, path string) error {
	doc := "{}"
	for _, id := range store.Names() {
		if id < 'a' || id > 'z' {
			continue
		}
		content, ok := store.String(id)
		if !ok || content == "" {
			continue
		}
		var err error
		doc, err = sjson.Set(doc, "macros."+string(id), content)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

// LoadMacros restores macro registers saved with SaveMacros.
func LoadMacros(store *register.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc := string(data)
	if !gjson.Valid(doc) {
		return fmt.Errorf("invalid macro JSON")
	}
	gjson.Get(doc, "macros").ForEach(func(name, content gjson.Result) bool {
		id := []rune(name.String())
		if len(id) == 1 && id[0] >= 'a' && id[0] <= 'z' {
			store.SetString(id[0], content.String(), register.Charwise)
		}
		return true
	})
	return nil
}
