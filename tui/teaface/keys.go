package teaface

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srlehn/oledface/face"
)

const (
	keySlots   = `1234567890abcdefgh`
	helpColumn = 6
)

var _ help.KeyMap = keyMap{}

// keyMap binds one key per expression slot plus the model's own commands.
type keyMap struct {
	Play  []key.Binding
	exprs []face.Expression
	Reset key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Reset: key.NewBinding(
			key.WithKeys(`R`),
			key.WithHelp(`R`, `reset upset`),
		),
		Quit: key.NewBinding(
			key.WithKeys(`q`, `esc`, `ctrl+c`),
			key.WithHelp(`q`, `quit`),
		),
	}
	for i, expr := range face.Expressions() {
		if i >= len(keySlots) {
			break
		}
		slot := string(keySlots[i])
		k.Play = append(k.Play, key.NewBinding(
			key.WithKeys(slot),
			key.WithHelp(slot, expr.String()),
		))
		k.exprs = append(k.exprs, expr)
	}
	return k
}

// expression returns the expression bound to msg.
func (k keyMap) expression(msg tea.KeyMsg) (face.Expression, bool) {
	for i, b := range k.Play {
		if key.Matches(msg, b) {
			return k.exprs[i], true
		}
	}
	return ``, false
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Reset, k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for i := 0; i < len(k.Play); i += helpColumn {
		groups = append(groups, k.Play[i:min(i+helpColumn, len(k.Play))])
	}
	return append(groups, k.ShortHelp())
}
