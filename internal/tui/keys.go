package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// globalKeys are active on every tab.
type globalKeys struct {
	Tabs    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Help    key.Binding
	Quit    key.Binding
	section []key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Tabs: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to tab")),
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k globalKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), k.section...), k.Next, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k globalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.section, {k.Tabs, k.Next, k.Prev, k.Help, k.Quit}}
}

func binding(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// controls renders bindings as a button row; disabled ones are struck through.
func controls(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		label := "[" + h.Key + "] " + h.Desc
		if b.Enabled() {
			parts = append(parts, keyStyle.Render(label))
		} else {
			parts = append(parts, disabledStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
