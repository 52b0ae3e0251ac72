package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/mission/internal/config"
)

// keyMap holds the bindings built from the user's key mappings.
// Arrow keys always work alongside the configured navigation keys.
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	Pickup     key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	Dismiss    key.Binding
	ViewItem   key.Binding
	ResetBoard key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "previous column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevItem:   key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem+"/↑", "previous item")),
		NextItem:   key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem+"/↓", "next item")),
		Pickup:     key.NewBinding(key.WithKeys(km.Pickup), key.WithHelp(km.Pickup, "pick up item")),
		Drop:       key.NewBinding(key.WithKeys(km.Drop, km.Pickup), key.WithHelp(km.Pickup+"/"+km.Drop, "drop item")),
		Cancel:     key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel drag")),
		Dismiss:    key.NewBinding(key.WithKeys(km.Dismiss), key.WithHelp(km.Dismiss, "dismiss notification")),
		ViewItem:   key.NewBinding(key.WithKeys(km.ViewItem), key.WithHelp(km.ViewItem, "item details")),
		ResetBoard: key.NewBinding(key.WithKeys(km.ResetBoard), key.WithHelp(km.ResetBoard, "reset board")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// helpSections groups bindings for the help screen
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{"NAVIGATION", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevItem, k.NextItem}},
		{"DRAG", []key.Binding{k.Pickup, k.Drop, k.Cancel}},
		{"OTHER", []key.Binding{k.ViewItem, k.Dismiss, k.ResetBoard, k.Help, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
