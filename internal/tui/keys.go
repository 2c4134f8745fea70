package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/quoteboard/internal/config"
)

// keyMap holds the board's bindings, built from the configured mappings
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevCard   key.Binding
	NextCard   key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	JumpToPage key.Binding
	Refresh    key.Binding
	PickUp     key.Binding
	Drop       key.Binding
	CancelDrag key.Binding
	ShowHelp   key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn, "prev column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn, "next column")),
		PrevCard:   key.NewBinding(key.WithKeys(km.PrevCard, "up"), key.WithHelp(km.PrevCard, "prev card")),
		NextCard:   key.NewBinding(key.WithKeys(km.NextCard, "down"), key.WithHelp(km.NextCard, "next card")),
		PrevPage:   key.NewBinding(key.WithKeys(km.PrevPage), key.WithHelp(km.PrevPage, "prev page")),
		NextPage:   key.NewBinding(key.WithKeys(km.NextPage), key.WithHelp(km.NextPage, "next page")),
		JumpToPage: key.NewBinding(key.WithKeys(km.JumpToPage), key.WithHelp(km.JumpToPage, "jump to page")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		PickUp:     key.NewBinding(key.WithKeys(km.PickUp), key.WithHelp(km.PickUp, "pick up")),
		Drop:       key.NewBinding(key.WithKeys(km.Drop), key.WithHelp(km.Drop, "drop")),
		CancelDrag: key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel")),
		ShowHelp:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.PickUp, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard},
		{k.PrevPage, k.NextPage, k.JumpToPage, k.Refresh},
		{k.PickUp, k.Drop, k.CancelDrag},
		{k.ShowHelp, k.Quit},
	}
}

// dragHelp is the short help shown while a card is held
func (k keyMap) dragHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.Drop, k.CancelDrag}
}
