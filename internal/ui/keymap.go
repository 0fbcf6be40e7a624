package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SplitRow    key.Binding
	SplitColumn key.Binding
	Open        key.Binding
	ClosePane   key.Binding

	FocusLeft  key.Binding
	FocusDown  key.Binding
	FocusUp    key.Binding
	FocusRight key.Binding

	SwapLeft  key.Binding
	SwapDown  key.Binding
	SwapUp    key.Binding
	SwapRight key.Binding

	NextPane key.Binding
	PrevPane key.Binding

	Transpose key.Binding

	NewTab   key.Binding
	CloseTab key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		SplitRow:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split row")),
		SplitColumn: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "split column")),
		Open:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open pane")),
		ClosePane:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close pane")),

		FocusLeft:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "focus left")),
		FocusDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "focus down")),
		FocusUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "focus up")),
		FocusRight: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "focus right")),

		SwapLeft:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "swap left")),
		SwapDown:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "swap down")),
		SwapUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "swap up")),
		SwapRight: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "swap right")),

		NextPane: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev pane")),

		Transpose: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "transpose")),

		NewTab:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "new tab")),
		CloseTab: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "close tab")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitColumn, k.SplitRow, k.ClosePane, k.FocusLeft, k.FocusRight, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitRow, k.SplitColumn, k.Open, k.ClosePane, k.Transpose},
		{k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight, k.NextPane, k.PrevPane},
		{k.SwapLeft, k.SwapDown, k.SwapUp, k.SwapRight},
		{k.NewTab, k.CloseTab, k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
