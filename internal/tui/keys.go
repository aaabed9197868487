package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	Search key.Binding
	Clear  key.Binding
	Reset  key.Binding

	NextCategory key.Binding
	PrevCategory key.Binding
	Category     key.Binding

	TagLeft   key.Binding
	TagRight  key.Binding
	ToggleTag key.Binding

	Up    key.Binding
	Down  key.Binding
	Play  key.Binding
	Guide key.Binding
	Copy  key.Binding

	Done key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear search"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset filters"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous category"),
		),
		Category: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Select category"),
		),
		TagLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous tag"),
		),
		TagRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next tag"),
		),
		ToggleTag: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space/t", "Toggle tag"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous card"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next card"),
		),
		Play: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o/enter", "Play"),
		),
		Guide: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "How to play"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy play URL"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "Leave search"),
		),
	}
}
