package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	cancel key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

func (k keyMap) help() string {
	return k.submit.Help().Key + ": " + k.submit.Help().Desc + " │ " + k.cancel.Help().Key + ": " + k.cancel.Help().Desc
}
