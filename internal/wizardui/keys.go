package wizardui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit  key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "salvar e avançar"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "voltar"),
	),
	Restart: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "recomeçar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "sair"),
	),
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Restart, k.Quit}
}
