package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev, Activate   key.Binding
	Lines                  key.Binding
	Save, Print            key.Binding
	AddEducation, AddExp   key.Binding
	Remove                 key.Binding
	PageUp, PageDown, Quit key.Binding
	Sections               [4]key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Lines:        key.NewBinding(key.WithKeys("up", "down")),
		Activate:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Save:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save/unlock")),
		Print:        key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
		AddEducation: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "add education")),
		AddExp:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "add experience")),
		Remove:       key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove entry")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:         key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Sections: [4]key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1-4", "jump to section")),
			key.NewBinding(key.WithKeys("alt+2")),
			key.NewBinding(key.WithKeys("alt+3")),
			key.NewBinding(key.WithKeys("alt+4")),
		},
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Print, k.AddEducation, k.AddExp, k.Remove, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate},
		{k.Save, k.Print},
		{k.AddEducation, k.AddExp, k.Remove},
		{k.PageUp, k.PageDown, k.Sections[0], k.Quit},
	}
}
