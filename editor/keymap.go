package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/marknote/format"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks). Terminals
// deliver ctrl+i as tab, so italic lives on alt+i.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Bold, Italic, Strike, Code key.Binding
	H1, H2, Quote, List        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	ToggleTheme, ToggleBackground key.Binding
	Settings                      key.Binding
	NextFolder, PrevFolder        key.Binding
	Help                          key.Binding
	Quit                          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "doc start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "doc end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Bold:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic: key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Strike: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strike")),
		Code:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "code")),
		H1:     key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
		H2:     key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
		Quote:  key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
		List:   key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ToggleTheme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		ToggleBackground: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "background")),
		Settings:         key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "settings")),
		NextFolder:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next folder")),
		PrevFolder:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev folder")),
		Help:             key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:             key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// formatBinding returns the binding that applies f.
func (km KeyMap) formatBinding(f format.Format) key.Binding {
	switch f {
	case format.Bold:
		return km.Bold
	case format.Italic:
		return km.Italic
	case format.Strike:
		return km.Strike
	case format.Code:
		return km.Code
	case format.H1:
		return km.H1
	case format.H2:
		return km.H2
	case format.Quote:
		return km.Quote
	case format.List:
		return km.List
	}
	return key.Binding{}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Bold, km.Italic, km.Undo, km.Redo, km.Settings, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Bold, km.Italic, km.Strike, km.Code},
		{km.H1, km.H2, km.Quote, km.List},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
		{km.ToggleTheme, km.ToggleBackground, km.Settings, km.NextFolder, km.Quit},
	}
}
