package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/marknote/buffer"
	"github.com/iw2rmb/marknote/format"
	"github.com/iw2rmb/marknote/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.modal != modalNone {
		m.closeModal()
		return m, nil
	}

	buf := m.sess.Buffer()
	before := buf.Text()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m.afterEdit(before), nil
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		m.dispatch(session.Flush())
		return m, tea.Quit
	}
	for _, f := range format.All() {
		if key.Matches(msg, km.formatBinding(f)) {
			m.dispatch(session.Format(f))
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Undo):
		m.dispatch(session.Undo())
	case key.Matches(msg, km.Redo):
		m.dispatch(session.Redo())

	case key.Matches(msg, km.ToggleTheme):
		m.dispatch(session.ToggleTheme())
		cmd := m.settingsChanged()
		return m, cmd
	case key.Matches(msg, km.ToggleBackground):
		m.dispatch(session.ToggleBackground())
		cmd := m.settingsChanged()
		return m, cmd
	case key.Matches(msg, km.Settings):
		res := m.dispatch(session.ShowSettings())
		m.openModal(modalSettings, res.Summary)
	case key.Matches(msg, km.Help):
		h := m.help
		h.ShowAll = true
		m.openModal(modalHelp, h.View(km))
	case key.Matches(msg, km.NextFolder):
		m.dispatch(session.SwitchFolder(m.folderStep(1)))
	case key.Matches(msg, km.PrevFolder):
		m.dispatch(session.SwitchFolder(m.folderStep(-1)))

	case key.Matches(msg, km.Left):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		buf.InsertNewline()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeySpace {
			buf.InsertRune(' ')
		} else if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			buf.InsertText(string(msg.Runes))
		}
	}

	return m.afterEdit(before), nil
}

// afterEdit reports a direct buffer edit to the session. Typing is not
// recorded in history.
func (m Model) afterEdit(before string) Model {
	if m.sess.Buffer().Text() != before {
		m.dispatch(session.Input())
	}
	return m
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.sess.Buffer().SelectedText()
	if s == "" {
		return
	}
	m.err = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	buf := m.sess.Buffer()
	s := buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.err = err
		return
	}
	buf.DeleteSelection()
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.err = err
		return
	}
	if s == "" {
		return
	}
	m.sess.Buffer().InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts external line endings to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
