package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/marknote/buffer"
	"github.com/iw2rmb/marknote/session"
)

const (
	toolbarRow = 0
	folderRow  = 1
	paneTop    = 2
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.modal != modalNone {
		if msg.Action == tea.MouseActionPress {
			m.closeModal()
		}
		return m, nil
	}

	if isWheel(msg) {
		var cmd tea.Cmd
		if m.inPreview(msg.X) {
			m.preview, cmd = m.preview.Update(msg)
		} else {
			m.editor, cmd = m.editor.Update(msg)
		}
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case msg.Y == toolbarRow:
			_, hits := m.layoutToolbar()
			if cmd, ok := hitAt(hits, msg.X); ok {
				return m.runToolbar(cmd)
			}
		case msg.Y == folderRow:
			_, hits := m.layoutFolders()
			if cmd, ok := hitAt(hits, msg.X); ok {
				m.dispatch(cmd)
			}
		case m.inSource(msg.X, msg.Y):
			buf := m.sess.Buffer()
			p := m.screenToDoc(msg.X, msg.Y)
			if msg.Shift {
				anchor := buf.Cursor()
				if sel, ok := buf.Selection(); ok {
					anchor = sel.Start
				}
				m.mouseAnchor = anchor
				buf.SetSelection(buffer.Selection{Start: anchor, End: p})
				if anchor == p {
					buf.SetCursor(p)
				}
			} else {
				m.mouseAnchor = p
				buf.SetCursor(p)
			}
			m.mouseDragging = true
		}

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampToSource(msg.X, msg.Y)
		p := m.screenToDoc(x, y)
		buf := m.sess.Buffer()
		if p == m.mouseAnchor {
			buf.SetCursor(p)
		} else {
			buf.SetSelection(buffer.Selection{Start: m.mouseAnchor, End: p})
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

// runToolbar handles a toolbar click the same way as its shortcut.
func (m Model) runToolbar(cmd session.Command) (Model, tea.Cmd) {
	res := m.dispatch(cmd)
	switch cmd.Kind { //nolint:exhaustive
	case session.CmdShowSettings:
		m.openModal(modalSettings, res.Summary)
	case session.CmdToggleTheme, session.CmdToggleBackground:
		c := m.settingsChanged()
		return m, c
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) inPreview(x int) bool {
	return x > m.editor.Width
}

func (m Model) inSource(x, y int) bool {
	return x >= 0 && x < m.editor.Width && y >= paneTop && y < paneTop+m.editor.Height
}

func (m Model) clampToSource(x, y int) (int, int) {
	return clampInt(x, 0, m.editor.Width-1), clampInt(y, paneTop, paneTop+m.editor.Height-1)
}

// screenToDoc maps a screen cell in the source pane to a document offset.
func (m Model) screenToDoc(x, y int) int {
	buf := m.sess.Buffer()
	lines := buf.Lines()
	row := clampInt(y-paneTop+m.editor.YOffset, 0, len(lines)-1)
	cell := x - m.gutterWidth() + m.xOffset
	if cell < 0 {
		cell = 0
	}
	return buf.Offset(buffer.Pos{Row: row, Col: colAtCell(lines[row], cell)})
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
