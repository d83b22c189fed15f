package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	st := m.style()
	settings := m.sess.Settings()

	toolbar, _ := m.layoutToolbar()
	folders, _ := m.layoutFolders()

	rows := []string{toolbar, folders}
	if h := m.editor.Height; h > 0 {
		divider := st.Divider.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), divider, m.preview.View()))
	}
	if b := band(settings.Background, m.frame, m.width, st.Band); b != "" {
		rows = append(rows, b)
	}
	rows = append(rows, m.statusLine())

	return m.withModal(strings.Join(rows, "\n"))
}

// statusLine shows the character count, the folder and either the last error
// or the short help.
func (m Model) statusLine() string {
	st := m.style()
	left := st.Status.Render(fmt.Sprintf("%d characters · %s", m.sess.Characters(), m.sess.Settings().Folder))

	h := m.help
	h.Width = m.width - lipgloss.Width(left) - 1
	right := h.View(m.cfg.KeyMap)
	if m.err != nil {
		right = st.Error.Render(m.err.Error())
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left + " " + right)
	}
	return left + strings.Repeat(" ", gap) + right
}
