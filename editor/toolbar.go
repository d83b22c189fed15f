package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/marknote/format"
	"github.com/iw2rmb/marknote/session"
)

type button struct {
	label    string
	cmd      session.Command
	disabled bool
}

// hit is the half-open cell range [x0, x1) of one clickable item.
type hit struct {
	x0, x1 int
	cmd    session.Command
}

func (m Model) toolbarButtons() []button {
	var out []button
	for _, f := range format.All() {
		out = append(out, button{label: f.Label(), cmd: session.Format(f)})
	}

	settings := m.sess.Settings()
	theme := "☾"
	if settings.Dark {
		theme = "☀"
	}
	bg := "✦"
	if settings.Background.Animated() {
		bg = "✧"
	}
	return append(out,
		button{label: "↶", cmd: session.Undo(), disabled: !m.sess.CanUndo()},
		button{label: "↷", cmd: session.Redo(), disabled: !m.sess.CanRedo()},
		button{label: theme, cmd: session.ToggleTheme()},
		button{label: bg, cmd: session.ToggleBackground()},
		button{label: "⚙", cmd: session.ShowSettings()},
	)
}

// layoutToolbar renders the toolbar row and returns the click targets.
func (m Model) layoutToolbar() (string, []hit) {
	st := m.style()
	var (
		sb   strings.Builder
		hits []hit
		x    int
	)
	for i, b := range m.toolbarButtons() {
		if i > 0 {
			sb.WriteString(" ")
			x++
		}
		s := st.Button
		if b.disabled {
			s = st.ButtonDisabled
		}
		r := s.Render(b.label)
		w := lipgloss.Width(r)
		if !b.disabled {
			hits = append(hits, hit{x0: x, x1: x + w, cmd: b.cmd})
		}
		sb.WriteString(r)
		x += w
	}
	return st.Toolbar.Width(m.width).MaxWidth(m.width).Render(sb.String()), hits
}

// layoutFolders renders the folder bar and returns the click targets.
func (m Model) layoutFolders() (string, []hit) {
	st := m.style()
	active := m.sess.Settings().Folder
	sep := st.Divider.Render("│")
	sepW := lipgloss.Width(sep)

	var (
		sb   strings.Builder
		hits []hit
		x    int
	)
	for i, f := range m.cfg.Folders {
		if i > 0 {
			sb.WriteString(sep)
			x += sepW
		}
		s := st.Folder
		if f == active {
			s = st.FolderActive
		}
		r := s.Render(f)
		w := lipgloss.Width(r)
		hits = append(hits, hit{x0: x, x1: x + w, cmd: session.SwitchFolder(f)})
		sb.WriteString(r)
		x += w
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String()), hits
}

func hitAt(hits []hit, x int) (session.Command, bool) {
	for _, h := range hits {
		if x >= h.x0 && x < h.x1 {
			return h.cmd, true
		}
	}
	return session.Command{}, false
}

// folderStep returns the folder delta positions away from the current one,
// wrapping around the folder bar.
func (m Model) folderStep(delta int) string {
	folders := m.cfg.Folders
	cur := 0
	for i, f := range folders {
		if f == m.sess.Settings().Folder {
			cur = i
			break
		}
	}
	n := len(folders)
	return folders[((cur+delta)%n+n)%n]
}
