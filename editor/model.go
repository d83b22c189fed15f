package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/marknote/session"
)

// Rows taken by the toolbar, the folder bar and the status line.
const chromeRows = 3

type modalKind int

const (
	modalNone modalKind = iota
	modalSettings
	modalHelp
)

// Model is the Bubble Tea model for one session.
type Model struct {
	cfg  Config
	sess *session.Session

	width, height int

	editor  viewport.Model
	preview viewport.Model
	help    help.Model
	xOffset int

	frame     int
	animating bool

	modal     modalKind
	modalBody string

	err error

	mouseAnchor   int
	mouseDragging bool

	lastVersion uint64
	lastCursor  int
	lastDark    bool
}

func New(cfg Config) Model {
	cfg = cfg.normalize()
	m := Model{
		cfg:     cfg,
		sess:    cfg.Session,
		editor:  viewport.New(0, 0),
		preview: viewport.New(0, 0),
		help:    help.New(),
	}
	m.animating = m.sess.Settings().Background.Animated()
	m.lastVersion = m.sess.Buffer().Version()
	m.lastCursor = m.sess.Buffer().Cursor()
	m.lastDark = m.sess.Settings().Dark
	m.rebuild()
	return m
}

func (m Model) Session() *session.Session { return m.sess }

// Err returns the last store or clipboard error, cleared by the next
// successful command.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{autosaveTick(m.cfg.Autosave), waitStore(m.cfg.StoreChanged)}
	if m.animating {
		cmds = append(cmds, animTick())
	}
	return tea.Batch(cmds...)
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width

	editorW := width / 2
	previewW := width - editorW - 1
	if previewW < 0 {
		previewW = 0
	}
	paneH := m.paneHeight()
	m.editor.Width = editorW
	m.editor.Height = paneH
	m.preview.Width = previewW
	m.preview.Height = paneH

	m.scrollX()
	m.rebuild()
	m.scrollY()
	return m
}

func (m Model) paneHeight() int {
	h := m.height - chromeRows
	if m.sess.Settings().Background.Animated() {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) style() Style {
	return m.cfg.Themes.pick(m.sess.Settings().Dark)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case autosaveMsg:
		m.dispatch(session.Flush())
		cmd = autosaveTick(m.cfg.Autosave)
	case animMsg:
		if !m.sess.Settings().Background.Animated() {
			m.animating = false
			return m, nil
		}
		m.frame++
		return m, animTick()
	case storeChangedMsg:
		if m.sess.ReloadSettings() {
			cmd = m.settingsChanged()
		}
		cmd = tea.Batch(cmd, waitStore(m.cfg.StoreChanged))
	}
	m.sync()
	return m, cmd
}

// dispatch forwards cmd to the session and keeps the last error for the
// status line.
func (m *Model) dispatch(cmd session.Command) session.Result {
	res, err := m.sess.Dispatch(cmd)
	m.err = err
	return res
}

// settingsChanged re-lays out the panes after a theme or background change
// and starts the animation when needed.
func (m *Model) settingsChanged() tea.Cmd {
	*m = m.SetSize(m.width, m.height)
	if m.sess.Settings().Background.Animated() && !m.animating {
		m.animating = true
		return animTick()
	}
	return nil
}

// sync rebuilds pane content when the buffer or theme changed since the last
// update.
func (m *Model) sync() {
	buf := m.sess.Buffer()
	ver, cur, dark := buf.Version(), buf.Cursor(), m.sess.Settings().Dark
	if ver == m.lastVersion && cur == m.lastCursor && dark == m.lastDark {
		return
	}
	m.lastVersion, m.lastCursor, m.lastDark = ver, cur, dark
	m.scrollX()
	m.rebuild()
	m.scrollY()
}

func (m *Model) rebuild() {
	m.editor.SetContent(m.renderSource())
	m.preview.SetContent(Paint(m.sess.Preview(), m.style().Preview, m.preview.Width))
}

// scrollY scrolls the source pane so the cursor row is visible.
func (m *Model) scrollY() {
	h := m.editor.Height
	if h <= 0 {
		return
	}
	buf := m.sess.Buffer()
	row := buf.Pos(buf.Cursor()).Row
	y := m.editor.YOffset
	switch {
	case row < y:
		m.editor.SetYOffset(row)
	case row >= y+h:
		m.editor.SetYOffset(row - h + 1)
	}
}

// scrollX adjusts the horizontal offset so the cursor cell is visible.
func (m *Model) scrollX() {
	cw := m.contentWidth()
	if cw <= 0 {
		return
	}
	buf := m.sess.Buffer()
	pos := buf.Pos(buf.Cursor())
	col := cellsBefore(buf.Lines()[pos.Row], pos.Col)
	switch {
	case col < m.xOffset:
		m.xOffset = col
	case col >= m.xOffset+cw:
		m.xOffset = col - cw + 1
	}
}
