package editor

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/marknote/session"
	"github.com/iw2rmb/marknote/store"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

type failingStore struct {
	*store.Memory
}

func (failingStore) Set(string, string) error { return errors.New("disk full") }

func newModel(t *testing.T, text string) (Model, *store.Memory) {
	t.Helper()
	st := store.NewMemory(map[string]string{store.KeyContent: text})
	m := New(Config{Session: session.New(st)})
	return m.SetSize(80, 20), st
}

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, typ tea.KeyType, n int) Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: typ})
	}
	return m
}

func TestUpdate_TypingPersistsWithoutHistory(t *testing.T) {
	m, st := newModel(t, "")
	m = typeRunes(m, "hi")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = typeRunes(m, "there")

	if got := m.Session().Text(); got != "hi there" {
		t.Fatalf("text=%q, want %q", got, "hi there")
	}
	if v, _ := st.Get(store.KeyContent); v != "hi there" {
		t.Fatalf("stored=%q, want %q", v, "hi there")
	}
	if m.Session().CanUndo() {
		t.Fatalf("typing must not record history")
	}
}

func TestUpdate_BackspaceAndEnter(t *testing.T) {
	m, _ := newModel(t, "ab")
	m = press(m, tea.KeyEnd, 1)
	m = press(m, tea.KeyBackspace, 1)
	m = press(m, tea.KeyEnter, 1)
	m = typeRunes(m, "c")
	if got := m.Session().Text(); got != "a\nc" {
		t.Fatalf("text=%q, want %q", got, "a\nc")
	}
}

func TestUpdate_FormatShortcutThenUndoRedo(t *testing.T) {
	m, st := newModel(t, "hello world")
	m = press(m, tea.KeyShiftRight, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	if got := m.Session().Text(); got != "**hello** world" {
		t.Fatalf("after bold: %q", got)
	}
	if got := m.Session().Buffer().Cursor(); got != 9 {
		t.Fatalf("cursor=%d, want 9", got)
	}

	m = press(m, tea.KeyCtrlZ, 1)
	if got := m.Session().Text(); got != "hello world" {
		t.Fatalf("after undo: %q", got)
	}
	m = press(m, tea.KeyCtrlY, 1)
	if got := m.Session().Text(); got != "**hello** world" {
		t.Fatalf("after redo: %q", got)
	}
	if v, _ := st.Get(store.KeyContent); v != "**hello** world" {
		t.Fatalf("stored=%q", v)
	}
}

func TestUpdate_ItalicOnAltI(t *testing.T) {
	m, _ := newModel(t, "ab")
	m = press(m, tea.KeyShiftRight, 2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true})
	if got := m.Session().Text(); got != "*ab*" {
		t.Fatalf("text=%q, want %q", got, "*ab*")
	}
}

func TestUpdate_FormatWithoutSelectionIsNoop(t *testing.T) {
	m, st := newModel(t, "abc")
	before := st.Writes[store.KeyContent]
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if got := m.Session().Text(); got != "abc" {
		t.Fatalf("text=%q", got)
	}
	if st.Writes[store.KeyContent] != before {
		t.Fatalf("no-op format must not write")
	}
}

func TestUpdate_ThemeAndBackgroundToggles(t *testing.T) {
	m, st := newModel(t, "")
	paneH := m.editor.Height

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.Session().Settings().Dark {
		t.Fatalf("expected dark after toggle")
	}
	if v, _ := st.Get(store.KeyDarkMode); v != "true" {
		t.Fatalf("darkMode=%q", v)
	}

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if got := m.Session().Settings().Background; got != session.GradientWave {
		t.Fatalf("background=%q", got)
	}
	if cmd == nil {
		t.Fatalf("expected animation tick")
	}
	if m.editor.Height != paneH-1 {
		t.Fatalf("pane height=%d, want %d", m.editor.Height, paneH-1)
	}

	m, _ = m.Update(animMsg{})
	if m.frame != 1 {
		t.Fatalf("frame=%d, want 1", m.frame)
	}
}

func TestUpdate_AnimationStopsOnStaticBackground(t *testing.T) {
	m, _ := newModel(t, "")
	m, cmd := m.Update(animMsg{})
	if cmd != nil {
		t.Fatalf("static background must not reschedule")
	}
	if m.animating {
		t.Fatalf("animating should be false")
	}
}

func TestUpdate_SettingsDialog(t *testing.T) {
	m, _ := newModel(t, "keep")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.modal != modalSettings {
		t.Fatalf("settings dialog not open")
	}
	view := m.View()
	for _, want := range []string{"Settings:", "Current Folder: all", "Dark Mode: false", "Background Animation: none"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m = typeRunes(m, "x")
	if m.modal != modalNone {
		t.Fatalf("any key should close the dialog")
	}
	if got := m.Session().Text(); got != "keep" {
		t.Fatalf("dismiss key must not edit, text=%q", got)
	}
}

func TestUpdate_FolderCycle(t *testing.T) {
	m, st := newModel(t, "")
	m = press(m, tea.KeyTab, 1)
	if got := m.Session().Settings().Folder; got != "personal" {
		t.Fatalf("folder=%q, want personal", got)
	}
	m = press(m, tea.KeyShiftTab, 2)
	if got := m.Session().Settings().Folder; got != "unread" {
		t.Fatalf("folder=%q, want unread", got)
	}
	if v, _ := st.Get(store.KeyFolder); v != "unread" {
		t.Fatalf("stored folder=%q", v)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	m, _ := newModel(t, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if got := m.Session().Text(); got != "a\nb\nc" {
		t.Fatalf("text=%q", got)
	}
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &memClipboard{}
	st := store.NewMemory(map[string]string{store.KeyContent: "abc"})
	m := New(Config{Session: session.New(st), Clipboard: cb}).SetSize(80, 20)

	m = press(m, tea.KeyShiftRight, 2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true})
	if cb.s != "ab" {
		t.Fatalf("clipboard=%q, want ab", cb.s)
	}

	m = press(m, tea.KeyCtrlX, 1)
	if got := m.Session().Text(); got != "c" {
		t.Fatalf("after cut: %q", got)
	}

	m = press(m, tea.KeyEnd, 1)
	m = press(m, tea.KeyCtrlV, 1)
	if got := m.Session().Text(); got != "cab" {
		t.Fatalf("after paste: %q", got)
	}

	cb.err = errors.New("no clipboard")
	m = press(m, tea.KeyCtrlV, 1)
	if m.Err() == nil {
		t.Fatalf("expected clipboard error")
	}
}

func TestUpdate_AutosaveFlushes(t *testing.T) {
	m, st := newModel(t, "draft")
	before := st.Writes[store.KeyContent]
	m, cmd := m.Update(autosaveMsg{})
	if st.Writes[store.KeyContent] != before+1 {
		t.Fatalf("autosave did not flush")
	}
	if cmd == nil {
		t.Fatalf("autosave must reschedule")
	}
	_ = m
}

func TestUpdate_StoreChangedReloadsSettings(t *testing.T) {
	m, st := newModel(t, "")
	_ = st.Set(store.KeyDarkMode, "true")
	_ = st.Set(store.KeyBackground, string(session.Waves))

	m, cmd := m.Update(storeChangedMsg{})
	s := m.Session().Settings()
	if !s.Dark || s.Background != session.Waves {
		t.Fatalf("settings not reloaded: %+v", s)
	}
	if cmd == nil {
		t.Fatalf("expected animation tick after reload")
	}
}

func TestUpdate_QuitFlushes(t *testing.T) {
	m, st := newModel(t, "bye")
	before := st.Writes[store.KeyContent]
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if st.Writes[store.KeyContent] != before+1 {
		t.Fatalf("quit did not flush")
	}
}

func TestUpdate_StoreErrorShownOnStatusLine(t *testing.T) {
	st := failingStore{store.NewMemory(nil)}
	m := New(Config{Session: session.New(st)}).SetSize(120, 10)
	m = typeRunes(m, "a")

	if m.Err() == nil {
		t.Fatalf("expected store error")
	}
	if got := m.Session().Text(); got != "a" {
		t.Fatalf("edit must stand despite store failure, text=%q", got)
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Fatalf("status line missing error:\n%s", m.View())
	}
}
