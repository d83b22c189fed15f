package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/marknote/buffer"
	"github.com/iw2rmb/marknote/markdown"
	"github.com/iw2rmb/marknote/session"
	"github.com/iw2rmb/marknote/store"
)

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func TestPaint_Tags(t *testing.T) {
	st := LightStyle().Preview
	cases := []struct {
		name   string
		markup string
		want   string
	}{
		{"heading and break", "<h1>Title</h1><br><strong>b</strong> and <em>i</em>", "Title\nb and i"},
		{"list item", "<li>milk</li>", "• milk"},
		{"quote", "<blockquote>wise</blockquote>", "▌ wise"},
		{"nested", "<li><strong><em>x</em></strong></li>", "• x"},
		{"stray close ignored", "a</em>b", "ab"},
		{"unknown tag literal", "<div>x</div>", "<div>x</div>"},
		{"empty lines kept", "a<br><br>b", "a\n\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Paint(tc.markup, st, 0); got != tc.want {
				t.Fatalf("Paint(%q)=%q, want %q", tc.markup, got, tc.want)
			}
		})
	}
}

func TestPaint_Placeholder(t *testing.T) {
	got := Paint(markdown.Render(""), LightStyle().Preview, 0)
	if got != "Preview will appear here..." {
		t.Fatalf("got %q", got)
	}
}

func TestPaint_WrapsToWidth(t *testing.T) {
	got := Paint("aaaa bbbb", LightStyle().Preview, 4)
	for _, l := range strings.Split(got, "\n") {
		if w := lipgloss.Width(l); w > 4 {
			t.Fatalf("line %q width %d > 4", l, w)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected wrapped output, got %q", got)
	}
}

func TestRenderLine_ClipsToWindow(t *testing.T) {
	st := Style{}
	got := renderLine(st, "abcdef", 0, -1, buffer.Selection{}, false, 2, 3)
	if got != "cde" {
		t.Fatalf("got %q, want %q", got, "cde")
	}
}

func TestRenderLine_CursorAtLineEnd(t *testing.T) {
	st := Style{}
	got := renderLine(st, "ab", 10, 12, buffer.Selection{}, false, 0, 10)
	if got != "ab " {
		t.Fatalf("got %q, want %q", got, "ab ")
	}
}

func TestRenderLine_ControlCharactersArePictured(t *testing.T) {
	st := Style{}
	got := renderLine(st, "a\rb\x00", 0, -1, buffer.Selection{}, false, 0, 10)
	if got != "a\u240db\u2400" {
		t.Fatalf("got %q", got)
	}
	if w := lipgloss.Width(got); w != 4 {
		t.Fatalf("width=%d, want 4", w)
	}
}

func TestRenderLine_NoWidthDrawsNothing(t *testing.T) {
	st := Style{}
	for _, w := range []int{0, -3} {
		if got := renderLine(st, "abc", 0, 3, buffer.Selection{}, false, 0, w); got != "" {
			t.Fatalf("width %d: got %q", w, got)
		}
	}
}

func TestRenderLine_WideAndCombiningClusters(t *testing.T) {
	st := Style{}
	line := "e\u0301\u4e16x"
	got := renderLine(st, line, 0, -1, buffer.Selection{}, false, 0, 3)
	if got != "e\u0301\u4e16" {
		t.Fatalf("got %q", got)
	}
	if c := cellsBefore(line, 2); c != 1 {
		t.Fatalf("cellsBefore(2)=%d, want 1", c)
	}
	if c := cellsBefore(line, 3); c != 3 {
		t.Fatalf("cellsBefore(3)=%d, want 3", c)
	}
	if col := colAtCell(line, 2); col != 2 {
		t.Fatalf("colAtCell(2)=%d, want 2", col)
	}
}

func TestBand(t *testing.T) {
	if got := band(session.BackgroundNone, 0, 10, nil); got != "" {
		t.Fatalf("static band=%q", got)
	}
	if got := band(session.AnimatedDots, 0, 7, nil); got != "•     •" {
		t.Fatalf("dots=%q", got)
	}
	if got := band(session.Waves, 1, 3, nil); got != "▂▃▄" {
		t.Fatalf("waves=%q", got)
	}
	if got := band(session.GradientWave, 0, 4, LightStyle().Band); lipgloss.Width(got) != 4 {
		t.Fatalf("gradient width=%d", lipgloss.Width(got))
	}
}

func TestView_Layout(t *testing.T) {
	m, _ := newModel(t, "# Hi")
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Fatalf("view has %d lines, want 20", len(lines))
	}
	if !strings.Contains(lines[0], "H1") || !strings.Contains(lines[0], "⚙") {
		t.Fatalf("toolbar=%q", lines[0])
	}
	if !strings.Contains(lines[1], "personal") {
		t.Fatalf("folder bar=%q", lines[1])
	}
	if !strings.Contains(lines[2], "# Hi") || !strings.Contains(lines[2], "Hi") {
		t.Fatalf("pane row=%q", lines[2])
	}
	if !strings.Contains(lines[19], "4 characters · all") {
		t.Fatalf("status=%q", lines[19])
	}
}

func TestMouse_ToolbarFormat(t *testing.T) {
	m, _ := newModel(t, "word")
	m = press(m, tea.KeyShiftRight, 4)
	m = click(m, 1, toolbarRow)
	if got := m.Session().Text(); got != "**word**" {
		t.Fatalf("text=%q", got)
	}
}

func TestMouse_ToolbarUndoDisabledUntilHistory(t *testing.T) {
	m, _ := newModel(t, "word")
	_, hits := m.layoutToolbar()
	for _, h := range hits {
		if h.cmd.Kind == session.CmdUndo {
			t.Fatalf("undo button should be disabled")
		}
	}
}

func TestMouse_FolderBar(t *testing.T) {
	m, _ := newModel(t, "")
	_, hits := m.layoutFolders()
	work := hits[2]
	m = click(m, work.x0, folderRow)
	if got := m.Session().Settings().Folder; got != "work" {
		t.Fatalf("folder=%q, want work", got)
	}
}

func TestMouse_ClickAndDragInSource(t *testing.T) {
	m, _ := newModel(t, "abc\ndef")
	m = click(m, 2, paneTop+1)
	if got := m.Session().Buffer().Cursor(); got != 6 {
		t.Fatalf("cursor=%d, want 6", got)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: paneTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: paneTop, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: paneTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := m.Session().Buffer().SelectedText(); got != "ab" {
		t.Fatalf("selected=%q, want ab", got)
	}
}

func TestMouse_ClickClosesDialog(t *testing.T) {
	st := store.NewMemory(nil)
	m := New(Config{Session: session.New(st)}).SetSize(80, 20)
	_, hits := m.layoutToolbar()
	gear := hits[len(hits)-1]
	if gear.cmd.Kind != session.CmdShowSettings {
		t.Fatalf("last toolbar item is %s", gear.cmd.Kind)
	}
	m = click(m, gear.x0, toolbarRow)
	if m.modal != modalSettings {
		t.Fatalf("settings button did not open dialog")
	}
	m = click(m, 0, 10)
	if m.modal != modalNone {
		t.Fatalf("click should close dialog")
	}
}
