package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/marknote/buffer"
	"github.com/iw2rmb/marknote/internal/grapheme"
)

const tabWidth = 4

// cluster is one grapheme cluster of a line with its rune offset and cell
// extent.
type cluster struct {
	text  string
	off   int // rune offset within the line
	cell  int // first cell
	width int
}

func lineClusters(line string) []cluster {
	runes := []rune(line)
	bounds := grapheme.Boundaries(line)
	out := make([]cluster, 0, len(bounds))
	cell := 0
	for i := 0; i+1 < len(bounds); i++ {
		text := string(runes[bounds[i]:bounds[i+1]])
		w := clusterWidth(text)
		out = append(out, cluster{text: text, off: bounds[i], cell: cell, width: w})
		cell += w
	}
	return out
}

func clusterWidth(s string) int {
	if s == "\t" {
		return tabWidth
	}
	w := runewidth.StringWidth(s)
	if w < 1 {
		w = 1
	}
	return w
}

// displayCluster returns what the terminal is given for a cluster. Tabs expand
// to spaces and C0 controls show as their control picture so raw bytes like
// '\r' never reach the screen.
func displayCluster(s string) string {
	if s == "\t" {
		return strings.Repeat(" ", tabWidth)
	}
	r := []rune(s)[0]
	switch {
	case r < 0x20:
		return string(rune(0x2400 + r))
	case r == 0x7f:
		return "\u2421"
	}
	return s
}

// cellsBefore returns the display width of the first col runes of line.
func cellsBefore(line string, col int) int {
	cells := 0
	for _, c := range lineClusters(line) {
		if c.off >= col {
			break
		}
		cells += c.width
	}
	return cells
}

// colAtCell maps a display cell back to a rune column, snapping to the
// cluster that covers it.
func colAtCell(line string, cell int) int {
	for _, c := range lineClusters(line) {
		if cell < c.cell+c.width {
			return c.off
		}
	}
	return len([]rune(line))
}

func gutterDigits(lines int) int {
	return len(strconv.Itoa(lines))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(len(m.sess.Buffer().Lines())) + 1
}

func (m Model) contentWidth() int {
	return m.editor.Width - m.gutterWidth()
}

// renderSource renders every document line for the source viewport.
func (m Model) renderSource() string {
	buf := m.sess.Buffer()
	st := m.style()
	lines := buf.Lines()
	cursor := buf.Cursor()
	curRow := buf.Pos(cursor).Row
	sel, selOK := buf.Selection()
	digits := gutterDigits(len(lines))
	cw := m.contentWidth()

	out := make([]string, 0, len(lines))
	start := 0
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if row == curRow {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(st, line, start, cursor, sel, selOK, m.xOffset, cw))
		out = append(out, sb.String())
		start += len([]rune(line)) + 1
	}
	return strings.Join(out, "\n")
}

// renderLine draws the cells of line inside [left, left+width). start is the
// document offset of the line's first rune.
func renderLine(st Style, line string, start, cursor int, sel buffer.Selection, selOK bool, left, width int) string {
	if width <= 0 {
		return ""
	}
	right := left + width

	var sb strings.Builder
	for _, c := range lineClusters(line) {
		off := start + c.off
		if c.cell < left {
			continue
		}
		if c.cell+c.width > right {
			return sb.String()
		}

		text := displayCluster(c.text)
		s := st.Text
		switch {
		case off == cursor:
			s = st.Cursor
		case selOK && off >= sel.Start && off < sel.End:
			s = st.Selection
		}
		sb.WriteString(s.Render(text))
	}
	n := len([]rune(line))
	if cursor == start+n {
		cell := cellsBefore(line, n)
		if cell >= left && cell < right {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}
