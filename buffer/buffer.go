package buffer

import "github.com/iw2rmb/marknote/internal/grapheme"

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer holds the document text together with the cursor and selection the
// user manipulates. Version increases on every observable change.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	sel    selectionState
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(off int) {
	next := clampInt(off, 0, len(b.text))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized active selection. An empty range is never
// reported as active.
func (b *Buffer) Selection() (Selection, bool) {
	if !b.sel.active {
		return Selection{}, false
	}
	s := Selection{Start: b.sel.anchor, End: b.sel.end}.Normalize()
	if s.Empty() {
		return Selection{}, false
	}
	return s, true
}

// SetSelection selects s (anchor at Start, cursor at End) after clamping.
// Passing an empty range clears the selection.
func (b *Buffer) SetSelection(s Selection) {
	s = s.Clamp(len(b.text))
	if s.Empty() {
		b.ClearSelection()
		return
	}
	next := selectionState{active: true, anchor: s.Start, end: s.End}
	if next == b.sel && b.cursor == s.End {
		return
	}
	b.sel = next
	b.cursor = s.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text under the active selection, or "".
func (b *Buffer) SelectedText() string {
	s, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[s.Start:s.End])
}

// SetText replaces the whole document. The cursor is clamped to the new
// length and any selection is dropped.
func (b *Buffer) SetText(text string) {
	b.text = []rune(text)
	b.cursor = clampInt(b.cursor, 0, len(b.text))
	b.cursor = b.snapBack(b.cursor)
	b.sel = selectionState{}
	b.version++
}

// Pos converts a rune offset into a display (row, col). Rows are split on
// '\n' only.
func (b *Buffer) Pos(off int) Pos {
	off = clampInt(off, 0, len(b.text))
	row, start := 0, 0
	for i := 0; i < off; i++ {
		if b.text[i] == '\n' {
			row++
			start = i + 1
		}
	}
	return Pos{Row: row, Col: off - start}
}

// Offset converts a display position back into a rune offset, clamping the
// row to the document and the column to the row.
func (b *Buffer) Offset(p Pos) int {
	starts := b.lineStarts()
	row := clampInt(p.Row, 0, len(starts)-1)
	start := starts[row]
	return start + clampInt(p.Col, 0, b.lineEnd(start)-start)
}

// Lines returns the document split on '\n'. An empty document has one empty
// line.
func (b *Buffer) Lines() []string {
	starts := b.lineStarts()
	out := make([]string, 0, len(starts))
	for _, s := range starts {
		out = append(out, string(b.text[s:b.lineEnd(s)]))
	}
	return out
}

func (b *Buffer) lineStarts() []int {
	starts := []int{0}
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (b *Buffer) lineStart(off int) int {
	for i := off - 1; i >= 0; i-- {
		if b.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func (b *Buffer) lineEnd(off int) int {
	for i := off; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}

// lineBounds returns the absolute cluster boundaries of the line holding off.
func (b *Buffer) lineBounds(off int) []int {
	start := b.lineStart(off)
	rel := grapheme.Boundaries(string(b.text[start:b.lineEnd(off)]))
	for i := range rel {
		rel[i] += start
	}
	return rel
}

// snapBack moves off left onto the nearest cluster boundary of its line.
func (b *Buffer) snapBack(off int) int {
	bounds := b.lineBounds(off)
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] <= off {
			return bounds[i]
		}
	}
	return off
}
