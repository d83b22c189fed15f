package buffer

import "github.com/iw2rmb/marknote/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, grows the selection from its anchor; if false clears it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	next := clampInt(b.moveCursor(prevCursor, m), 0, len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if off == 0 {
			return off
		}
		if b.text[off-1] == '\n' {
			return off - 1
		}
		return grapheme.Prev(b.lineBounds(off), off)
	case DirRight:
		if off == len(b.text) {
			return off
		}
		if b.text[off] == '\n' {
			return off + 1
		}
		return grapheme.Next(b.lineBounds(off), off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft, DirRight:
		bounds := b.lineBounds(off)
		idx := indexOf(bounds, b.snapBack(off))
		if dir == DirLeft {
			return bounds[b.prevWordBoundary(bounds, idx)]
		}
		return bounds[b.nextWordBoundary(bounds, idx)]
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.Pos(off)
	switch dir {
	case DirHome:
		return b.lineStart(off)
	case DirEnd:
		return b.lineEnd(off)
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return b.snapBack(b.Offset(Pos{Row: p.Row - 1, Col: p.Col}))
	case DirDown:
		if b.lineEnd(off) == len(b.text) {
			return off
		}
		return b.snapBack(b.Offset(Pos{Row: p.Row + 1, Col: p.Col}))
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

func (b *Buffer) cluster(bounds []int, i int) string {
	return string(b.text[bounds[i]:bounds[i+1]])
}

// Word boundary rules: skip whitespace, then skip non-whitespace. The line
// break is a hard stop, so this operates within one line. Indices are into
// bounds.
func (b *Buffer) prevWordBoundary(bounds []int, i int) int {
	for i > 0 && grapheme.IsSpace(b.cluster(bounds, i-1)) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(b.cluster(bounds, i-1)) {
		i--
	}
	return i
}

func (b *Buffer) nextWordBoundary(bounds []int, i int) int {
	last := len(bounds) - 1
	for i < last && grapheme.IsSpace(b.cluster(bounds, i)) {
		i++
	}
	for i < last && !grapheme.IsSpace(b.cluster(bounds, i)) {
		i++
	}
	return i
}

func indexOf(bounds []int, off int) int {
	for i, v := range bounds {
		if v == off {
			return i
		}
	}
	return 0
}
