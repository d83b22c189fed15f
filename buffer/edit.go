package buffer

import "github.com/iw2rmb/marknote/internal/grapheme"

// Replace splices s over the range r and leaves the cursor after the inserted
// text with no selection. It reports whether the document changed.
func (b *Buffer) Replace(r Selection, s string) bool {
	r = r.Normalize().Clamp(len(b.text))
	ins := []rune(s)
	if r.Empty() && len(ins) == 0 {
		return false
	}

	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)

	b.text = out
	b.cursor = r.Start + len(ins)
	b.sel = selectionState{}
	b.version++
	return true
}

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		r = Selection{Start: b.cursor, End: b.cursor}
	}
	b.Replace(r, s)
}

func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteSelection removes the selected text. It reports false when nothing
// was selected.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.Replace(r, "")
}

// DeleteBackward applies backspace semantics: the selection if any, else the
// grapheme cluster before the cursor, else the preceding line break.
func (b *Buffer) DeleteBackward() {
	if b.DeleteSelection() {
		return
	}
	if b.cursor == 0 {
		return
	}
	start := b.cursor - 1
	if b.text[start] != '\n' {
		start = grapheme.Prev(b.lineBounds(b.cursor), b.cursor)
	}
	b.Replace(Selection{Start: start, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.DeleteSelection() {
		return
	}
	if b.cursor == len(b.text) {
		return
	}
	end := b.cursor + 1
	if b.text[b.cursor] != '\n' {
		end = grapheme.Next(b.lineBounds(b.cursor), b.cursor)
	}
	b.Replace(Selection{Start: b.cursor, End: end}, "")
}
