package format

import "github.com/iw2rmb/marknote/buffer"

// Result is the outcome of a successful Apply.
type Result struct {
	// Text is the whole document after the splice.
	Text string
	// Inserted is the range the formatted span occupies in Text.
	Inserted buffer.Selection
}

// Apply splices f around the text doc[sel.Start:sel.End], with offsets in
// runes. It reports false when the selection is empty after clamping, in which
// case nothing should change.
func Apply(doc string, sel buffer.Selection, f Format) (Result, bool) {
	runes := []rune(doc)
	sel = sel.Normalize().Clamp(len(runes))
	if sel.Empty() {
		return Result{}, false
	}

	formatted := []rune(f.Wrap(string(runes[sel.Start:sel.End])))

	out := make([]rune, 0, len(runes)-sel.Len()+len(formatted))
	out = append(out, runes[:sel.Start]...)
	out = append(out, formatted...)
	out = append(out, runes[sel.End:]...)

	return Result{
		Text:     string(out),
		Inserted: buffer.Selection{Start: sel.Start, End: sel.Start + len(formatted)},
	}, true
}
