// Package format maps a format identifier and a selection onto a text splice.
//
// Inline formats wrap the selected text; block formats prefix it. The table is
// fixed and the splice is literal: no trimming, no toggling off an existing
// format, no awareness of line boundaries inside the selection.
package format

// Format identifies a formatting request coming from the toolbar or a
// shortcut.
type Format string

const (
	Bold   Format = "bold"
	Italic Format = "italic"
	Strike Format = "strike"
	Code   Format = "code"
	H1     Format = "h1"
	H2     Format = "h2"
	Quote  Format = "quote"
	List   Format = "list"
)

type splice struct {
	prefix, suffix string
	label          string
}

var table = map[Format]splice{
	Bold:   {prefix: "**", suffix: "**", label: "B"},
	Italic: {prefix: "*", suffix: "*", label: "I"},
	Strike: {prefix: "~~", suffix: "~~", label: "S"},
	Code:   {prefix: "`", suffix: "`", label: "<>"},
	H1:     {prefix: "# ", label: "H1"},
	H2:     {prefix: "## ", label: "H2"},
	Quote:  {prefix: "> ", label: "❝"},
	List:   {prefix: "- ", label: "•"},
}

var order = []Format{Bold, Italic, Strike, Code, H1, H2, Quote, List}

// All returns every known format in toolbar order.
func All() []Format {
	out := make([]Format, len(order))
	copy(out, order)
	return out
}

// Parse returns the Format named s and whether it is known.
func Parse(s string) (Format, bool) {
	f := Format(s)
	_, ok := table[f]
	return f, ok
}

// Known reports whether f is in the splice table.
func (f Format) Known() bool {
	_, ok := table[f]
	return ok
}

// Label is the short caption shown on the toolbar button.
func (f Format) Label() string {
	if s, ok := table[f]; ok {
		return s.label
	}
	return string(f)
}

// Wrap returns selected with f applied. Unknown formats return selected
// unchanged.
func (f Format) Wrap(selected string) string {
	s, ok := table[f]
	if !ok {
		return selected
	}
	return s.prefix + selected + s.suffix
}
