package format

import (
	"testing"

	"github.com/iw2rmb/marknote/buffer"
)

func TestApply_Table(t *testing.T) {
	cases := []struct {
		f    Format
		want string
	}{
		{f: Bold, want: "say **hi** now"},
		{f: Italic, want: "say *hi* now"},
		{f: Strike, want: "say ~~hi~~ now"},
		{f: Code, want: "say `hi` now"},
		{f: H1, want: "say # hi now"},
		{f: H2, want: "say ## hi now"},
		{f: Quote, want: "say > hi now"},
		{f: List, want: "say - hi now"},
	}
	for _, tc := range cases {
		got, ok := Apply("say hi now", buffer.Selection{Start: 4, End: 6}, tc.f)
		if !ok {
			t.Fatalf("%s: expected ok", tc.f)
		}
		if got.Text != tc.want {
			t.Fatalf("%s: text=%q, want %q", tc.f, got.Text, tc.want)
		}
	}
}

func TestApply_EmptySelectionIsNoOp(t *testing.T) {
	if _, ok := Apply("abc", buffer.Selection{Start: 1, End: 1}, Bold); ok {
		t.Fatalf("expected ok=false for empty selection")
	}
	if _, ok := Apply("", buffer.Selection{Start: 0, End: 3}, Bold); ok {
		t.Fatalf("expected ok=false once clamped to an empty document")
	}
}

func TestApply_NormalizesAndClamps(t *testing.T) {
	got, ok := Apply("abc", buffer.Selection{Start: 9, End: 1}, Bold)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Text != "a**bc**" {
		t.Fatalf("text=%q, want %q", got.Text, "a**bc**")
	}
	if want := (buffer.Selection{Start: 1, End: 7}); got.Inserted != want {
		t.Fatalf("inserted=%v, want %v", got.Inserted, want)
	}
}

func TestApply_RuneOffsets(t *testing.T) {
	got, ok := Apply("h\u00e9llo w\u00f6rld", buffer.Selection{Start: 6, End: 11}, Italic)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Text != "h\u00e9llo *w\u00f6rld*" {
		t.Fatalf("text=%q", got.Text)
	}
}

func TestApply_UnknownFormatKeepsSelection(t *testing.T) {
	got, ok := Apply("abc", buffer.Selection{Start: 0, End: 3}, Format("underline"))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Text != "abc" {
		t.Fatalf("text=%q, want unchanged", got.Text)
	}
}

func TestParse(t *testing.T) {
	for _, f := range All() {
		got, ok := Parse(string(f))
		if !ok || got != f {
			t.Fatalf("Parse(%q)=(%q,%v)", f, got, ok)
		}
	}
	if _, ok := Parse("underline"); ok {
		t.Fatalf("expected unknown format")
	}
}
