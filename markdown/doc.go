// Package markdown turns note text into preview HTML.
//
// The transform is a fixed, ordered list of pattern substitutions, not a
// markdown parser: there is no escaping, no nesting analysis, no grouping of
// list items and no tables. Later rules see the output of earlier ones, which
// is what lets bold (`**x**`) win over italic (`*x*`).
//
// Render is pure and safe to call on every keystroke.
package markdown
