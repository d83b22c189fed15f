// Package grapheme wraps uniseg for the cluster arithmetic the buffer and the
// editor need. Offsets returned here are rune offsets, matching the units of
// buffer.Selection.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets at which clusters of text start,
// followed by the total rune length. "ab" yields [0 1 2].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the cluster boundary strictly before off, or 0.
func Prev(bounds []int, off int) int {
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < off {
			return bounds[i]
		}
	}
	return 0
}

// Next returns the cluster boundary strictly after off, or the last boundary.
func Next(bounds []int, off int) int {
	for _, b := range bounds {
		if b > off {
			return b
		}
	}
	if len(bounds) == 0 {
		return 0
	}
	return bounds[len(bounds)-1]
}

// IsSpace reports whether every rune in cluster is Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
