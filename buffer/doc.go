// Package buffer implements the editing surface for a marknote document.
//
// The document is a flat string. Offsets are 0-based rune offsets and
// selections are half-open ranges [Start, End). Cursor movement and deletion
// step over whole grapheme clusters so the cursor never lands inside one.
//
// Buffer keeps no history. Typing edits go straight to the text; snapshotting
// for undo is the caller's decision (see package session).
package buffer
