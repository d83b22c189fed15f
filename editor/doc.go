// Package editor provides the Bubble Tea model for the notepad: a source pane
// backed by a session buffer, a live preview pane, the formatting toolbar,
// the folder bar and the settings dialog.
//
// All document and settings changes go through session.Dispatch. The model
// only owns presentation state: sizes, scroll offsets, the animation frame
// and whether the settings dialog is open.
package editor
