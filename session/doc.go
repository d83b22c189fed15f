// Package session owns one editor's state: the document and its selection,
// the undo/redo history and the display settings, persisted through an
// injected store.Store.
//
// Every user intent is a Command. Dispatch routes it through a fixed table of
// state transitions; the UI layer only dispatches commands and re-renders
// from the session afterwards.
//
// History records a snapshot only before formatting commands. Plain typing
// (reported through the Input command) is persisted but never snapshotted, so
// undo steps back over formatting operations only. Recording a new snapshot
// does not clear the redo stack.
package session
