// Package history keeps whole-document snapshots for undo and redo.
//
// Both stacks only grow by push and only shrink by pop from the end. There is
// no depth limit. Recording a new snapshot leaves the redo stack untouched, so
// entries undone before a newer edit stay reachable through Redo.
package history

// History is the undo/redo state of one document. The zero value is empty and
// ready to use.
type History struct {
	undo []string
	redo []string
}

// New returns an empty History.
func New() *History { return &History{} }

// Record pushes current onto the undo stack. Callers record the pre-edit
// document immediately before applying a formatting change.
func (h *History) Record(current string) {
	h.undo = append(h.undo, current)
}

// Undo pops the most recent snapshot and pushes current onto the redo stack.
// It reports false and changes nothing when there is nothing to undo.
func (h *History) Undo(current string) (string, bool) {
	prev, ok := pop(&h.undo)
	if !ok {
		return current, false
	}
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo pops the most recently undone snapshot and pushes current onto the
// undo stack. It reports false and changes nothing when there is nothing to
// redo.
func (h *History) Redo(current string) (string, bool) {
	next, ok := pop(&h.redo)
	if !ok {
		return current, false
	}
	h.undo = append(h.undo, current)
	return next, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) { return len(h.undo), len(h.redo) }

func pop(stack *[]string) (string, bool) {
	s := *stack
	if len(s) == 0 {
		return "", false
	}
	i := len(s) - 1
	top := s[i]
	s[i] = ""
	*stack = s[:i]
	return top, true
}
