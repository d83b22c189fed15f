package editor

import (
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const modalHint = "press any key to close"

func (m *Model) openModal(kind modalKind, body string) {
	m.modal = kind
	m.modalBody = body
}

func (m *Model) closeModal() {
	m.modal = modalNone
	m.modalBody = ""
}

// withModal composites the open dialog over base, centered.
func (m Model) withModal(base string) string {
	if m.modal == modalNone {
		return base
	}
	st := m.style()
	box := st.Modal.Render(m.modalBody + "\n\n" + st.Status.Render(modalHint))
	return overlay.Composite(box, base, overlay.Center, overlay.Center, 0, 0)
}
