package main

import "log"

// Undo moves the newest live stroke onto the redo buffer. It is a no-op
// when there is nothing to undo.
func (h *StrokeHistory) Undo() {
	if h.cursor == 0 {
		return
	}

	h.cursor--
	stroke := h.strokes[h.cursor]
	h.strokes = h.strokes[:h.cursor]
	h.redo = append(h.redo, stroke)
}

// Redo pops the most recently undone stroke and appends it to the end of
// the live list. After an undo followed by new drawing the restored stroke
// lands after the new one, not at its original position.
func (h *StrokeHistory) Redo() {
	if len(h.redo) == 0 {
		return
	}

	lastIndex := len(h.redo) - 1
	stroke := h.redo[lastIndex]
	h.redo = h.redo[:lastIndex]
	h.strokes = append(h.strokes[:h.cursor], stroke)
	h.cursor++
}

func (m *model) undo() {
	if !m.history.CanUndo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.history.Undo()
	log.Printf("[history] undo: cursor=%d redo=%d", m.history.Cursor(), len(m.history.redo))
}

func (m *model) redo() {
	if !m.history.CanRedo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.history.Redo()
	log.Printf("[history] redo: cursor=%d redo=%d", m.history.Cursor(), len(m.history.redo))
}

// clearAll undoes every live stroke so the clear itself can be redone
// stroke by stroke.
func (m *model) clearAll() {
	n := 0
	for m.history.CanUndo() {
		m.history.Undo()
		n++
	}
	log.Printf("[history] cleared %d strokes", n)
}
