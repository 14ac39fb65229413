package main

import tea "github.com/charmbracelet/bubbletea"

// cellToWorld maps a terminal cell to the world coordinates of its center.
func cellToWorld(cx, cy int) (float64, float64) {
	return float64(cx)*cellWidth + cellWidth/2, float64(cy)*cellHeight + cellHeight/2
}

// mouseEvent translates a bubbletea mouse message into an InputEvent.
// Only the left button draws; motion counts only while a gesture is open.
func (m *model) mouseEvent(msg tea.MouseMsg) (InputEvent, bool) {
	x, y := cellToWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return InputEvent{}, false
		}
		m.mouseDown = true
		return InputEvent{Phase: PhaseDown, X: x, Y: y}, true
	case tea.MouseActionMotion:
		if !m.mouseDown {
			return InputEvent{}, false
		}
		return InputEvent{Phase: PhaseMove, X: x, Y: y}, true
	case tea.MouseActionRelease:
		if !m.mouseDown {
			return InputEvent{}, false
		}
		m.mouseDown = false
		return InputEvent{Phase: PhaseUp, X: x, Y: y}, true
	}
	return InputEvent{}, false
}

// penEvent is the keyboard counterpart of mouseEvent, emitted at the pen
// cursor.
func (m *model) penEvent(phase Phase) InputEvent {
	x, y := cellToWorld(m.cursorX, m.cursorY)
	return InputEvent{Phase: phase, X: x, Y: y}
}

func (m *model) togglePen() {
	if m.penDown {
		m.penDown = false
		m.history.HandleInput(m.penEvent(PhaseUp))
		return
	}
	m.penDown = true
	m.history.HandleInput(m.penEvent(PhaseDown))
}
