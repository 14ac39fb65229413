package main

import "slices"

// StrokeHistory records strokes and keeps a linear undo/redo history over
// them. strokes holds exactly cursor live strokes; redo is a LIFO of
// strokes removed by Undo. It is not safe for concurrent use: input
// handling and rendering are expected to run on the same goroutine.
type StrokeHistory struct {
	paletteSize int
	colorIndex  int
	cursor      int
	strokes     []Stroke
	redo        []Stroke
	active      Stroke
	capturing   bool
}

func NewStrokeHistory(paletteSize int) *StrokeHistory {
	if paletteSize < 1 {
		paletteSize = 1
	}
	return &StrokeHistory{
		paletteSize: paletteSize,
		strokes:     []Stroke{},
		redo:        []Stroke{},
	}
}

// BeginOrContinueStroke appends a point in the current color to the
// in-progress stroke, starting one if the history is idle.
func (h *StrokeHistory) BeginOrContinueStroke(x, y float64) {
	if !h.capturing {
		h.capturing = true
		h.active = Stroke{}
	}
	h.active = append(h.active, Point{X: x, Y: y, ColorID: h.colorIndex})
}

// CommitStroke finalizes the in-progress stroke at slot cursor. It does
// nothing while idle and never touches the redo buffer.
func (h *StrokeHistory) CommitStroke() {
	if !h.capturing {
		return
	}
	h.strokes = append(h.strokes[:h.cursor], slices.Clone(h.active))
	h.cursor++
	h.active = nil
	h.capturing = false
}

func (h *StrokeHistory) HandleInput(ev InputEvent) {
	switch ev.Phase {
	case PhaseDown, PhaseMove:
		h.BeginOrContinueStroke(ev.X, ev.Y)
	case PhaseUp:
		h.CommitStroke()
	}
}

func (h *StrokeHistory) ChangeColor() {
	h.colorIndex = (h.colorIndex + 1) % h.paletteSize
}

func (h *StrokeHistory) ColorIndex() int { return h.colorIndex }

func (h *StrokeHistory) Cursor() int { return h.cursor }

func (h *StrokeHistory) Capturing() bool { return h.capturing }

// Strokes returns the live strokes followed by the in-progress stroke, if
// any. The result shares no memory with the history.
func (h *StrokeHistory) Strokes() []Stroke {
	out := cloneStrokes(h.strokes[:h.cursor])
	if h.capturing {
		out = append(out, slices.Clone(h.active))
	}
	return out
}

// Committed returns only the live strokes.
func (h *StrokeHistory) Committed() []Stroke {
	return cloneStrokes(h.strokes[:h.cursor])
}

// RedoBuffer returns the undone strokes, most recently undone last.
func (h *StrokeHistory) RedoBuffer() []Stroke {
	return cloneStrokes(h.redo)
}

func (h *StrokeHistory) Active() Stroke {
	return slices.Clone(h.active)
}

func (h *StrokeHistory) CanUndo() bool { return h.cursor > 0 }

func (h *StrokeHistory) CanRedo() bool { return len(h.redo) > 0 }

func cloneStrokes(src []Stroke) []Stroke {
	out := make([]Stroke, len(src))
	for i, s := range src {
		out[i] = slices.Clone(s)
	}
	return out
}
