package main

// Point is a single recorded sample. ColorID indexes the palette that was
// active when the point was captured.
type Point struct {
	X       float64
	Y       float64
	ColorID int
}

// Stroke is one gesture's points in capture order.
type Stroke []Point

// InputEvent is what an input source delivers to the history.
type InputEvent struct {
	Phase Phase
	X     float64
	Y     float64
}

// StrokeSource is the read-only view renderers draw from.
type StrokeSource interface {
	Strokes() []Stroke
}

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	penDown        bool
	mouseDown      bool
	history        *StrokeHistory
	palette        Palette
	mode           Mode
	help           bool
	confirmAction  ConfirmAction
	exportPath     string
	errorMessage   string
	successMessage string
	config         *Config
}
