package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmOverwriteExport
)

// Phase is the pointer phase of an InputEvent.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

const (
	dotRadius  = 10.0 // radius of every drawn point, in world units
	cellWidth  = 8.0  // world units per terminal column
	cellHeight = 16.0 // world units per terminal row

	stateHeader       = "SCRAWL"
	defaultStateFile  = "scrawl.state"
	defaultExportFile = "scrawl.png"
	exportPadding     = 20.0
)
