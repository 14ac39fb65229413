package main

import (
	"slices"
	"testing"
)

// draw feeds one gesture: Down at the first point, Move for the rest, Up.
func draw(h *StrokeHistory, pts ...[2]float64) {
	for i, p := range pts {
		phase := PhaseMove
		if i == 0 {
			phase = PhaseDown
		}
		h.HandleInput(InputEvent{Phase: phase, X: p[0], Y: p[1]})
	}
	h.HandleInput(InputEvent{Phase: PhaseUp})
}

func strokesEqual(a, b []Stroke) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestCommittedStrokeMatchesCapturedPoints(t *testing.T) {
	h := NewStrokeHistory(5)
	h.ChangeColor()
	h.ChangeColor()
	draw(h, [2]float64{1, 2}, [2]float64{3.5, 4}, [2]float64{5, 6.25})

	want := Stroke{{1, 2, 2}, {3.5, 4, 2}, {5, 6.25, 2}}
	got := h.Committed()
	if len(got) != 1 || !slices.Equal(got[0], want) {
		t.Fatalf("Committed() = %v, want [%v]", got, want)
	}
	if h.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", h.Cursor())
	}
	if h.Capturing() {
		t.Error("still capturing after pointer-up")
	}
}

func TestColorIsCapturedPerPoint(t *testing.T) {
	h := NewStrokeHistory(3)
	h.BeginOrContinueStroke(0, 0)
	h.ChangeColor()
	h.BeginOrContinueStroke(1, 1)
	h.CommitStroke()

	got := h.Committed()[0]
	if got[0].ColorID != 0 || got[1].ColorID != 1 {
		t.Errorf("color ids = %d,%d, want 0,1", got[0].ColorID, got[1].ColorID)
	}
}

func TestPartialStrokeVisibleDuringCapture(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{0, 0})
	h.BeginOrContinueStroke(10, 10)
	h.BeginOrContinueStroke(20, 20)

	if h.Cursor() != 1 {
		t.Fatalf("Cursor() = %d during capture, want 1", h.Cursor())
	}
	got := h.Strokes()
	if len(got) != 2 {
		t.Fatalf("len(Strokes()) = %d, want 2", len(got))
	}
	if want := (Stroke{{10, 10, 0}, {20, 20, 0}}); !slices.Equal(got[1], want) {
		t.Errorf("in-progress stroke = %v, want %v", got[1], want)
	}
	if len(h.Committed()) != 1 {
		t.Errorf("in-progress stroke leaked into Committed()")
	}
}

func TestCommitWhileIdleIsNoop(t *testing.T) {
	h := NewStrokeHistory(5)
	h.CommitStroke()
	h.HandleInput(InputEvent{Phase: PhaseUp})
	if h.Cursor() != 0 || len(h.Strokes()) != 0 {
		t.Errorf("idle commit changed state: cursor=%d strokes=%d", h.Cursor(), len(h.Strokes()))
	}
}

func TestCommitDoesNotTouchRedoBuffer(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1})
	h.Undo()
	draw(h, [2]float64{2, 2})
	if got := len(h.RedoBuffer()); got != 1 {
		t.Errorf("len(RedoBuffer()) = %d after commit, want 1", got)
	}
}

func TestUndoRedoScenario(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3})
	draw(h, [2]float64{4, 4}, [2]float64{5, 5})
	all := h.Committed()
	a, b := all[0], all[1]

	h.Undo()
	if got := h.Committed(); !strokesEqual(got, []Stroke{a}) {
		t.Errorf("after undo live = %v, want [A]", got)
	}
	if got := h.RedoBuffer(); !strokesEqual(got, []Stroke{b}) {
		t.Errorf("after undo redo = %v, want [B]", got)
	}

	h.Redo()
	if got := h.Committed(); !strokesEqual(got, []Stroke{a, b}) {
		t.Errorf("after redo live = %v, want [A B]", got)
	}
	if got := h.RedoBuffer(); len(got) != 0 {
		t.Errorf("after redo redo = %v, want empty", got)
	}
	if h.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", h.Cursor())
	}
}

func TestUndoAtZeroIsNoop(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1})
	h.Undo()
	before := h.Serialize()

	h.Undo()
	after := h.Serialize()
	if len(before) != len(after) {
		t.Fatalf("snapshot size changed: %d -> %d", len(before), len(after))
	}
	for k, v := range before {
		if after[k] != v {
			t.Errorf("%s changed: %q -> %q", k, v, after[k])
		}
	}
}

func TestRedoEmptyIsNoop(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1})
	h.Redo()
	if h.Cursor() != 1 || len(h.Committed()) != 1 {
		t.Errorf("redo with empty buffer changed state: cursor=%d", h.Cursor())
	}
}

func TestUndoRedoRestoresLength(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		h := NewStrokeHistory(5)
		for i := 0; i < n; i++ {
			draw(h, [2]float64{float64(i), float64(i)})
		}
		before := h.Committed()
		h.Undo()
		h.Redo()
		if got := h.Committed(); !strokesEqual(got, before) {
			t.Errorf("n=%d: live after undo+redo = %v, want %v", n, got, before)
		}
	}
}

func TestRedoAppendsAtEndAfterInterleavedDraw(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1}) // A
	draw(h, [2]float64{2, 2}) // B
	h.Undo()
	draw(h, [2]float64{3, 3}) // C
	h.Redo()

	got := h.Committed()
	want := []Stroke{{{1, 1, 0}}, {{3, 3, 0}}, {{2, 2, 0}}}
	if !strokesEqual(got, want) {
		t.Errorf("live = %v, want %v", got, want)
	}
}

func TestUndoDuringCapture(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1})
	h.BeginOrContinueStroke(9, 9)
	h.Undo()
	h.CommitStroke()

	want := []Stroke{{{9, 9, 0}}}
	if got := h.Committed(); !strokesEqual(got, want) {
		t.Errorf("live = %v, want %v", got, want)
	}
	if h.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", h.Cursor())
	}
}

func TestChangeColorCycles(t *testing.T) {
	for _, size := range []int{1, 2, 5} {
		h := NewStrokeHistory(size)
		h.ChangeColor() // start away from zero
		start := h.ColorIndex()
		for i := 0; i < size; i++ {
			h.ChangeColor()
			if h.ColorIndex() < 0 || h.ColorIndex() >= size {
				t.Fatalf("size %d: ColorIndex() = %d out of range", size, h.ColorIndex())
			}
		}
		if h.ColorIndex() != start {
			t.Errorf("size %d: ColorIndex() = %d after full cycle, want %d", size, h.ColorIndex(), start)
		}
	}
}

func TestReadersDoNotAlias(t *testing.T) {
	h := NewStrokeHistory(5)
	draw(h, [2]float64{1, 1})
	got := h.Strokes()
	got[0][0].X = 100
	if h.Committed()[0][0].X != 1 {
		t.Error("mutating Strokes() result changed the history")
	}
}
