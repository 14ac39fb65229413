package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
)

// restoreHistory is the lenient boundary around StrokeHistory.Restore: a
// malformed snapshot leaves h as it was and is reported, never fatal.
func restoreHistory(h *StrokeHistory, s Snapshot) error {
	if err := h.Restore(s); err != nil {
		var bad *MalformedSnapshotError
		if errors.As(err, &bad) {
			log.Printf("[state] rejected snapshot at %q: %s", bad.Key, bad.Reason)
		}
		return err
	}
	log.Printf("[state] restored %d strokes, %d redoable", h.Cursor(), len(h.redo))
	return nil
}

// loadHistory rebuilds the history saved at path. Any failure yields an
// empty history; a missing file is not reported as an error.
func loadHistory(path string, paletteSize int) (*StrokeHistory, error) {
	h := NewStrokeHistory(paletteSize)
	s, err := loadSnapshot(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		log.Printf("[state] %v", err)
		return h, err
	}
	if err := restoreHistory(h, s); err != nil {
		return NewStrokeHistory(paletteSize), err
	}
	return h, nil
}

func (m *model) saveState() error {
	path := m.config.StatePath()
	if err := saveSnapshot(path, m.history.Serialize()); err != nil {
		log.Printf("[state] %v", err)
		return err
	}
	log.Printf("[state] saved %d strokes to %s", m.history.Cursor(), path)
	return nil
}

func (m *model) copySnapshot() error {
	if err := clipboard.WriteAll(m.history.Serialize().String()); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (m *model) pasteSnapshot() error {
	text, err := readClipboardText()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	s, err := ReadSnapshot(strings.NewReader(cleanClipboardText(text)))
	if err != nil {
		return err
	}
	return restoreHistory(m.history, s)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func cleanClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimLeft(text, " \t\n")
}

// fitWidth truncates s to the terminal width, counting wide runes.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
