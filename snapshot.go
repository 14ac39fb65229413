package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Snapshot is the flat key/value form of a StrokeHistory. Point lists are
// stored as "x:y:c" triples joined by commas.
type Snapshot map[string]string

const (
	keyColorIndex  = "colorIndex"
	keyCursor      = "cursor"
	keyActive      = "active"
	prefixStroke   = "strokes_"
	prefixRedo     = "redo_"
	maxStateLine   = 16 << 20
	pointSeparator = ","
	fieldSeparator = ":"
)

// MalformedSnapshotError reports a snapshot that cannot be rebuilt into a
// consistent history.
type MalformedSnapshotError struct {
	Key    string
	Reason string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed snapshot: %s: %s", e.Key, e.Reason)
}

func malformed(key, format string, args ...interface{}) error {
	return &MalformedSnapshotError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// Serialize captures the full history state. The snapshot shares no memory
// with the history.
func (h *StrokeHistory) Serialize() Snapshot {
	s := Snapshot{
		keyColorIndex: strconv.Itoa(h.colorIndex),
		keyCursor:     strconv.Itoa(h.cursor),
		keyActive:     encodeStroke(h.active),
	}
	for i, stroke := range h.strokes[:h.cursor] {
		s[prefixStroke+strconv.Itoa(i)] = encodeStroke(stroke)
	}
	for j, stroke := range h.redo {
		s[prefixRedo+strconv.Itoa(j)] = encodeStroke(stroke)
	}
	return s
}

// Restore replaces the whole history with the snapshot's contents. On
// error the history is left unchanged.
func (h *StrokeHistory) Restore(s Snapshot) error {
	colorIndex, err := requireInt(s, keyColorIndex)
	if err != nil {
		return err
	}
	if colorIndex < 0 || colorIndex >= h.paletteSize {
		return malformed(keyColorIndex, "%d outside palette of %d colors", colorIndex, h.paletteSize)
	}

	cursor, err := requireInt(s, keyCursor)
	if err != nil {
		return err
	}
	if cursor < 0 {
		return malformed(keyCursor, "negative cursor %d", cursor)
	}

	strokes, err := h.scanStrokes(s, prefixStroke)
	if err != nil {
		return err
	}
	if cursor > len(strokes) {
		return malformed(keyCursor, "cursor %d but %s%d is missing", cursor, prefixStroke, len(strokes))
	}

	redo, err := h.scanStrokes(s, prefixRedo)
	if err != nil {
		return err
	}

	var active Stroke
	if raw, ok := s[keyActive]; ok {
		if active, err = h.decodeChecked(keyActive, raw); err != nil {
			return err
		}
	}

	// Slots at or past cursor are stale and dropped.
	h.colorIndex = colorIndex
	h.cursor = cursor
	h.strokes = strokes[:cursor]
	h.redo = redo
	h.active = active
	h.capturing = len(active) > 0
	return nil
}

// scanStrokes reads prefix0, prefix1, ... until the first missing index.
// Any key with the prefix left over after the scan is a gap in the run.
func (h *StrokeHistory) scanStrokes(s Snapshot, prefix string) ([]Stroke, error) {
	strokes := []Stroke{}
	for i := 0; ; i++ {
		key := prefix + strconv.Itoa(i)
		raw, ok := s[key]
		if !ok {
			break
		}
		stroke, err := h.decodeChecked(key, raw)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, stroke)
	}

	for key := range s {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil || idx < 0 {
			return nil, malformed(key, "bad index")
		}
		if idx >= len(strokes) {
			return nil, malformed(key, "index %d follows missing %s%d", idx, prefix, len(strokes))
		}
	}
	return strokes, nil
}

func (h *StrokeHistory) decodeChecked(key, raw string) (Stroke, error) {
	stroke, err := decodeStroke(raw)
	if err != nil {
		return nil, malformed(key, "%v", err)
	}
	for _, p := range stroke {
		if p.ColorID < 0 || p.ColorID >= h.paletteSize {
			return nil, malformed(key, "color id %d outside palette of %d colors", p.ColorID, h.paletteSize)
		}
	}
	return stroke, nil
}

func requireInt(s Snapshot, key string) (int, error) {
	raw, ok := s[key]
	if !ok {
		return 0, malformed(key, "missing")
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, malformed(key, "not an integer: %q", raw)
	}
	return v, nil
}

func encodeStroke(stroke Stroke) string {
	parts := make([]string, len(stroke))
	for i, p := range stroke {
		parts[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + fieldSeparator +
			strconv.FormatFloat(p.Y, 'g', -1, 64) + fieldSeparator +
			strconv.Itoa(p.ColorID)
	}
	return strings.Join(parts, pointSeparator)
}

func decodeStroke(raw string) (Stroke, error) {
	stroke := Stroke{}
	if strings.TrimSpace(raw) == "" {
		return stroke, nil
	}
	for i, part := range strings.Split(raw, pointSeparator) {
		fields := strings.Split(part, fieldSeparator)
		if len(fields) != 3 {
			return nil, fmt.Errorf("point %d: want x:y:color, got %q", i, part)
		}
		x, err := parseCoord(fields[0])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		y, err := parseCoord(fields[1])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		c, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("point %d: bad color id %q", i, fields[2])
		}
		stroke = append(stroke, Point{X: x, Y: y, ColorID: c})
	}
	return stroke, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite coordinate %q", s)
	}
	return v, nil
}

// WriteTo writes the snapshot as a header line followed by sorted
// key=value lines.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", stateHeader)
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s=%s\n", k, s[k])
	}
	return buf.WriteTo(w)
}

func (s Snapshot) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// ReadSnapshot parses the form written by WriteTo. It checks only the
// framing; Restore validates the contents.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStateLine)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != stateHeader {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invalid state format: missing %s header", stateHeader)
	}

	s := Snapshot{}
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts := strings.SplitN(text, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid state format: line %d has no '='", line)
		}
		s[strings.TrimSpace(parts[0])] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func saveSnapshot(path string, s Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	if _, err := s.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	return file.Close()
}

func loadSnapshot(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := ReadSnapshot(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}
