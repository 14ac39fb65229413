package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas draws strokes into a grid of terminal cells. Every point is a
// filled circle of dotRadius world units; a cell is painted when its center
// falls inside a circle. Later points paint over earlier ones.
type Canvas struct {
	palette Palette
}

func NewCanvas(palette Palette) *Canvas {
	return &Canvas{palette: palette}
}

// Rasterize returns the color id of each cell in a width x height viewport,
// or -1 for empty cells.
func (c *Canvas) Rasterize(src StrokeSource, width, height int) [][]int {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	colorMap := make([][]int, height)
	for i := range colorMap {
		colorMap[i] = make([]int, width)
		for j := range colorMap[i] {
			colorMap[i][j] = -1
		}
	}

	for _, stroke := range src.Strokes() {
		for _, p := range stroke {
			c.fillCircle(colorMap, p, width, height)
		}
	}
	return colorMap
}

func (c *Canvas) fillCircle(colorMap [][]int, p Point, width, height int) {
	minX := int(math.Floor((p.X - dotRadius) / cellWidth))
	maxX := int(math.Floor((p.X + dotRadius) / cellWidth))
	minY := int(math.Floor((p.Y - dotRadius) / cellHeight))
	maxY := int(math.Floor((p.Y + dotRadius) / cellHeight))

	for cy := max(minY, 0); cy <= maxY && cy < height; cy++ {
		for cx := max(minX, 0); cx <= maxX && cx < width; cx++ {
			wx, wy := cellToWorld(cx, cy)
			dx, dy := wx-p.X, wy-p.Y
			if dx*dx+dy*dy <= dotRadius*dotRadius {
				colorMap[cy][cx] = p.ColorID
			}
		}
	}
}

// Render produces one styled string per row. Runs of equal color share a
// single lipgloss style so the output stays compact.
func (c *Canvas) Render(src StrokeSource, width, height int, cursorX, cursorY int, showCursor, penDown bool) []string {
	colorMap := c.Rasterize(src, width, height)

	cursorStyle := lipgloss.NewStyle().Reverse(true)
	cursorGlyph := "+"
	if penDown {
		cursorGlyph = "●"
	}

	lines := make([]string, len(colorMap))
	for y, row := range colorMap {
		var line strings.Builder
		runStart := 0
		flush := func(end int) {
			if end <= runStart {
				return
			}
			line.WriteString(c.renderRun(row[runStart], end-runStart))
		}
		for x := range row {
			if showCursor && x == cursorX && y == cursorY {
				flush(x)
				style := cursorStyle
				if row[x] >= 0 {
					style = style.Foreground(c.palette.Terminal(row[x]))
				}
				line.WriteString(style.Render(cursorGlyph))
				runStart = x + 1
				continue
			}
			if x > runStart && row[x] != row[x-1] {
				flush(x)
				runStart = x
			}
		}
		flush(len(row))
		lines[y] = line.String()
	}
	return lines
}

func (c *Canvas) renderRun(colorID, n int) string {
	blank := strings.Repeat(" ", n)
	if colorID < 0 {
		return blank
	}
	return lipgloss.NewStyle().Background(c.palette.Terminal(colorID)).Render(blank)
}
