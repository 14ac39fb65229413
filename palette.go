package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is one palette entry.
type Swatch struct {
	Name  string
	Color colorful.Color
}

// Palette is the fixed, ordered set of drawing colors. Point.ColorID
// indexes into it.
type Palette []Swatch

var namedColors = map[string]string{
	"red":     "#ff0000",
	"white":   "#ffffff",
	"green":   "#00ff00",
	"yellow":  "#ffff00",
	"blue":    "#0000ff",
	"black":   "#000000",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
	"gray":    "#888888",
	"orange":  "#ff8800",
}

var defaultPaletteNames = []string{"red", "white", "green", "yellow", "blue"}

func DefaultPalette() Palette {
	p, _ := ParsePalette(defaultPaletteNames)
	return p
}

// ParsePalette accepts color names from namedColors or #rrggbb values.
func ParsePalette(entries []string) (Palette, error) {
	var p Palette
	for _, entry := range entries {
		name := strings.ToLower(strings.TrimSpace(entry))
		if name == "" {
			continue
		}
		hex := name
		if named, ok := namedColors[name]; ok {
			hex = named
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q", entry)
		}
		p = append(p, Swatch{Name: name, Color: c})
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	return p, nil
}

func (p Palette) swatch(id int) Swatch {
	if id < 0 || id >= len(p) {
		return Swatch{Name: "black", Color: colorful.Color{}}
	}
	return p[id]
}

// RGBA resolves a color id for image rendering.
func (p Palette) RGBA(id int) color.RGBA {
	r, g, b := p.swatch(id).Color.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Terminal resolves a color id for lipgloss styling.
func (p Palette) Terminal(id int) lipgloss.Color {
	return lipgloss.Color(p.swatch(id).Color.Hex())
}

func (p Palette) Name(id int) string {
	return p.swatch(id).Name
}
