package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const captionHeight = 24.0

// renderPNG draws every point as a filled circle on a white background
// sized to the strokes' bounds, with a caption strip along the bottom.
func renderPNG(src StrokeSource, palette Palette, caption string) (*gg.Context, error) {
	strokes := src.Strokes()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, stroke := range strokes {
		for _, p := range stroke {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return nil, fmt.Errorf("nothing to export")
	}

	// Add padding
	margin := dotRadius + exportPadding
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin

	imageWidth := int(math.Ceil(maxX - minX))
	imageHeight := int(math.Ceil(maxY-minY) + captionHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	for _, stroke := range strokes {
		for _, p := range stroke {
			dc.SetColor(palette.RGBA(p.ColorID))
			dc.DrawCircle(p.X-minX, p.Y-minY, dotRadius)
			dc.Fill()
		}
	}

	if caption != "" {
		ttfFont, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		face := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetColor(color.Gray{Y: 96})
		dc.DrawStringAnchored(caption, exportPadding/2, float64(imageHeight)-captionHeight/2, 0, 0.5)
	}

	return dc, nil
}

func exportCaption(src StrokeSource) string {
	n := len(src.Strokes())
	if n == 1 {
		return "1 stroke"
	}
	return fmt.Sprintf("%d strokes", n)
}

// ExportPNG writes the strokes as a PNG image to w.
func ExportPNG(w io.Writer, src StrokeSource, palette Palette) error {
	dc, err := renderPNG(src, palette, exportCaption(src))
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (m *model) exportPNG(filename string) error {
	dc, err := renderPNG(m.history, m.palette, exportCaption(m.history))
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
