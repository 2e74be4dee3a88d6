// overlay.go - Text overlay layout: wrapping, alignment and gravity.
package generator

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawOverlay renders o onto dst, wrapping lines to o.WrapWidth and placing
// the text block according to o.Gravity and o.Align.
func drawOverlay(dst draw.Image, o TextOverlay, face font.Face) {
	lines := layoutLines(o.Text, o.WrapWidth, face)
	if len(lines) == 0 {
		return
	}

	bounds := dst.Bounds()
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	blockHeight := lineHeight * len(lines)

	var top int
	switch o.Gravity {
	case GravityNorth:
		top = bounds.Min.Y
	case GravitySouth:
		top = bounds.Max.Y - blockHeight
	default:
		top = bounds.Min.Y + (bounds.Dy()-blockHeight)/2
	}

	src := image.NewUniform(o.Color)
	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()

		var x int
		switch o.Align {
		case AlignLeft:
			x = bounds.Min.X
		case AlignRight:
			x = bounds.Max.X - width
		default:
			x = bounds.Min.X + (bounds.Dx()-width)/2
		}

		drawer := &font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: face,
			Dot:  fixed.P(x, top+i*lineHeight+ascent),
		}
		drawer.DrawString(line)
	}
}

// layoutLines splits text on explicit newlines, then word-wraps every
// paragraph to maxWidth.
func layoutLines(text string, maxWidth int, face font.Face) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapText(paragraph, maxWidth, face)...)
	}
	return lines
}

// wrapText breaks text into lines that each fit within maxWidth pixels,
// using the metrics of face. A single word wider than maxWidth gets its own line.
func wrapText(text string, maxWidth int, face font.Face) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if font.MeasureString(face, testLine).Ceil() > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	lines = append(lines, currentLine)

	return lines
}
