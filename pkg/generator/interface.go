package generator

import (
	"context"
	"image/color"
)

// Renderer turns a declarative RenderRequest into an encodable Pipeline.
type Renderer interface {
	Render(ctx context.Context, req *RenderRequest) (Pipeline, error)
}

// Pipeline is a rendered, not yet encoded image. Writing it to a path is the
// only capability callers rely on.
type Pipeline interface {
	ToFile(path string) error
}

// Alignment of text lines inside the wrap box.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Gravity places the text block on the canvas.
type Gravity string

const (
	GravityCenter Gravity = "center"
	GravityNorth  Gravity = "north"
	GravitySouth  Gravity = "south"
)

// RenderRequest describes one placeholder image.
type RenderRequest struct {
	Canvas   Canvas
	Overlay  TextOverlay
	Border   *Border // nil means no border
	Encoding Encoding
}

// Canvas is the base pixel buffer.
type Canvas struct {
	Width      int
	Height     int
	Background color.NRGBA
}

// TextOverlay is the text layer composited over the canvas.
type TextOverlay struct {
	Text       string
	Color      color.NRGBA
	FontFamily string
	FontSize   int // pixels
	Align      Alignment
	WrapWidth  int // pixels, <= 0 disables wrapping
	Gravity    Gravity
}

// Border extends the image by Inset pixels on every side.
type Border struct {
	Inset int
	Color color.NRGBA
}

// Encoding selects the output codec.
type Encoding struct {
	Format  Format
	Quality int // 1-100, lossy formats only
}

// OutputSize reports the final image size, border included.
func (r *RenderRequest) OutputSize() (width, height int) {
	width, height = r.Canvas.Width, r.Canvas.Height
	if r.Border != nil && r.Border.Inset > 0 {
		width += 2 * r.Border.Inset
		height += 2 * r.Border.Inset
	}
	return width, height
}
