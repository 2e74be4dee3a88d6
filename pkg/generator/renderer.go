// renderer.go - Library-backed Renderer: canvas, text overlay, border, encode.
package generator

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// ImageRenderer composes placeholder images in memory.
type ImageRenderer struct {
	fonts  *FontManager
	logger *zap.Logger
}

// NewImageRenderer creates a renderer drawing text with fonts.
func NewImageRenderer(fonts *FontManager, logger *zap.Logger) *ImageRenderer {
	return &ImageRenderer{fonts: fonts, logger: logger}
}

// Render draws the canvas, the text overlay and the optional border. Encoding
// is deferred until the returned pipeline is written.
func (r *ImageRenderer) Render(ctx context.Context, req *RenderRequest) (Pipeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Canvas.Width <= 0 || req.Canvas.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", req.Canvas.Width, req.Canvas.Height)
	}

	canvas := imaging.New(req.Canvas.Width, req.Canvas.Height, req.Canvas.Background)

	if req.Overlay.Text != "" {
		face, err := r.fonts.Face(req.Overlay.FontSize)
		if err != nil {
			return nil, err
		}
		drawOverlay(canvas, req.Overlay, face)
	}

	var img image.Image = canvas
	if b := req.Border; b != nil && b.Inset > 0 {
		framed := imaging.New(canvas.Bounds().Dx()+2*b.Inset, canvas.Bounds().Dy()+2*b.Inset, b.Color)
		img = imaging.Paste(framed, canvas, image.Pt(b.Inset, b.Inset))
	}

	r.logger.Debug("Rendered placeholder",
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.String("format", string(req.Encoding.Format)))

	return &ImagePipeline{img: img, encoding: req.Encoding}, nil
}

// ImagePipeline is a rendered image paired with its encoding.
type ImagePipeline struct {
	img      image.Image
	encoding Encoding
}

// Image returns the rendered, unencoded image.
func (p *ImagePipeline) Image() image.Image {
	return p.img
}

// Encode writes the encoded image to w.
func (p *ImagePipeline) Encode(w io.Writer) error {
	return Encode(w, p.img, p.encoding)
}

// ToFile encodes the image to path. The file appears only once fully written.
func (p *ImagePipeline) ToFile(path string) error {
	return WriteFileAtomic(path, p.Encode)
}
