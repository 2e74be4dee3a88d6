package placehold

import (
	"math"

	"github.com/xob0t/placehold/pkg/generator"
	"github.com/xob0t/placehold/pkg/options"
)

// Border and font sizing policy.
const (
	BorderInset   = 2
	BorderColor   = "#333333"
	MinAutoFont   = 12
	MaxAutoFont   = 72
	autoFontRatio = 0.08
)

// AutoFontSize scales the font with the smaller canvas side:
// round(min(w, h) * 0.08), clamped to [MinAutoFont, MaxAutoFont].
func AutoFontSize(d options.Dimensions) int {
	size := int(math.Round(float64(min(d.Width, d.Height)) * autoFontRatio))
	return max(MinAutoFont, min(size, MaxAutoFont))
}

// BuildRequest turns validated settings into a render request. When the
// border is enabled the output grows by 2*BorderInset on each axis, so an
// 800x600 request produces an 804x604 image.
func BuildRequest(s options.Settings) *generator.RenderRequest {
	d := s.Dimensions

	text := s.Text
	if text == "" {
		text = d.Label()
	}

	fontSize := s.FontSize
	if fontSize <= 0 {
		fontSize = AutoFontSize(d)
	}

	req := &generator.RenderRequest{
		Canvas: generator.Canvas{
			Width:      d.Width,
			Height:     d.Height,
			Background: generator.ParseHexNRGBA(s.Background),
		},
		Overlay: generator.TextOverlay{
			Text:       text,
			Color:      generator.ParseHexNRGBA(s.Color),
			FontFamily: generator.DefaultFontFamily,
			FontSize:   fontSize,
			Align:      generator.AlignCenter,
			WrapWidth:  d.Width,
			Gravity:    generator.GravityCenter,
		},
		Encoding: generator.Encoding{Format: s.Format},
	}

	if s.Format.IsLossy() {
		req.Encoding.Quality = generator.LossyQuality
	}

	if s.Border {
		req.Border = &generator.Border{
			Inset: BorderInset,
			Color: generator.ParseHexNRGBA(BorderColor),
		}
	}

	return req
}
