// fonts.go - Font loading with custom TTF/OTF support and an embedded fallback.
// Uses golang.org/x/image/font for OpenType rendering. Defaults to the Go Regular
// font when no custom font is configured or when loading it fails.
package generator

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontFamily is the family requested by placeholder overlays.
const DefaultFontFamily = "sans"

// FontManager parses one font and hands out faces per pixel size.
// Faces are cached; a FontManager is not safe for concurrent use.
type FontManager struct {
	parsed *opentype.Font
	faces  map[int]font.Face
}

// NewFontManager loads the font at customPath. If customPath is empty or
// unreadable, the embedded Go Regular font is used instead.
func NewFontManager(customPath string, logger *zap.Logger) (*FontManager, error) {
	var fontData []byte

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			logger.Warn("Could not load custom font, using default",
				zap.String("path", customPath), zap.Error(err))
		} else {
			fontData = data
		}
	}

	if fontData == nil {
		fontData = goregular.TTF
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return &FontManager{
		parsed: parsed,
		faces:  make(map[int]font.Face),
	}, nil
}

// Face returns a face whose em size is size pixels.
func (fm *FontManager) Face(size int) (font.Face, error) {
	if face, ok := fm.faces[size]; ok {
		return face, nil
	}

	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	fm.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (fm *FontManager) Close() error {
	for size, face := range fm.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(fm.faces, size)
	}
	return nil
}
