// Package generator renders placeholder images and encodes them as PNG, JPEG or WebP.
//
// All output follows a unified pipeline: build an image.Image from a
// RenderRequest first, then encode it in the requested format.
package generator

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

// LossyQuality is the encoder quality used for jpg/jpeg/webp.
const LossyQuality = 90

// Formats lists every supported format in display order.
var Formats = []Format{FormatPNG, FormatJPG, FormatJPEG, FormatWebP}

// ParseFormat matches s case-insensitively against the supported formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q: use png, jpg, jpeg or webp", s)
}

// IsLossy reports whether the format takes a quality setting.
func (f Format) IsLossy() bool {
	return f == FormatJPG || f == FormatJPEG || f == FormatWebP
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// IsKnownExtension reports whether ext (with or without dot, any case) is one
// of the supported image extensions.
func IsKnownExtension(ext string) bool {
	_, err := ParseFormat(strings.TrimPrefix(ext, "."))
	return err == nil
}

// Encode writes img to w in the requested encoding.
func Encode(w io.Writer, img image.Image, enc Encoding) error {
	quality := enc.Quality
	if quality <= 0 || quality > 100 {
		quality = LossyQuality
	}

	switch enc.Format {
	case FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	case FormatJPG, FormatJPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case FormatWebP:
		return webp.Encode(w, img, webp.Options{Quality: quality})
	default:
		return fmt.Errorf("unsupported format %q: use png, jpg, jpeg or webp", enc.Format)
	}
}
