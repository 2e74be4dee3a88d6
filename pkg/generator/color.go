// color.go - Hex color validation, normalization and conversion.
package generator

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// FallbackColor is what NormalizeHexColor returns for unparseable input.
const FallbackColor = "#000000FF"

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{3}|[A-Fa-f0-9]{4}|[A-Fa-f0-9]{6}|[A-Fa-f0-9]{8})$`)

// IsValidHexColor accepts "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// NormalizeHexColor expands any accepted shape to uppercase "#RRGGBBAA".
// Short shapes duplicate each nibble; missing alpha becomes FF.
// Invalid input yields FallbackColor (opaque black).
func NormalizeHexColor(s string) string {
	if !IsValidHexColor(s) {
		return FallbackColor
	}

	hex := strings.ToUpper(s[1:])
	switch len(hex) {
	case 3:
		hex = doubleNibbles(hex) + "FF"
	case 4:
		hex = doubleNibbles(hex)
	case 6:
		hex += "FF"
	}
	return "#" + hex
}

func doubleNibbles(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, c := range s {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

// ParseHexNRGBA converts any accepted hex shape to a non-premultiplied color.
// Invalid input yields opaque black, matching NormalizeHexColor.
func ParseHexNRGBA(s string) color.NRGBA {
	hex := NormalizeHexColor(s)[1:]

	channel := func(i int) uint8 {
		v, _ := strconv.ParseUint(hex[i:i+2], 16, 8)
		return uint8(v)
	}
	return color.NRGBA{R: channel(0), G: channel(2), B: channel(4), A: channel(6)}
}
