// dimensions.go - WIDTHxHEIGHT parsing.
package options

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidDimension marks a segment that did not start with a digit.
const InvalidDimension = -1

// Dimension limits, inclusive.
const (
	MinDimension = 1
	MaxDimension = 10000
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// ParseDimensions splits s on "x" (any case) and converts the first two
// segments. It never fails: segments without leading digits, and missing
// segments, become InvalidDimension. Range checks belong to Validate.
func ParseDimensions(s string) Dimensions {
	parts := strings.Split(strings.ToLower(s), "x")

	d := Dimensions{Width: InvalidDimension, Height: InvalidDimension}
	if len(parts) > 0 {
		d.Width = leadingInt(parts[0])
	}
	if len(parts) > 1 {
		d.Height = leadingInt(parts[1])
	}
	return d
}

// leadingInt parses the run of decimal digits at the start of s, after
// optional surrounding whitespace. "12abc" yields 12, "abc" yields InvalidDimension.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return InvalidDimension
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow gets here.
		return InvalidDimension
	}
	return n
}

// String formats d as "{width}x{height}".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Label is the default overlay text, "{width} x {height}".
func (d Dimensions) Label() string {
	return fmt.Sprintf("%d x %d", d.Width, d.Height)
}

// AspectRatio returns width/height, or 0 when height is not positive.
func (d Dimensions) AspectRatio() float64 {
	if d.Height <= 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// InRange reports whether both axes are within [MinDimension, MaxDimension].
func (d Dimensions) InRange() bool {
	return d.Width >= MinDimension && d.Width <= MaxDimension &&
		d.Height >= MinDimension && d.Height <= MaxDimension
}
