// validate.go - Collect-all validation of user options.
package options

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/xob0t/placehold/pkg/generator"
)

// Option limits, inclusive.
const (
	MinFontSize   = 1
	MaxFontSize   = 200
	MinBatchCount = 1
	MaxBatchCount = 1000
)

var dimensionsPattern = regexp.MustCompile(`(?i)^\d+x\d+$`)

// Result lists every validation problem found, in a fixed order.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks dims and every supplied option. All checks run so the
// user sees every problem at once. Order: dimensions, text color,
// background color, format, font size, batch count.
func Validate(o Options, dims string) Result {
	var errors []string

	if dims == "" {
		errors = append(errors, "Dimensions argument is required (e.g., 800x600)")
	} else if !IsValidDimensions(dims) {
		errors = append(errors, fmt.Sprintf("Invalid dimensions: %q. Use WIDTHxHEIGHT format (e.g., 800x600). Max %dpx.", dims, MaxDimension))
	}

	if o.Color != "" && !generator.IsValidHexColor(o.Color) {
		errors = append(errors, fmt.Sprintf("Invalid text color: %q. Use hex format (#RGB, #RGBA, #RRGGBB, or #RRGGBBAA)", o.Color))
	}

	if o.Background != "" && !generator.IsValidHexColor(o.Background) {
		errors = append(errors, fmt.Sprintf("Invalid background color: %q. Use hex format (#RGB, #RGBA, #RRGGBB, or #RRGGBBAA)", o.Background))
	}

	if o.Format != "" {
		if _, err := generator.ParseFormat(o.Format); err != nil {
			errors = append(errors, fmt.Sprintf("Invalid format: %q. Supported formats: png, jpg, jpeg, webp", o.Format))
		}
	}

	if o.FontSize != "" && !IsValidFontSize(o.FontSize) {
		errors = append(errors, fmt.Sprintf("Invalid font size: %q. Use a number (%d-%d) or %q", o.FontSize, MinFontSize, MaxFontSize, AutoFontSize))
	}

	if o.Batch != "" && !IsValidBatchCount(o.Batch) {
		errors = append(errors, fmt.Sprintf("Invalid batch count: %q. Must be a number between %d and %d", o.Batch, MinBatchCount, MaxBatchCount))
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// IsValidDimensions reports whether s is "<digits>x<digits>" with both
// axes in [MinDimension, MaxDimension].
func IsValidDimensions(s string) bool {
	if !dimensionsPattern.MatchString(s) {
		return false
	}
	return ParseDimensions(s).InRange()
}

// IsValidFontSize accepts "auto" or an integer in [MinFontSize, MaxFontSize].
func IsValidFontSize(s string) bool {
	if s == AutoFontSize {
		return true
	}
	return inIntRange(s, MinFontSize, MaxFontSize)
}

// IsValidBatchCount accepts an integer in [MinBatchCount, MaxBatchCount].
func IsValidBatchCount(s string) bool {
	return inIntRange(s, MinBatchCount, MaxBatchCount)
}

func inIntRange(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}
