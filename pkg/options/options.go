// Package options holds the user-facing knobs for placeholder generation,
// their defaults and their validation.
package options

import (
	"path/filepath"
	"strconv"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/generator"
)

// AutoFontSize is the FontSize value requesting size derived from the canvas.
const AutoFontSize = "auto"

// Options are the raw values a user supplied. An empty string means the
// option was not supplied.
type Options struct {
	Background string // hex color
	Color      string // text hex color
	Format     string // png, jpg, jpeg, webp
	Output     string // path, bare filename, or empty
	Text       string // overlay text, empty for the dimension label
	FontSize   string // integer 1-200 or "auto"
	Border     bool
	Batch      string // integer 1-1000, empty for a single image
}

// Defaults fill options the user left empty.
type Defaults struct {
	Background string
	Color      string
	Format     string
	FontSize   string
}

// BuiltinDefaults are used when configuration provides nothing else.
var BuiltinDefaults = Defaults{
	Background: "#CCCCCC",
	Color:      "#666666",
	Format:     string(generator.FormatPNG),
	FontSize:   AutoFontSize,
}

// WithDefaults returns a copy of o with empty fields taken from d. Defaults
// are applied before validation so a broken default is reported like user input.
func (o Options) WithDefaults(d Defaults) Options {
	if o.Background == "" {
		o.Background = d.Background
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.Format == "" {
		o.Format = d.Format
	}
	if o.FontSize == "" {
		o.FontSize = d.FontSize
	}
	return o
}

// Settings is the validated, typed form of Options.
type Settings struct {
	Dimensions Dimensions
	Background string
	Color      string
	Format     generator.Format
	Output     string
	Text       string
	FontSize   int // 0 means auto
	Border     bool
	Batch      int // 0 means a single image
}

// IsBatch reports whether Settings request a batch run.
func (s Settings) IsBatch() bool {
	return s.Batch > 0
}

// Build validates o against dims and converts it to Settings. A failed
// validation returns an *apperr.Error of kind validation carrying every message.
func Build(o Options, dims string) (Settings, error) {
	result := Validate(o, dims)
	if !result.Valid {
		return Settings{}, apperr.NewValidationError("validation failed", result.Errors)
	}

	s := Settings{
		Dimensions: ParseDimensions(dims),
		Background: o.Background,
		Color:      o.Color,
		Format:     generator.FormatPNG,
		Output:     o.Output,
		Text:       o.Text,
		Border:     o.Border,
	}
	if o.Format != "" {
		// Validate already rejected unknown formats.
		s.Format, _ = generator.ParseFormat(o.Format)
	}
	if o.FontSize != "" && o.FontSize != AutoFontSize {
		s.FontSize, _ = strconv.Atoi(o.FontSize)
	}
	if o.Batch != "" {
		s.Batch, _ = strconv.Atoi(o.Batch)
	}
	return s, nil
}

// IsRecognizedOutputPath reports whether path has no extension or one of the
// supported image extensions. Other extensions get the format appended.
func IsRecognizedOutputPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == "" || generator.IsKnownExtension(ext)
}
