// Package output decides where generated images are written.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/generator"
	"github.com/xob0t/placehold/pkg/options"
)

// Resolver maps user output choices onto absolute file paths.
type Resolver struct {
	// ExportDir receives generated files when the user gives no directory.
	ExportDir string
	// Now stamps generated file and directory names. Defaults to time.Now.
	Now func() time.Time
}

// NewResolver creates a resolver rooted at exportDir.
func NewResolver(exportDir string) *Resolver {
	return &Resolver{ExportDir: exportDir, Now: time.Now}
}

func (r *Resolver) timestamp() int64 {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	return now().UnixMilli()
}

// Resolve returns the file path for a single image:
//   - empty userOutput: ExportDir/hold-{w}x{h}-{millis}.{format}
//   - absolute path: kept, extension-corrected
//   - path with a separator: made absolute against the working directory, extension-corrected
//   - bare filename: placed in ExportDir, extension-corrected
func (r *Resolver) Resolve(userOutput string, format generator.Format, d options.Dimensions) (string, error) {
	if userOutput == "" {
		name := fmt.Sprintf("hold-%s-%d.%s", d, r.timestamp(), format)
		return filepath.Join(r.ExportDir, name), nil
	}

	if filepath.IsAbs(userOutput) {
		return EnsureExtension(userOutput, format), nil
	}

	if hasSeparator(userOutput) {
		abs, err := filepath.Abs(userOutput)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", userOutput, err)
		}
		return EnsureExtension(abs, format), nil
	}

	return filepath.Join(r.ExportDir, EnsureExtension(userOutput, format)), nil
}

// BatchDir returns the shared directory for a batch: the absolute form of
// userOutput when given, else ExportDir/batch-{w}x{h}-{millis}.
func (r *Resolver) BatchDir(userOutput string, d options.Dimensions) (string, error) {
	if userOutput != "" {
		abs, err := filepath.Abs(userOutput)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", userOutput, err)
		}
		return abs, nil
	}
	return filepath.Join(r.ExportDir, fmt.Sprintf("batch-%s-%d", d, r.timestamp())), nil
}

// ItemName is the file name of the i-th (1-based) batch image.
func ItemName(i int, format generator.Format) string {
	return fmt.Sprintf("hold-%03d.%s", i, format)
}

// EnsureExtension appends ".{format}" when path has no extension or one that
// is not a supported image extension. An unsupported extension is kept, so
// "img.txt" becomes "img.txt.png". A supported extension is left alone even
// if it names a different format.
func EnsureExtension(path string, format generator.Format) string {
	ext := filepath.Ext(path)
	if ext == "" || !generator.IsKnownExtension(ext) {
		return path + format.Extension()
	}
	return path
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperr.NewDirectoryError(dir, err)
	}
	return nil
}

func hasSeparator(p string) bool {
	return strings.ContainsRune(p, os.PathSeparator) || strings.Contains(p, "/")
}
