// write.go - Atomic file writer.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileMode is the permission of written images. os.CreateTemp creates files
// as 0600, so the mode is set explicitly before the rename.
const FileMode os.FileMode = 0644

// WriteFileAtomic streams write into a temporary file next to path and renames
// it into place. On any failure the temporary file is removed and path is left
// untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, ".placehold-*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			f.Close()
		}
		os.Remove(tmp)
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	closed = true
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp, FileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
