package fs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// TempFilePrefix marks in-flight slot writes. The watcher and Keys skip these files.
const TempFilePrefix = "jot-tmp-"

// writeFileAtomic stages data in a temp file next to filename and renames it
// into place, so readers see either the old blob or the new one.
// A temp file that cannot be cleaned up is reported to logger, if any.
func writeFileAtomic(filename string, data []byte, perm os.FileMode, logger *slog.Logger) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage slot write: %w", err)
	}
	staged := tmp.Name()

	renamed := false
	defer func() {
		if renamed {
			return
		}
		if err := os.Remove(staged); err != nil && !errors.Is(err, os.ErrNotExist) && logger != nil {
			logger.Warn("leftover temp file", "path", staged, "error", err)
		}
	}()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to stage slot write: %w", err)
	}

	if err := os.Chmod(staged, perm); err != nil {
		return fmt.Errorf("failed to set slot permissions: %w", err)
	}
	if err := os.Rename(staged, filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	renamed = true
	return nil
}
