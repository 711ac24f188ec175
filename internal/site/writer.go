package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer performs the build's filesystem mutations. In dry-run mode every
// intended mutation is logged and skipped, so a dry run makes exactly the
// same decisions as a real one without touching the filesystem.
type Writer struct {
	DryRun bool
}

// WriteFile writes text to path, creating parent directories as needed.
func (w Writer) WriteFile(path, text string) error {
	slog.Info("write", "path", path)
	if w.DryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Remove deletes the file at path. A file that vanished between
// enumeration and deletion is tolerated silently.
func (w Writer) Remove(path string) error {
	slog.Info("remove", "path", path)
	if w.DryRun {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
