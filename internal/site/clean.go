package site

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Clean removes previously generated HTML files under root. A missing root
// is a no-op. Files without the HTML extension are never touched, so
// hand-maintained assets survive a clean.
func Clean(root string, w Writer) error {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			slog.Info("nothing to clean", "path", root)
			return nil
		}
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != htmlExt {
			return nil
		}
		return w.Remove(path)
	})
}
