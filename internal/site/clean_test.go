package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean_MissingRootIsNoop(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")
	require.NoError(t, Clean(root, Writer{}))
	_, err := os.Stat(root)
	require.True(t, os.IsNotExist(err))
}

func TestClean_RemovesOnlyHTML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	files := map[string]string{
		"index.html":    "x",
		"sub/page.html": "x",
		"style.css":     "keep",
		"notes.md":      "keep",
	}
	for rel, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644))
	}

	require.NoError(t, Clean(root, Writer{}))

	for _, rel := range []string{"index.html", "sub/page.html"} {
		_, err := os.Stat(filepath.Join(root, rel))
		require.True(t, os.IsNotExist(err), rel)
	}
	for _, rel := range []string{"style.css", "notes.md"} {
		_, err := os.Stat(filepath.Join(root, rel))
		require.NoError(t, err, rel)
	}
}

func TestClean_DryRunDeletesNothing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("x"), 0o644))

	require.NoError(t, Clean(root, Writer{DryRun: true}))

	_, err := os.Stat(filepath.Join(root, "index.html"))
	require.NoError(t, err)
}

func TestWriter_RemoveToleratesMissingFile(t *testing.T) {
	require.NoError(t, Writer{}.Remove(filepath.Join(t.TempDir(), "gone.html")))
}
