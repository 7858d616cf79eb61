package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b-report.pdf"))
	touch(t, filepath.Join(root, "a-report.PDF"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "nested", "deep", "c-report.pdf"))
	touch(t, filepath.Join(root, ".hidden.pdf"))
	touch(t, filepath.Join(root, ".archive", "old.pdf"))

	paths, stats, err := ScanDirectory(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a-report.PDF"),
		filepath.Join(root, "b-report.pdf"),
		filepath.Join(root, "nested", "deep", "c-report.pdf"),
	}
	assert.Equal(t, want, paths)
	assert.EqualValues(t, 3, stats.Matched)
	assert.GreaterOrEqual(t, stats.Scanned, stats.Matched)
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	_, _, err := ScanDirectory("  ")
	assert.Error(t, err)
}

func TestScanDirectoryNoMatches(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "readme.md"))

	paths, stats, err := ScanDirectory(root)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Zero(t, stats.Matched)
}
